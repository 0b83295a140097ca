package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	stripelib "github.com/stripe/stripe-go/v78"

	"movie-billing/internal/domain"
)

// result is the code/message envelope every response carries, mirroring the
// storefront's other services.
type result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	resultUnauthorized = result{Code: 1002, Message: "Access token is invalid."}
	resultBadRequest   = result{Code: 1003, Message: "Request body could not be parsed."}
	resultInternal     = result{Code: 1000, Message: "Internal server error."}

	resultCartItemInserted = result{Code: 3000, Message: "Item inserted into cart."}
	resultCartItemUpdated  = result{Code: 3001, Message: "Cart item quantity updated."}
	resultCartItemDeleted  = result{Code: 3002, Message: "Item deleted from cart."}
	resultCartRetrieved    = result{Code: 3003, Message: "Cart retrieved."}
	resultCartCleared      = result{Code: 3004, Message: "Cart cleared."}
	resultCartEmpty        = result{Code: 3005, Message: "Cart is empty."}

	resultInvalidQuantity = result{Code: 3020, Message: "Quantity must be at least 1."}
	resultMaxQuantity     = result{Code: 3021, Message: "Quantity cannot exceed 10."}
	resultCartItemExists  = result{Code: 3030, Message: "Item is already in the cart."}
	resultCartItemMissing = result{Code: 3031, Message: "Item is not in the cart."}

	resultPaymentIntentCreated = result{Code: 3040, Message: "Payment intent created."}
	resultOrderCompleted       = result{Code: 3041, Message: "Order completed."}
	resultPaymentNotSucceeded  = result{Code: 3042, Message: "Order cannot be completed: payment has not succeeded."}
	resultPaymentWrongUser     = result{Code: 3043, Message: "Order cannot be completed: payment belongs to a different user."}
	resultPaymentProvider      = result{Code: 3044, Message: "Payment provider request failed."}

	resultOrdersFound         = result{Code: 3050, Message: "Orders found."}
	resultNoOrdersFound       = result{Code: 3051, Message: "No orders found."}
	resultOrderDetailFound    = result{Code: 3052, Message: "Order detail found."}
	resultOrderDetailNotFound = result{Code: 3053, Message: "Order detail not found."}
)

type resultResponse struct {
	Result result `json:"result"`
}

type itemsResponse struct {
	Result result           `json:"result"`
	Total  *decimal.Decimal `json:"total,omitempty"`
	Items  []domain.Item    `json:"items,omitempty"`
}

type paymentResponse struct {
	Result          result `json:"result"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	ClientSecret    string `json:"clientSecret,omitempty"`
}

type salesResponse struct {
	Result result        `json:"result"`
	Sales  []domain.Sale `json:"sales,omitempty"`
}

// writeError maps domain sentinels onto the result table. Payment provider
// failures pass through as a gateway error without domain translation;
// anything else is a 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, resultResponse{Result: resultInvalidQuantity})
	case errors.Is(err, domain.ErrQuantityTooLarge):
		c.JSON(http.StatusUnprocessableEntity, resultResponse{Result: resultMaxQuantity})
	case errors.Is(err, domain.ErrCartItemExists):
		c.JSON(http.StatusConflict, resultResponse{Result: resultCartItemExists})
	case errors.Is(err, domain.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, resultResponse{Result: resultCartItemMissing})
	case errors.Is(err, domain.ErrCartEmpty):
		c.JSON(http.StatusOK, resultResponse{Result: resultCartEmpty})
	case errors.Is(err, domain.ErrPaymentNotSucceeded):
		c.JSON(http.StatusConflict, resultResponse{Result: resultPaymentNotSucceeded})
	case errors.Is(err, domain.ErrPaymentWrongUser):
		c.JSON(http.StatusConflict, resultResponse{Result: resultPaymentWrongUser})
	case errors.Is(err, domain.ErrNoOrdersFound):
		c.JSON(http.StatusOK, salesResponse{Result: resultNoOrdersFound})
	case errors.Is(err, domain.ErrOrderDetailNotFound):
		c.JSON(http.StatusNotFound, resultResponse{Result: resultOrderDetailNotFound})
	case isProviderError(err):
		c.JSON(http.StatusBadGateway, resultResponse{Result: resultPaymentProvider})
	default:
		c.JSON(http.StatusInternalServerError, resultResponse{Result: resultInternal})
	}
}

func isProviderError(err error) bool {
	var stripeErr *stripelib.Error
	return errors.As(err, &stripeErr)
}
