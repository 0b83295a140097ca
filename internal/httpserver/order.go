package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type orderCompleteRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

func orderPayment(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentPrincipal(c)
		intent, err := svc.RequestPayment(c.Request.Context(), p.UserID, p.Premium)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, paymentResponse{
			Result:          resultPaymentIntentCreated,
			PaymentIntentID: intent.ID,
			ClientSecret:    intent.ClientSecret,
		})
	}
}

func orderComplete(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderCompleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, resultResponse{Result: resultBadRequest})
			return
		}
		p := currentPrincipal(c)
		if _, err := svc.Complete(c.Request.Context(), p.UserID, p.Premium, req.PaymentIntentID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resultResponse{Result: resultOrderCompleted})
	}
}

func orderList(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentPrincipal(c)
		sales, err := svc.List(c.Request.Context(), p.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, salesResponse{Result: resultOrdersFound, Sales: sales})
	}
}

func orderDetail(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		saleID, err := strconv.ParseInt(c.Param("saleId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, resultResponse{Result: resultBadRequest})
			return
		}
		p := currentPrincipal(c)
		items, total, err := svc.Detail(c.Request.Context(), p.UserID, saleID, p.Premium)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, itemsResponse{Result: resultOrderDetailFound, Total: &total, Items: items})
	}
}
