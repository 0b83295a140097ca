package order

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
	"movie-billing/internal/payment"
	"movie-billing/internal/pricing"
	cartrepo "movie-billing/internal/repository/cart"
	orderrepo "movie-billing/internal/repository/order"
)

// Service drives payment intents and the cart-to-sale transition.
type Service struct {
	orders  orderRepo
	cart    cartRepo
	gateway payment.Gateway
}

type orderRepo interface {
	Complete(ctx context.Context, userID int64, premium bool) (*domain.Sale, error)
	List(ctx context.Context, userID int64) ([]domain.Sale, error)
	Detail(ctx context.Context, userID, saleID int64) ([]domain.PriceRow, error)
}

type cartRepo interface {
	Retrieve(ctx context.Context, userID int64) ([]domain.PriceRow, error)
}

func New(orders orderrepo.Repository, cart cartrepo.Repository, gateway payment.Gateway) *Service {
	return &Service{orders: orders, cart: cart, gateway: gateway}
}

// RequestPayment prices the current cart and asks the processor for a payment
// intent covering it. The intent carries the caller's id so Complete can
// later verify ownership.
func (s *Service) RequestPayment(ctx context.Context, userID int64, premium bool) (*payment.Intent, error) {
	rows, err := s.cart.Retrieve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrCartEmpty
	}

	items := make([]domain.Item, 0, len(rows))
	titles := make([]string, 0, len(rows))
	for _, row := range rows {
		item, err := pricing.PriceRow(row, premium)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		titles = append(titles, item.MovieTitle)
	}

	cents, err := pricing.MinorUnits(pricing.Total(items))
	if err != nil {
		return nil, err
	}

	return s.gateway.CreateIntent(ctx, payment.CreateIntentInput{
		AmountCents: cents,
		Description: strings.Join(titles, ", "),
		UserID:      strconv.FormatInt(userID, 10),
	})
}

// Complete verifies the payment intent and then hands the atomic cart-to-sale
// transition to the repository. Settlement is checked before ownership, so a
// token failing both reports the settlement problem.
func (s *Service) Complete(ctx context.Context, userID int64, premium bool, intentID string) (*domain.Sale, error) {
	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != payment.StatusSucceeded {
		return nil, domain.ErrPaymentNotSucceeded
	}
	if intent.UserID != strconv.FormatInt(userID, 10) {
		return nil, domain.ErrPaymentWrongUser
	}

	return s.orders.Complete(ctx, userID, premium)
}

// List returns the user's five most recent sales, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Sale, error) {
	sales, err := s.orders.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.ErrNoOrdersFound
	}
	return sales, nil
}

// Detail returns one sale's lines priced at current catalog prices under the
// caller's current membership. The stored sale total is frozen at completion
// time, so the two can drift apart when catalog prices change.
func (s *Service) Detail(ctx context.Context, userID, saleID int64, premium bool) ([]domain.Item, decimal.Decimal, error) {
	rows, err := s.orders.Detail(ctx, userID, saleID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if len(rows) == 0 {
		return nil, decimal.Zero, domain.ErrOrderDetailNotFound
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		item, err := pricing.PriceRow(row, premium)
		if err != nil {
			return nil, decimal.Zero, err
		}
		items = append(items, item)
	}
	return items, pricing.Total(items), nil
}
