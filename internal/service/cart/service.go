package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
	"movie-billing/internal/pricing"
	cartrepo "movie-billing/internal/repository/cart"
)

const maxQuantity = 10

// Service validates quantities, delegates cart mutations to the repository,
// and prices retrieved rows for the caller's membership level.
type Service struct {
	repo cartRepo
}

type cartRepo interface {
	Insert(ctx context.Context, userID, movieID int64, quantity int) error
	Update(ctx context.Context, userID, movieID int64, quantity int) error
	Delete(ctx context.Context, userID, movieID int64) error
	Retrieve(ctx context.Context, userID int64) ([]domain.PriceRow, error)
	Clear(ctx context.Context, userID int64) (int64, error)
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Insert(ctx context.Context, userID, movieID int64, quantity int) error {
	if err := checkQuantity(quantity); err != nil {
		return err
	}
	return s.repo.Insert(ctx, userID, movieID, quantity)
}

func (s *Service) Update(ctx context.Context, userID, movieID int64, quantity int) error {
	if err := checkQuantity(quantity); err != nil {
		return err
	}
	return s.repo.Update(ctx, userID, movieID, quantity)
}

func (s *Service) Delete(ctx context.Context, userID, movieID int64) error {
	return s.repo.Delete(ctx, userID, movieID)
}

// Retrieve returns the user's priced cart lines and their total. An empty
// cart returns no items and a zero total, not an error; the handler decides
// how to report it.
func (s *Service) Retrieve(ctx context.Context, userID int64, premium bool) ([]domain.Item, decimal.Decimal, error) {
	rows, err := s.repo.Retrieve(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
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

// Clear empties the user's cart and reports how many rows went away. Zero is
// a valid outcome for an already-empty cart.
func (s *Service) Clear(ctx context.Context, userID int64) (int64, error) {
	return s.repo.Clear(ctx, userID)
}

func checkQuantity(quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if quantity > maxQuantity {
		return domain.ErrQuantityTooLarge
	}
	return nil
}
