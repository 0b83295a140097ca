package cart

import (
	"context"

	"movie-billing/internal/domain"
)

// Repository owns the cart_items table: one row per (user, movie), quantity
// between 1 and 10. Quantity bounds are validated by the service before any
// call lands here.
type Repository interface {
	Insert(ctx context.Context, userID, movieID int64, quantity int) error
	Update(ctx context.Context, userID, movieID int64, quantity int) error
	Delete(ctx context.Context, userID, movieID int64) error
	Retrieve(ctx context.Context, userID int64) ([]domain.PriceRow, error)
	Clear(ctx context.Context, userID int64) (int64, error)
}
