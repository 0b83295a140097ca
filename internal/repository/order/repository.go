package order

import (
	"context"

	"movie-billing/internal/domain"
)

// Repository owns the sales and sale_items tables. Sales are append-only
// ledger facts: Complete is the only writer, List and Detail the only
// readers.
type Repository interface {
	// Complete converts the user's current cart into a sale. The cart read,
	// the sale and sale_items inserts, and the cart clear all run inside one
	// transaction, with the cart rows locked at the read, so two concurrent
	// completions of the same cart cannot both commit and a failure leaves
	// the cart untouched.
	Complete(ctx context.Context, userID int64, premium bool) (*domain.Sale, error)

	// List returns the user's five most recent sales, newest first.
	List(ctx context.Context, userID int64) ([]domain.Sale, error)

	// Detail returns the line rows of one sale joined with current catalog
	// prices, scoped to the owning user. A sale belonging to someone else
	// yields zero rows.
	Detail(ctx context.Context, userID, saleID int64) ([]domain.PriceRow, error)
}
