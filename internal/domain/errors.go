package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuantity rejects quantities below one before any write.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrQuantityTooLarge rejects quantities above the per-item cap of 10.
	ErrQuantityTooLarge = errors.New("quantity must be at most 10")

	// ErrCartItemExists is surfaced from the (user, movie) uniqueness
	// constraint, never from a pre-check.
	ErrCartItemExists = errors.New("cart item already exists")

	// ErrCartItemNotFound means an update or delete touched zero rows.
	ErrCartItemNotFound = errors.New("cart item does not exist")

	// ErrCartEmpty is a valid state, distinct from not-found.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrPaymentNotSucceeded means the payment intent has not settled.
	ErrPaymentNotSucceeded = errors.New("payment has not succeeded")

	// ErrPaymentWrongUser means the payment intent belongs to another user.
	ErrPaymentWrongUser = errors.New("payment belongs to a different user")

	// ErrNoOrdersFound means the user has no completed sales.
	ErrNoOrdersFound = errors.New("no orders found")

	// ErrOrderDetailNotFound covers both absent sales and sales owned by
	// another user; callers cannot tell the two apart.
	ErrOrderDetailNotFound = errors.New("order detail not found")
)
