package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movie holds the catalog facts this service reads but never writes.
type Movie struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	BackdropPath string `json:"backdropPath,omitempty"`
	PosterPath   string `json:"posterPath,omitempty"`
}

// MoviePrice is the per-movie price fact joined against cart and sale rows.
type MoviePrice struct {
	MovieID         int64           `json:"movieId"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	PremiumDiscount int             `json:"premiumDiscount"`
}

// CartItem is one row of a user's pending selections, keyed by (user, movie).
type CartItem struct {
	UserID   int64 `json:"-"`
	MovieID  int64 `json:"movieId"`
	Quantity int   `json:"quantity"`
}

// PriceRow is a cart or sale line joined with current catalog data, before
// the membership discount has been applied.
type PriceRow struct {
	MovieID         int64
	Title           string
	BackdropPath    string
	PosterPath      string
	Quantity        int
	UnitPrice       decimal.Decimal
	PremiumDiscount int
}

// Item is a display line: a PriceRow with the discount already applied and
// the price truncated to two decimal places.
type Item struct {
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	MovieID      int64           `json:"movieId"`
	MovieTitle   string          `json:"movieTitle"`
	BackdropPath string          `json:"backdropPath,omitempty"`
	PosterPath   string          `json:"posterPath,omitempty"`
}

// Sale is an immutable record of a completed order. Rows are append-only:
// nothing updates or deletes a sale once it is written.
type Sale struct {
	ID        int64           `json:"saleId"`
	UserID    int64           `json:"-"`
	Total     decimal.Decimal `json:"total"`
	OrderDate time.Time       `json:"orderDate"`
}
