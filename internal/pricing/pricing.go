package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// UnitPrice applies the premium discount to a catalog price and truncates the
// result toward zero at two decimal places. Non-premium callers get the base
// price, truncated the same way. Truncation happens here and only here; totals
// are never re-rounded.
func UnitPrice(base decimal.Decimal, premiumDiscount int, premium bool) (decimal.Decimal, error) {
	if base.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative base price %s", base)
	}
	if premiumDiscount < 0 || premiumDiscount > 100 {
		return decimal.Decimal{}, fmt.Errorf("discount %d out of range", premiumDiscount)
	}
	if !premium {
		return base.Truncate(2), nil
	}
	factor := oneHundred.Sub(decimal.NewFromInt(int64(premiumDiscount))).Div(oneHundred)
	return base.Mul(factor).Truncate(2), nil
}

// PriceRow converts a joined cart or sale row into a display line with the
// discount applied.
func PriceRow(row domain.PriceRow, premium bool) (domain.Item, error) {
	unit, err := UnitPrice(row.UnitPrice, row.PremiumDiscount, premium)
	if err != nil {
		return domain.Item{}, fmt.Errorf("price movie %d: %w", row.MovieID, err)
	}
	return domain.Item{
		UnitPrice:    unit,
		Quantity:     row.Quantity,
		MovieID:      row.MovieID,
		MovieTitle:   row.Title,
		BackdropPath: row.BackdropPath,
		PosterPath:   row.PosterPath,
	}, nil
}

// Total sums unit price times quantity over already-priced lines. The per-line
// prices carry two decimal places, so the exact sum needs no further rounding.
func Total(items []domain.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// MinorUnits reads a two-decimal total as integer cents for the payment
// gateway. It refuses values that are not exactly representable in cents,
// which would mean a total that skipped per-line truncation.
func MinorUnits(total decimal.Decimal) (int64, error) {
	cents := total.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("total %s is not scaled to cents", total)
	}
	return cents.IntPart(), nil
}
