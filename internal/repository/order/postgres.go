package order

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
	"movie-billing/internal/pricing"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// FOR UPDATE OF c locks the cart rows for the duration of the transaction.
// A concurrent completion of the same cart blocks here, re-reads after the
// first one commits its DELETE, and finds the cart empty.
const cartRowsQuery = `
SELECT c.movie_id, m.title, COALESCE(m.backdrop_path, ''), COALESCE(m.poster_path, ''),
       c.quantity, mp.unit_price::text, mp.premium_discount
FROM cart_items c
JOIN movie_prices mp ON c.movie_id = mp.movie_id
JOIN movies m ON c.movie_id = m.id
WHERE c.user_id = $1
ORDER BY c.movie_id
FOR UPDATE OF c
`

func (r *postgresRepo) Complete(ctx context.Context, userID int64, premium bool) (*domain.Sale, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, cartRowsQuery, userID)
	if err != nil {
		return nil, err
	}
	priceRows, err := scanPriceRows(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(priceRows) == 0 {
		return nil, domain.ErrCartEmpty
	}

	items := make([]domain.Item, 0, len(priceRows))
	for _, row := range priceRows {
		item, err := pricing.PriceRow(row, premium)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	total := pricing.Total(items)

	sale := domain.Sale{UserID: userID, Total: total}
	err = tx.QueryRow(ctx, `
INSERT INTO sales (user_id, total, order_date)
VALUES ($1, $2, now())
RETURNING id, order_date
`, userID, total.StringFixed(2)).Scan(&sale.ID, &sale.OrderDate)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO sale_items (sale_id, movie_id, quantity)
VALUES ($1, $2, $3)
`, sale.ID, item.MovieID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *postgresRepo) List(ctx context.Context, userID int64) ([]domain.Sale, error) {
	const q = `
SELECT id, total::text, order_date
FROM sales
WHERE user_id = $1
ORDER BY order_date DESC
LIMIT 5
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var (
			sale  domain.Sale
			total string
		)
		if err := rows.Scan(&sale.ID, &total, &sale.OrderDate); err != nil {
			return nil, err
		}
		parsed, err := decimal.NewFromString(total)
		if err != nil {
			return nil, err
		}
		sale.Total = parsed
		sale.UserID = userID
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *postgresRepo) Detail(ctx context.Context, userID, saleID int64) ([]domain.PriceRow, error) {
	const q = `
SELECT si.movie_id, m.title, COALESCE(m.backdrop_path, ''), COALESCE(m.poster_path, ''),
       si.quantity, mp.unit_price::text, mp.premium_discount
FROM sale_items si
JOIN sales s ON si.sale_id = s.id
JOIN movie_prices mp ON si.movie_id = mp.movie_id
JOIN movies m ON si.movie_id = m.id
WHERE si.sale_id = $1 AND s.user_id = $2
ORDER BY si.movie_id
`
	rows, err := r.pool.Query(ctx, q, saleID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPriceRows(rows)
}

func scanPriceRows(rows pgx.Rows) ([]domain.PriceRow, error) {
	var out []domain.PriceRow
	for rows.Next() {
		var (
			row   domain.PriceRow
			price string
		)
		if err := rows.Scan(
			&row.MovieID,
			&row.Title,
			&row.BackdropPath,
			&row.PosterPath,
			&row.Quantity,
			&price,
			&row.PremiumDiscount,
		); err != nil {
			return nil, err
		}
		parsed, err := decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		row.UnitPrice = parsed
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
