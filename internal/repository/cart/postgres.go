package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Insert(ctx context.Context, userID, movieID int64, quantity int) error {
	const q = `
INSERT INTO cart_items (user_id, movie_id, quantity)
VALUES ($1, $2, $3)
`
	if _, err := r.pool.Exec(ctx, q, userID, movieID, quantity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCartItemExists
		}
		return err
	}
	return nil
}

func (r *postgresRepo) Update(ctx context.Context, userID, movieID int64, quantity int) error {
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE user_id = $2 AND movie_id = $3
`
	cmd, err := r.pool.Exec(ctx, q, quantity, userID, movieID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, userID, movieID int64) error {
	const q = `
DELETE FROM cart_items
WHERE user_id = $1 AND movie_id = $2
`
	cmd, err := r.pool.Exec(ctx, q, userID, movieID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *postgresRepo) Retrieve(ctx context.Context, userID int64) ([]domain.PriceRow, error) {
	const q = `
SELECT c.movie_id, m.title, COALESCE(m.backdrop_path, ''), COALESCE(m.poster_path, ''),
       c.quantity, mp.unit_price::text, mp.premium_discount
FROM cart_items c
JOIN movie_prices mp ON c.movie_id = mp.movie_id
JOIN movies m ON c.movie_id = m.id
WHERE c.user_id = $1
ORDER BY c.movie_id
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPriceRows(rows)
}

func (r *postgresRepo) Clear(ctx context.Context, userID int64) (int64, error) {
	const q = `
DELETE FROM cart_items
WHERE user_id = $1
`
	cmd, err := r.pool.Exec(ctx, q, userID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
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
