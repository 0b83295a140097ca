package movie

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"movie-billing/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Upsert(ctx context.Context, m domain.Movie, p domain.MoviePrice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO movies (id, title, backdrop_path, poster_path)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title,
    backdrop_path = EXCLUDED.backdrop_path,
    poster_path = EXCLUDED.poster_path
`, m.ID, m.Title, m.BackdropPath, m.PosterPath); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO movie_prices (movie_id, unit_price, premium_discount)
VALUES ($1, $2, $3)
ON CONFLICT (movie_id) DO UPDATE
SET unit_price = EXCLUDED.unit_price,
    premium_discount = EXCLUDED.premium_discount
`, m.ID, p.UnitPrice.StringFixed(2), p.PremiumDiscount); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
