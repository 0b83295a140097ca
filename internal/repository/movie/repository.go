package movie

import (
	"context"

	"movie-billing/internal/domain"
)

// Repository writes catalog facts. The billing endpoints only ever read
// movies and movie_prices through joins; writes happen from the seed and
// importer commands.
type Repository interface {
	Upsert(ctx context.Context, m domain.Movie, p domain.MoviePrice) error
}
