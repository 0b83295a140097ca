package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
	movierepo "movie-billing/internal/repository/movie"
)

type movieSeed struct {
	ID              int64
	Title           string
	BackdropPath    string
	PosterPath      string
	Price           string
	PremiumDiscount int
}

// Apply inserts a small movie catalog with price facts for manual testing.
// It is idempotent via ON CONFLICT upserts in the repository.
func Apply(ctx context.Context, movies movierepo.Repository) error {
	seeds := []movieSeed{
		{ID: 603, Title: "The Matrix", BackdropPath: "/backdrops/603.jpg", PosterPath: "/posters/603.jpg", Price: "9.99", PremiumDiscount: 20},
		{ID: 949, Title: "Heat", BackdropPath: "/backdrops/949.jpg", PosterPath: "/posters/949.jpg", Price: "7.49", PremiumDiscount: 10},
		{ID: 8195, Title: "Ronin", BackdropPath: "/backdrops/8195.jpg", PosterPath: "/posters/8195.jpg", Price: "4.99", PremiumDiscount: 0},
		{ID: 680, Title: "Pulp Fiction", BackdropPath: "/backdrops/680.jpg", PosterPath: "/posters/680.jpg", Price: "12.50", PremiumDiscount: 25},
	}

	for _, s := range seeds {
		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			return fmt.Errorf("parse price for %q: %w", s.Title, err)
		}
		err = movies.Upsert(ctx, domain.Movie{
			ID:           s.ID,
			Title:        s.Title,
			BackdropPath: s.BackdropPath,
			PosterPath:   s.PosterPath,
		}, domain.MoviePrice{
			MovieID:         s.ID,
			UnitPrice:       price,
			PremiumDiscount: s.PremiumDiscount,
		})
		if err != nil {
			return fmt.Errorf("upsert movie %q: %w", s.Title, err)
		}
	}

	return nil
}
