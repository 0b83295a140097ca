package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
)

// MovieWriter is the slice of the movie repository the importer needs.
type MovieWriter interface {
	Upsert(ctx context.Context, m domain.Movie, p domain.MoviePrice) error
}

// CSVImporter reads catalog exports and upserts movies with their price
// facts. Expected columns: id, title, backdrop_path, poster_path, unit_price,
// premium_discount.
type CSVImporter struct {
	reader *csv.Reader
	movies MovieWriter
}

func NewCSVImporter(r io.Reader, movies MovieWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		movies: movies,
	}
}

// Run parses CSV rows and upserts one movie per row. It returns the number of
// movies imported and stops at the first bad row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range []string{"id", "title", "unit_price"} {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q", col)
		}
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		movie, price, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}
		if movie == nil {
			continue
		}

		if err := i.movies.Upsert(ctx, *movie, *price); err != nil {
			return imported, fmt.Errorf("upsert movie %d: %w", movie.ID, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Movie, *domain.MoviePrice, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rawID := field("id")
	if rawID == "" {
		return nil, nil, nil
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("parse id %q: %w", rawID, err)
	}

	title := field("title")
	if title == "" {
		return nil, nil, fmt.Errorf("movie %d has no title", id)
	}

	price, err := decimal.NewFromString(field("unit_price"))
	if err != nil {
		return nil, nil, fmt.Errorf("parse unit_price for movie %d: %w", id, err)
	}
	if price.IsNegative() {
		return nil, nil, fmt.Errorf("negative unit_price for movie %d", id)
	}

	discount := 0
	if raw := field("premium_discount"); raw != "" {
		discount, err = strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parse premium_discount for movie %d: %w", id, err)
		}
		if discount < 0 || discount > 100 {
			return nil, nil, fmt.Errorf("premium_discount %d out of range for movie %d", discount, id)
		}
	}

	return &domain.Movie{
			ID:           id,
			Title:        title,
			BackdropPath: field("backdrop_path"),
			PosterPath:   field("poster_path"),
		}, &domain.MoviePrice{
			MovieID:         id,
			UnitPrice:       price,
			PremiumDiscount: discount,
		}, nil
}
