package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
)

type stubRepo struct {
	insertErr    error
	updateErr    error
	deleteErr    error
	retrieveRows []domain.PriceRow
	retrieveErr  error
	clearedRows  int64
	clearErr     error

	insertCalls int
	updateCalls int
	lastUserID  int64
	lastMovieID int64
	lastQty     int
}

func (s *stubRepo) Insert(_ context.Context, userID, movieID int64, quantity int) error {
	s.insertCalls++
	s.lastUserID, s.lastMovieID, s.lastQty = userID, movieID, quantity
	return s.insertErr
}

func (s *stubRepo) Update(_ context.Context, userID, movieID int64, quantity int) error {
	s.updateCalls++
	s.lastUserID, s.lastMovieID, s.lastQty = userID, movieID, quantity
	return s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, userID, movieID int64) error {
	s.lastUserID, s.lastMovieID = userID, movieID
	return s.deleteErr
}

func (s *stubRepo) Retrieve(_ context.Context, userID int64) ([]domain.PriceRow, error) {
	s.lastUserID = userID
	return s.retrieveRows, s.retrieveErr
}

func (s *stubRepo) Clear(_ context.Context, userID int64) (int64, error) {
	s.lastUserID = userID
	return s.clearedRows, s.clearErr
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestInsert_QuantityBounds(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	if err := svc.Insert(context.Background(), 1, 2, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := svc.Insert(context.Background(), 1, 2, 11); !errors.Is(err, domain.ErrQuantityTooLarge) {
		t.Fatalf("expected ErrQuantityTooLarge, got %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("repo called %d times before validation passed", repo.insertCalls)
	}

	if err := svc.Insert(context.Background(), 1, 2, 10); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if repo.insertCalls != 1 || repo.lastUserID != 1 || repo.lastMovieID != 2 || repo.lastQty != 10 {
		t.Fatalf("unexpected repo call %+v", repo)
	}
}

func TestInsert_ConflictPassthrough(t *testing.T) {
	repo := &stubRepo{insertErr: domain.ErrCartItemExists}
	svc := &Service{repo: repo}

	if err := svc.Insert(context.Background(), 1, 2, 3); !errors.Is(err, domain.ErrCartItemExists) {
		t.Fatalf("expected ErrCartItemExists, got %v", err)
	}
}

func TestUpdate_QuantityBounds(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	if err := svc.Update(context.Background(), 1, 2, -3); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("repo called for out-of-range quantity")
	}

	repo.updateErr = domain.ErrCartItemNotFound
	if err := svc.Update(context.Background(), 1, 2, 5); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestRetrieve_PricesRows(t *testing.T) {
	repo := &stubRepo{retrieveRows: []domain.PriceRow{
		{MovieID: 7, Title: "Heat", Quantity: 2, UnitPrice: dec(t, "10.00"), PremiumDiscount: 20},
		{MovieID: 9, Title: "Ronin", Quantity: 1, UnitPrice: dec(t, "4.99"), PremiumDiscount: 10},
	}}
	svc := &Service{repo: repo}

	items, total, err := svc.Retrieve(context.Background(), 5, true)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].UnitPrice.Equal(dec(t, "8.00")) {
		t.Fatalf("premium price = %s, want 8.00", items[0].UnitPrice)
	}
	if !items[1].UnitPrice.Equal(dec(t, "4.49")) {
		t.Fatalf("premium price = %s, want 4.49", items[1].UnitPrice)
	}
	if !total.Equal(dec(t, "20.49")) {
		t.Fatalf("total = %s, want 20.49", total)
	}

	items, total, err = svc.Retrieve(context.Background(), 5, false)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if !items[0].UnitPrice.Equal(dec(t, "10.00")) || !total.Equal(dec(t, "24.99")) {
		t.Fatalf("non-premium pricing wrong: %s total %s", items[0].UnitPrice, total)
	}
}

func TestRetrieve_EmptyCartIsNotAnError(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	items, total, err := svc.Retrieve(context.Background(), 5, false)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(items) != 0 || !total.IsZero() {
		t.Fatalf("expected empty result, got %d items total %s", len(items), total)
	}
}

func TestClear_ReportsAffectedRows(t *testing.T) {
	repo := &stubRepo{clearedRows: 3}
	svc := &Service{repo: repo}

	n, err := svc.Clear(context.Background(), 5)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Fatalf("cleared %d, want 3", n)
	}

	repo.clearedRows = 0
	if n, err = svc.Clear(context.Background(), 5); err != nil || n != 0 {
		t.Fatalf("already-empty clear: n=%d err=%v", n, err)
	}
}
