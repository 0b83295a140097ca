package payment

import "context"

// StatusSucceeded is the settlement status that allows an order to complete.
const StatusSucceeded = "succeeded"

// Intent mirrors the slice of a processor payment intent this service cares
// about: an opaque id, the secret the storefront needs to confirm payment,
// the settlement status, and the user the intent was created for.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	UserID       string
}

type CreateIntentInput struct {
	AmountCents int64
	Description string
	UserID      string
}

// Gateway abstracts the external payment processor. The service layer depends
// only on this interface; tests substitute an in-memory fake.
type Gateway interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
