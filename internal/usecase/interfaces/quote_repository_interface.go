package interfaces

import (
	"context"
	"draftingco/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for QuoteSubmission.
//
// The estimator must be able to:
//   - persist a submission after the gate allows it
//   - fetch a submission back by id for the confirmation view

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSubmission, error)
}
