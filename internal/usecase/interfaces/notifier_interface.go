package interfaces

import (
	"context"
	"draftingco/internal/domain/entities"
)

// INotifier abstracts the estimate-summary email dispatch (e.g. Resend).
//
// Dispatch is best-effort: it runs only after a submission was persisted,
// and a failure here must never roll back or fail the submission.

type INotifier interface {
	SendEstimateSummary(ctx context.Context, q entities.QuoteSubmission) error
}
