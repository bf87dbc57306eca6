package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidUserEmail = errors.New("invalid user email")
)

const notifyTimeout = 30 * time.Second

// SubmitQuoteCommand is one gated submission attempt, either from the
// wizard summary step or from the standalone contact form.

type SubmitQuoteCommand struct {
	ClientKey           string
	FormMountedAtMillis int64
	HoneypotValue       string
	RepeatConfirmed     bool
	UserEmail           string
	Configuration       entities.ProjectConfiguration
}

// IQuoteUseCase exposes the quote submission operations.

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (entities.QuoteSubmission, error)
	GetByID(ctx context.Context, id string) (entities.QuoteSubmission, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	gate     *SubmissionGate
	notifier interfaces.INotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, gate *SubmissionGate, notifier interfaces.INotifier) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, gate: gate, notifier: notifier}
}

// SubmitQuote runs the full pipeline: gate, recompute the estimate
// server-side, persist, consume a throttle slot, dispatch the summary
// email. The slot is consumed only after persistence succeeded, and the
// email is fire-and-forget.
func (u *QuoteUseCase) SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (entities.QuoteSubmission, error) {
	email := strings.TrimSpace(cmd.UserEmail)
	if email == "" || !strings.Contains(email, "@") {
		return entities.QuoteSubmission{}, ErrInvalidUserEmail
	}
	if cmd.Configuration.TotalAreaSqFt < 0 {
		return entities.QuoteSubmission{}, ErrInvalidTotalArea
	}

	if err := u.gate.Check(ctx, GateRequest{
		ClientKey:           cmd.ClientKey,
		FormMountedAtMillis: cmd.FormMountedAtMillis,
		HoneypotValue:       cmd.HoneypotValue,
		RepeatConfirmed:     cmd.RepeatConfirmed,
	}); err != nil {
		return entities.QuoteSubmission{}, err
	}

	est := ComputeEstimate(cmd.Configuration)
	q := entities.QuoteSubmission{
		ID:            uuid.NewString(),
		UserEmail:     email,
		Configuration: cmd.Configuration,
		EstimatePrice: est.Price,
		DeliveryRange: est.DeliveryRange,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] persist failed quote_id=%s err=%v", q.ID, err)
		return entities.QuoteSubmission{}, err
	}
	log.Printf("[quote][usecase] submission persisted quote_id=%s price=%.2f", created.ID, created.EstimatePrice)

	if err := u.gate.ConsumeSlot(ctx, cmd.ClientKey); err != nil {
		// The submission already succeeded; losing a throttle update is
		// the lesser failure.
		log.Printf("[quote][usecase] throttle update failed client=%s err=%v", cmd.ClientKey, err)
	}

	if u.notifier != nil {
		go func(q entities.QuoteSubmission) {
			nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := u.notifier.SendEstimateSummary(nctx, q); err != nil {
				log.Printf("[quote][usecase] summary email failed quote_id=%s err=%v", q.ID, err)
			}
		}(created)
	}

	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteSubmission{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteSubmission{}, err
	}
	if q.ID == "" {
		return entities.QuoteSubmission{}, ErrQuoteNotFound
	}
	return q, nil
}
