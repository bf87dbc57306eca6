package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"draftingco/internal/domain/entities"
	mock_interfaces "draftingco/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSubmitCommand() SubmitQuoteCommand {
	return SubmitQuoteCommand{
		ClientKey:           "203.0.113.7",
		FormMountedAtMillis: time.Now().Add(-time.Minute).UnixMilli(),
		UserEmail:           "pm@example.com",
		Configuration:       entities.DefaultProjectConfiguration(),
	}
}

func TestQuoteUseCase_SubmitQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid email", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, NewSubmissionGate(newMemStore()), nil)
		cmd := validSubmitCommand()
		cmd.UserEmail = "not-an-email"
		_, err := uc.SubmitQuote(ctx, cmd)
		if !errors.Is(err, ErrInvalidUserEmail) {
			t.Fatalf("expected ErrInvalidUserEmail, got %v", err)
		}
	})

	t.Run("negative area", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, NewSubmissionGate(newMemStore()), nil)
		cmd := validSubmitCommand()
		cmd.Configuration.TotalAreaSqFt = -50
		_, err := uc.SubmitQuote(ctx, cmd)
		if !errors.Is(err, ErrInvalidTotalArea) {
			t.Fatalf("expected ErrInvalidTotalArea, got %v", err)
		}
	})

	t.Run("gate rejection is passed through", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, NewSubmissionGate(newMemStore()), nil)
		cmd := validSubmitCommand()
		cmd.HoneypotValue = "filled by a bot"
		_, err := uc.SubmitQuote(ctx, cmd)
		if !errors.Is(err, ErrSubmissionBotSuspected) {
			t.Fatalf("expected ErrSubmissionBotSuspected, got %v", err)
		}
	})

	t.Run("repository failure does not consume a slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		store := newMemStore()
		uc := NewQuoteUseCase(repo, NewSubmissionGate(store), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteSubmission{}, errors.New("db"))

		cmd := validSubmitCommand()
		if _, err := uc.SubmitQuote(ctx, cmd); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}

		state := store.throttle(t, cmd.ClientKey)
		if state.CountInWindow != 0 {
			t.Fatalf("failed submission must not consume a slot, got %+v", state)
		}
	})

	t.Run("success persists, consumes slot, dispatches email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		store := newMemStore()
		uc := NewQuoteUseCase(repo, NewSubmissionGate(store), notifier)

		cmd := validSubmitCommand()
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSubmission{})).DoAndReturn(
			func(_ context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error) {
				if q.ID == "" || q.UserEmail != "pm@example.com" {
					t.Errorf("unexpected quote: %+v", q)
				}
				// Server-side pricing for the default configuration.
				if q.EstimatePrice != 4900 || q.DeliveryRange != "6-9 Business Days" {
					t.Errorf("unexpected estimate snapshot: %+v", q)
				}
				if q.CreatedAt.IsZero() {
					t.Errorf("expected created_at")
				}
				return q, nil
			},
		)

		notified := make(chan entities.QuoteSubmission, 1)
		notifier.EXPECT().SendEstimateSummary(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteSubmission) error {
				notified <- q
				return nil
			},
		)

		res, err := uc.SubmitQuote(ctx, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}

		select {
		case q := <-notified:
			if q.ID != res.ID {
				t.Fatalf("email for wrong quote: %s vs %s", q.ID, res.ID)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("summary email never dispatched")
		}

		state := store.throttle(t, cmd.ClientKey)
		if state.CountInWindow != 1 {
			t.Fatalf("expected one consumed slot, got %+v", state)
		}
	})

	t.Run("notifier failure does not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewQuoteUseCase(repo, NewSubmissionGate(newMemStore()), notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteSubmission) (entities.QuoteSubmission, error) { return q, nil },
		)
		notified := make(chan struct{})
		notifier.EXPECT().SendEstimateSummary(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.QuoteSubmission) error {
				close(notified)
				return errors.New("resend 503")
			},
		)

		if _, err := uc.SubmitQuote(ctx, validSubmitCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		select {
		case <-notified:
		case <-time.After(2 * time.Second):
			t.Fatalf("summary email never attempted")
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.GetByID(ctx, "   ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteSubmission{}, errors.New("db"))

		if _, err := uc.GetByID(ctx, "q-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteSubmission{}, nil)

		if _, err := uc.GetByID(ctx, "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		expected := entities.QuoteSubmission{ID: "q-1", UserEmail: "pm@example.com"}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(expected, nil)

		res, err := uc.GetByID(ctx, " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
