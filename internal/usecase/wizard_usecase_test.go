package usecase

import (
	"context"
	"errors"
	"testing"

	"draftingco/internal/domain/entities"
)

// quoteStub satisfies IQuoteUseCase for wizard tests.

type quoteStub struct {
	submitFn func(ctx context.Context, cmd SubmitQuoteCommand) (entities.QuoteSubmission, error)
}

func (s *quoteStub) SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (entities.QuoteSubmission, error) {
	return s.submitFn(ctx, cmd)
}

func (s *quoteStub) GetByID(context.Context, string) (entities.QuoteSubmission, error) {
	return entities.QuoteSubmission{}, nil
}

func readySession(t *testing.T, w *WizardService) WizardSession {
	t.Helper()
	s := w.Create()

	svc := entities.ServiceScanIt
	addr := "350 5th Ave, New York, NY"
	loc := entities.Coordinate{Latitude: 40.7484, Longitude: -73.9857}
	date := "2025-07-01"
	s, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{
		Service:     &svc,
		Address:     &addr,
		MapLocation: &loc,
		ScanDate1:   &date,
	})
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	return s
}

func advanceTo(t *testing.T, w *WizardService, id string, step int) WizardSession {
	t.Helper()
	var s WizardSession
	for {
		var moved bool
		var err error
		s, moved, err = w.Advance(id)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if s.StepIndex >= step {
			return s
		}
		if !moved {
			t.Fatalf("advance stalled at step %d", s.StepIndex)
		}
	}
}

func TestWizardSession_AdvanceGating(t *testing.T) {
	w := NewWizardService(nil)

	t.Run("step 1 without service is a no-op", func(t *testing.T) {
		s := w.Create()
		after, moved, err := w.Advance(s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved || after.StepIndex != StepServiceSelection {
			t.Fatalf("expected no-op at step 1, got moved=%v step=%d", moved, after.StepIndex)
		}
	})

	t.Run("step 2 needs address and map location", func(t *testing.T) {
		s := w.Create()
		svc := entities.ServiceBimIt
		addr := "1 Market St"
		if _, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{Service: &svc, Address: &addr}); err != nil {
			t.Fatalf("configure: %v", err)
		}
		after := advanceTo(t, w, s.ID, StepLocationDetails)

		after, moved, err := w.Advance(s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved || after.StepIndex != StepLocationDetails {
			t.Fatalf("expected no-op without map location, got moved=%v step=%d", moved, after.StepIndex)
		}

		loc := entities.Coordinate{Latitude: 37.79, Longitude: -122.39}
		if _, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{MapLocation: &loc}); err != nil {
			t.Fatalf("configure: %v", err)
		}
		after, moved, err = w.Advance(s.ID)
		if err != nil || !moved || after.StepIndex != StepProjectDetails {
			t.Fatalf("expected advance to step 3, got moved=%v step=%d err=%v", moved, after.StepIndex, err)
		}
	})

	t.Run("steps 3 and 4 always advance", func(t *testing.T) {
		s := readySession(t, w)
		after := advanceTo(t, w, s.ID, StepScanDates)
		if after.StepIndex != StepScanDates {
			t.Fatalf("expected step 5, got %d", after.StepIndex)
		}
	})

	t.Run("step 5 needs first scan date", func(t *testing.T) {
		s := readySession(t, w)
		empty := ""
		if _, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{ScanDate1: &empty}); err != nil {
			t.Fatalf("configure: %v", err)
		}
		advanceTo(t, w, s.ID, StepScanDates)

		after, moved, err := w.Advance(s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved || after.StepIndex != StepScanDates {
			t.Fatalf("expected no-op without scan date, got moved=%v step=%d", moved, after.StepIndex)
		}
	})

	t.Run("clamped at summary", func(t *testing.T) {
		s := readySession(t, w)
		advanceTo(t, w, s.ID, StepEstimateSummary)

		after, moved, err := w.Advance(s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if moved || after.StepIndex != StepEstimateSummary {
			t.Fatalf("expected clamp at step 6, got moved=%v step=%d", moved, after.StepIndex)
		}
	})
}

func TestWizardSession_RetreatAndExit(t *testing.T) {
	w := NewWizardService(nil)

	t.Run("retreat is a no-op at step 1", func(t *testing.T) {
		s := w.Create()
		after, moved, err := w.Retreat(s.ID)
		if err != nil || moved || after.StepIndex != StepServiceSelection {
			t.Fatalf("expected no-op, got moved=%v step=%d err=%v", moved, after.StepIndex, err)
		}
	})

	t.Run("retreat walks back without gating", func(t *testing.T) {
		s := readySession(t, w)
		advanceTo(t, w, s.ID, StepEstimateSummary)
		for want := StepScanDates; want >= StepServiceSelection; want-- {
			after, moved, err := w.Retreat(s.ID)
			if err != nil || !moved || after.StepIndex != want {
				t.Fatalf("expected step %d, got moved=%v step=%d err=%v", want, moved, after.StepIndex, err)
			}
		}
	})

	t.Run("exit resets and is idempotent", func(t *testing.T) {
		s := readySession(t, w)
		advanceTo(t, w, s.ID, StepEstimateSummary)

		for i := 0; i < 2; i++ {
			after, err := w.Exit(s.ID)
			if err != nil {
				t.Fatalf("exit: %v", err)
			}
			if after.StepIndex != StepServiceSelection || after.Submitted {
				t.Fatalf("expected reset session, got %+v", after)
			}
			defaults := entities.DefaultProjectConfiguration()
			if after.Config.Service != defaults.Service ||
				after.Config.TotalAreaSqFt != defaults.TotalAreaSqFt ||
				after.Config.Address != defaults.Address ||
				len(after.Config.Scopes) != 1 || after.Config.Scopes[0] != entities.ScopeArchitecture {
				t.Fatalf("expected default configuration, got %+v", after.Config)
			}
		}
	})
}

func TestWizardSession_StepperLabel(t *testing.T) {
	cases := []struct {
		step      int
		submitted bool
		want      int
	}{
		{StepServiceSelection, false, 1},
		{StepLocationDetails, false, 2},
		{StepProjectDetails, false, 3},
		{StepConfigureProject, false, 3},
		{StepScanDates, false, 3},
		{StepEstimateSummary, false, 4},
		{StepEstimateSummary, true, 5},
	}
	for _, tc := range cases {
		s := &WizardSession{StepIndex: tc.step, Submitted: tc.submitted}
		if got := s.StepperLabel(); got != tc.want {
			t.Fatalf("step %d submitted=%v: expected label %d, got %d", tc.step, tc.submitted, tc.want, got)
		}
	}
}

func TestWizardService_UpdateConfiguration(t *testing.T) {
	w := NewWizardService(nil)

	t.Run("unknown session", func(t *testing.T) {
		svc := entities.ServiceScanIt
		_, err := w.UpdateConfiguration("nope", ConfigurationPatch{Service: &svc})
		if !errors.Is(err, ErrWizardSessionNotFound) {
			t.Fatalf("expected ErrWizardSessionNotFound, got %v", err)
		}
	})

	t.Run("negative area rejected", func(t *testing.T) {
		s := w.Create()
		area := -1
		_, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{TotalAreaSqFt: &area})
		if !errors.Is(err, ErrInvalidTotalArea) {
			t.Fatalf("expected ErrInvalidTotalArea, got %v", err)
		}
	})

	t.Run("invalid enums rejected", func(t *testing.T) {
		s := w.Create()
		svc := entities.ServiceType("LIDARIT")
		if _, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{Service: &svc}); !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
		scope := entities.Scope("Landscaping")
		if _, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{ToggleScope: &scope}); !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("expected ErrInvalidScope, got %v", err)
		}
	})

	t.Run("toggle scope flips membership", func(t *testing.T) {
		s := w.Create()
		mepf := entities.ScopeMEPF
		after, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{ToggleScope: &mepf})
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if !after.Config.HasScope(entities.ScopeMEPF) {
			t.Fatalf("expected MEPF selected, got %v", after.Config.Scopes)
		}

		after, err = w.UpdateConfiguration(s.ID, ConfigurationPatch{ToggleScope: &mepf})
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if after.Config.HasScope(entities.ScopeMEPF) {
			t.Fatalf("expected MEPF deselected, got %v", after.Config.Scopes)
		}
	})

	t.Run("scope list replaced with duplicates removed", func(t *testing.T) {
		s := w.Create()
		scopes := []entities.Scope{entities.ScopeFurniture, entities.ScopeFurniture, entities.ScopeMEPF}
		after, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{Scopes: &scopes})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if len(after.Config.Scopes) != 2 {
			t.Fatalf("expected deduped scopes, got %v", after.Config.Scopes)
		}
	})

	t.Run("estimate follows configuration", func(t *testing.T) {
		s := w.Create()
		area := 12000
		complexMEPF := true
		exterior := true
		scopes := []entities.Scope{entities.ScopeArchitecture, entities.ScopeFurniture, entities.ScopeMEPF}
		after, err := w.UpdateConfiguration(s.ID, ConfigurationPatch{
			TotalAreaSqFt:     &area,
			Scopes:            &scopes,
			ComplexMEPF:       &complexMEPF,
			ExteriorModelling: &exterior,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		est := after.Estimate()
		if est.Price != 10550 || est.DeliveryRange != "10-13 Business Days" {
			t.Fatalf("unexpected estimate: %+v", est)
		}
	})
}

func TestWizardService_Submit(t *testing.T) {
	ctx := context.Background()
	cmd := WizardSubmitCommand{UserEmail: "pm@example.com", ClientKey: "c1", FormMountedAtMillis: 1}

	t.Run("unknown session", func(t *testing.T) {
		w := NewWizardService(&quoteStub{})
		_, _, err := w.Submit(ctx, "nope", cmd)
		if !errors.Is(err, ErrWizardSessionNotFound) {
			t.Fatalf("expected ErrWizardSessionNotFound, got %v", err)
		}
	})

	t.Run("not at summary step", func(t *testing.T) {
		w := NewWizardService(&quoteStub{})
		s := w.Create()
		_, _, err := w.Submit(ctx, s.ID, cmd)
		if !errors.Is(err, ErrWizardNotAtSummary) {
			t.Fatalf("expected ErrWizardNotAtSummary, got %v", err)
		}
	})

	t.Run("pipeline failure keeps session retryable", func(t *testing.T) {
		w := NewWizardService(&quoteStub{submitFn: func(context.Context, SubmitQuoteCommand) (entities.QuoteSubmission, error) {
			return entities.QuoteSubmission{}, errors.New("backend down")
		}})
		s := readySession(t, w)
		advanceTo(t, w, s.ID, StepEstimateSummary)

		after, _, err := w.Submit(ctx, s.ID, cmd)
		if err == nil || err.Error() != "backend down" {
			t.Fatalf("expected backend error, got %v", err)
		}
		if after.Submitted {
			t.Fatalf("failed submit must not mark session submitted")
		}
	})

	t.Run("success marks submitted and keeps summary step", func(t *testing.T) {
		var got SubmitQuoteCommand
		w := NewWizardService(&quoteStub{submitFn: func(_ context.Context, c SubmitQuoteCommand) (entities.QuoteSubmission, error) {
			got = c
			return entities.QuoteSubmission{ID: "q-1"}, nil
		}})
		s := readySession(t, w)
		advanceTo(t, w, s.ID, StepEstimateSummary)

		after, quote, err := w.Submit(ctx, s.ID, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !after.Submitted || after.StepIndex != StepEstimateSummary {
			t.Fatalf("unexpected session after submit: %+v", after)
		}
		if quote.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", quote)
		}
		if got.UserEmail != "pm@example.com" || got.Configuration.Service != entities.ServiceScanIt {
			t.Fatalf("pipeline received wrong command: %+v", got)
		}

		if _, _, err := w.Submit(ctx, s.ID, cmd); !errors.Is(err, ErrWizardAlreadySubmitted) {
			t.Fatalf("expected ErrWizardAlreadySubmitted, got %v", err)
		}
	})
}
