package response

import (
	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase"
)

// WizardSessionResponse is the full session view the client renders from:
// current step, the four-label stepper position, the configuration, and
// the live estimate recomputed for this response.
type WizardSessionResponse struct {
	ID            string                        `json:"id"`
	StepIndex     int                           `json:"step_index"`
	StepperLabel  int                           `json:"stepper_label"`
	Submitted     bool                          `json:"submitted"`
	CanAdvance    bool                          `json:"can_advance"`
	Configuration entities.ProjectConfiguration `json:"configuration"`
	Estimate      EstimateResponse              `json:"estimate"`
}

func FromWizardSession(s usecase.WizardSession) WizardSessionResponse {
	return WizardSessionResponse{
		ID:            s.ID,
		StepIndex:     s.StepIndex,
		StepperLabel:  s.StepperLabel(),
		Submitted:     s.Submitted,
		CanAdvance:    s.CanAdvance(),
		Configuration: s.Config,
		Estimate:      FromEstimate(s.Estimate()),
	}
}

// WizardStepResponse wraps a session view with whether the requested move
// actually happened; a gated advance reports moved=false with no error.
type WizardStepResponse struct {
	Session WizardSessionResponse `json:"session"`
	Moved   bool                  `json:"moved"`
}

type WizardSubmitResponse struct {
	Session WizardSessionResponse `json:"session"`
	Quote   QuoteResponse         `json:"quote"`
}
