package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"draftingco/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrWizardSessionNotFound  = errors.New("wizard session not found")
	ErrWizardAlreadySubmitted = errors.New("wizard session already submitted")
	ErrWizardNotAtSummary     = errors.New("submit only allowed at the summary step")
	ErrInvalidTotalArea       = errors.New("total area must not be negative")
	ErrInvalidServiceType     = errors.New("invalid service type")
	ErrInvalidSpaceType       = errors.New("invalid space type")
	ErrInvalidScope           = errors.New("invalid scope")
	ErrInvalidRevitVersion    = errors.New("invalid revit version")
	ErrInvalidMeasurementUnit = errors.New("invalid measurement unit")
)

// Wizard steps. The submitted state is orthogonal: it is a flag reachable
// only from StepEstimateSummary and does not move the step index.
const (
	StepServiceSelection = 1
	StepLocationDetails  = 2
	StepProjectDetails   = 3
	StepConfigureProject = 4
	StepScanDates        = 5
	StepEstimateSummary  = 6
)

// WizardSession is one customer's pass through the estimator.
//
// The session owns its ProjectConfiguration; every read of the estimate
// recomputes it from the current configuration, so the summary step can
// never show a stale figure.

type WizardSession struct {
	ID        string
	StepIndex int
	Config    entities.ProjectConfiguration
	Submitted bool
}

func newWizardSession(id string) *WizardSession {
	return &WizardSession{
		ID:        id,
		StepIndex: StepServiceSelection,
		Config:    entities.DefaultProjectConfiguration(),
	}
}

// Estimate derives the current price/delivery projection.
func (s *WizardSession) Estimate() entities.Estimate {
	return ComputeEstimate(s.Config)
}

// CanAdvance reports whether the current step's required fields are
// populated. Steps 3 and 4 have no blocking requirement; step 6 is the
// last step and never advances.
func (s *WizardSession) CanAdvance() bool {
	switch s.StepIndex {
	case StepServiceSelection:
		return s.Config.Service.Valid()
	case StepLocationDetails:
		return strings.TrimSpace(s.Config.Address) != "" && s.Config.MapLocation != nil
	case StepScanDates:
		return strings.TrimSpace(s.Config.ScanDate1) != ""
	case StepEstimateSummary:
		return false
	default:
		return true
	}
}

// Advance moves to the next step when the current step's requirements are
// met. A gated advance is a no-op, not an error.
func (s *WizardSession) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	s.StepIndex++
	if s.StepIndex > StepEstimateSummary {
		s.StepIndex = StepEstimateSummary
	}
	return true
}

// Retreat moves one step back; a no-op at the first step.
func (s *WizardSession) Retreat() bool {
	if s.StepIndex <= StepServiceSelection {
		return false
	}
	s.StepIndex--
	return true
}

// Exit resets the session to its initial state. Idempotent.
func (s *WizardSession) Exit() {
	s.Config = entities.DefaultProjectConfiguration()
	s.StepIndex = StepServiceSelection
	s.Submitted = false
}

// StepperLabel maps the six internal steps onto the four-label visual
// stepper: 1->1, 2->2, 3..5->3 ("Order Details"), 6->4 ("Get an
// Estimate"); a submitted session shows the fifth, terminal label.
func (s *WizardSession) StepperLabel() int {
	if s.Submitted {
		return 5
	}
	switch {
	case s.StepIndex <= StepLocationDetails:
		return s.StepIndex
	case s.StepIndex <= StepScanDates:
		return 3
	default:
		return 4
	}
}

// ConfigurationPatch is a partial update to a session's configuration.
// Nil fields are left untouched. Scopes replaces the whole set;
// ToggleScope flips a single scope in or out.

type ConfigurationPatch struct {
	Service           *entities.ServiceType
	ProjectName       *string
	Address           *string
	MapLocation       *entities.Coordinate
	TotalAreaSqFt     *int
	Floors            *string
	SpaceType         *entities.SpaceType
	Scopes            *[]entities.Scope
	ToggleScope       *entities.Scope
	ComplexMEPF       *bool
	ExteriorModelling *bool
	ProjectControls   *bool
	COIRequired       *bool
	RevitVersion      *entities.RevitVersion
	PreferredUnit     *entities.MeasurementUnit
	AttachedFileNames *[]string
	ScanDate1         *string
	ScanDate2         *string
}

func (p ConfigurationPatch) validate() error {
	if p.Service != nil && !p.Service.Valid() {
		return ErrInvalidServiceType
	}
	if p.TotalAreaSqFt != nil && *p.TotalAreaSqFt < 0 {
		return ErrInvalidTotalArea
	}
	if p.SpaceType != nil && !p.SpaceType.Valid() {
		return ErrInvalidSpaceType
	}
	if p.Scopes != nil {
		for _, s := range *p.Scopes {
			if !s.Valid() {
				return ErrInvalidScope
			}
		}
	}
	if p.ToggleScope != nil && !p.ToggleScope.Valid() {
		return ErrInvalidScope
	}
	if p.RevitVersion != nil && !p.RevitVersion.Valid() {
		return ErrInvalidRevitVersion
	}
	if p.PreferredUnit != nil && !p.PreferredUnit.Valid() {
		return ErrInvalidMeasurementUnit
	}
	return nil
}

func (p ConfigurationPatch) apply(cfg *entities.ProjectConfiguration) {
	if p.Service != nil {
		cfg.Service = *p.Service
	}
	if p.ProjectName != nil {
		cfg.ProjectName = *p.ProjectName
	}
	if p.Address != nil {
		cfg.Address = *p.Address
	}
	if p.MapLocation != nil {
		loc := *p.MapLocation
		cfg.MapLocation = &loc
	}
	if p.TotalAreaSqFt != nil {
		cfg.TotalAreaSqFt = *p.TotalAreaSqFt
	}
	if p.Floors != nil {
		cfg.Floors = *p.Floors
	}
	if p.SpaceType != nil {
		cfg.SpaceType = *p.SpaceType
	}
	if p.Scopes != nil {
		cfg.Scopes = dedupeScopes(*p.Scopes)
	}
	if p.ToggleScope != nil {
		cfg.ToggleScope(*p.ToggleScope)
	}
	if p.ComplexMEPF != nil {
		cfg.ComplexMEPF = *p.ComplexMEPF
	}
	if p.ExteriorModelling != nil {
		cfg.ExteriorModelling = *p.ExteriorModelling
	}
	if p.ProjectControls != nil {
		cfg.ProjectControls = *p.ProjectControls
	}
	if p.COIRequired != nil {
		cfg.COIRequired = *p.COIRequired
	}
	if p.RevitVersion != nil {
		cfg.RevitVersion = *p.RevitVersion
	}
	if p.PreferredUnit != nil {
		cfg.PreferredUnit = *p.PreferredUnit
	}
	if p.AttachedFileNames != nil {
		cfg.AttachedFileNames = append([]string(nil), (*p.AttachedFileNames)...)
	}
	if p.ScanDate1 != nil {
		cfg.ScanDate1 = *p.ScanDate1
	}
	if p.ScanDate2 != nil {
		cfg.ScanDate2 = *p.ScanDate2
	}
}

func dedupeScopes(in []entities.Scope) []entities.Scope {
	out := make([]entities.Scope, 0, len(in))
	for _, s := range in {
		seen := false
		for _, kept := range out {
			if kept == s {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, s)
		}
	}
	return out
}

// WizardSubmitCommand carries what the summary step collects before the
// terminal submit.

type WizardSubmitCommand struct {
	UserEmail           string
	ClientKey           string
	FormMountedAtMillis int64
	HoneypotValue       string
	RepeatConfirmed     bool
}

// IWizardService exposes the estimator wizard session operations.

type IWizardService interface {
	Create() WizardSession
	Get(id string) (WizardSession, error)
	UpdateConfiguration(id string, patch ConfigurationPatch) (WizardSession, error)
	Advance(id string) (WizardSession, bool, error)
	Retreat(id string) (WizardSession, bool, error)
	Exit(id string) (WizardSession, error)
	Submit(ctx context.Context, id string, cmd WizardSubmitCommand) (WizardSession, entities.QuoteSubmission, error)
}

// WizardService keeps the live sessions. Sessions are in-memory by design:
// a wizard session lives and dies with the customer's visit, only the
// final submission is persisted.

type WizardService struct {
	mu       sync.Mutex
	sessions map[string]*WizardSession
	quotes   IQuoteUseCase
}

var _ IWizardService = (*WizardService)(nil)

func NewWizardService(quotes IQuoteUseCase) *WizardService {
	return &WizardService{
		sessions: make(map[string]*WizardSession),
		quotes:   quotes,
	}
}

func (w *WizardService) Create() WizardSession {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := newWizardSession(uuid.NewString())
	w.sessions[s.ID] = s
	log.Printf("[wizard][service] session created id=%s", s.ID)
	return *s
}

func (w *WizardService) Get(id string) (WizardSession, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.sessions[strings.TrimSpace(id)]
	if !ok {
		return WizardSession{}, ErrWizardSessionNotFound
	}
	return *s, nil
}

func (w *WizardService) UpdateConfiguration(id string, patch ConfigurationPatch) (WizardSession, error) {
	if err := patch.validate(); err != nil {
		return WizardSession{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.sessions[strings.TrimSpace(id)]
	if !ok {
		return WizardSession{}, ErrWizardSessionNotFound
	}
	patch.apply(&s.Config)
	return *s, nil
}

func (w *WizardService) Advance(id string) (WizardSession, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.sessions[strings.TrimSpace(id)]
	if !ok {
		return WizardSession{}, false, ErrWizardSessionNotFound
	}
	moved := s.Advance()
	return *s, moved, nil
}

func (w *WizardService) Retreat(id string) (WizardSession, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.sessions[strings.TrimSpace(id)]
	if !ok {
		return WizardSession{}, false, ErrWizardSessionNotFound
	}
	moved := s.Retreat()
	return *s, moved, nil
}

func (w *WizardService) Exit(id string) (WizardSession, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.sessions[strings.TrimSpace(id)]
	if !ok {
		return WizardSession{}, ErrWizardSessionNotFound
	}
	s.Exit()
	log.Printf("[wizard][service] session reset id=%s", s.ID)
	return *s, nil
}

// Submit runs the gated quote pipeline for a session sitting at the
// summary step. On success the session stays on the summary step with the
// submitted flag set, so the confirmation view keeps rendering.
func (w *WizardService) Submit(ctx context.Context, id string, cmd WizardSubmitCommand) (WizardSession, entities.QuoteSubmission, error) {
	w.mu.Lock()
	s, ok := w.sessions[strings.TrimSpace(id)]
	if !ok {
		w.mu.Unlock()
		return WizardSession{}, entities.QuoteSubmission{}, ErrWizardSessionNotFound
	}
	if s.Submitted {
		snapshot := *s
		w.mu.Unlock()
		return snapshot, entities.QuoteSubmission{}, ErrWizardAlreadySubmitted
	}
	if s.StepIndex != StepEstimateSummary {
		snapshot := *s
		w.mu.Unlock()
		return snapshot, entities.QuoteSubmission{}, ErrWizardNotAtSummary
	}
	cfg := s.Config
	w.mu.Unlock()

	// The quote pipeline does network I/O; it runs outside the session
	// lock against a copy of the configuration.
	quote, err := w.quotes.SubmitQuote(ctx, SubmitQuoteCommand{
		ClientKey:           cmd.ClientKey,
		FormMountedAtMillis: cmd.FormMountedAtMillis,
		HoneypotValue:       cmd.HoneypotValue,
		RepeatConfirmed:     cmd.RepeatConfirmed,
		UserEmail:           cmd.UserEmail,
		Configuration:       cfg,
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		// Failed submissions keep the session retryable.
		return *s, entities.QuoteSubmission{}, err
	}
	s.Submitted = true
	log.Printf("[wizard][service] session submitted id=%s quote_id=%s", s.ID, quote.ID)
	return *s, quote, nil
}
