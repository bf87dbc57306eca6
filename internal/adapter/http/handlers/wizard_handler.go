package handlers

import (
	"errors"
	"net/http"

	request "draftingco/internal/adapter/http/dto/request"
	response "draftingco/internal/adapter/http/dto/response"
	"draftingco/internal/usecase"
	"draftingco/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
)

// WizardHandler drives the six-step estimator wizard over HTTP. Sessions
// are created server-side and addressed by id; the client never posts a
// step index directly.

type WizardHandler struct {
	usecase usecase.IWizardService
}

func NewWizardHandler(uc usecase.IWizardService) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// CreateSession starts a fresh wizard session with the default
// configuration.
func (h *WizardHandler) CreateSession(c *gin.Context) {
	s := h.usecase.Create()
	c.JSON(http.StatusCreated, response.FromWizardSession(s))
}

// GetSession returns the current session view.
func (h *WizardHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// UpdateConfiguration applies a partial configuration update to the
// session.
func (h *WizardHandler) UpdateConfiguration(c *gin.Context) {
	var payload request.WizardConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateConfiguration(c.Param("id"), patch)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// Advance moves the session to the next step when the current step's
// required fields are set. A blocked advance is moved=false, not an error.
func (h *WizardHandler) Advance(c *gin.Context) {
	h.step(c, h.usecase.Advance)
}

// Retreat moves the session one step back.
func (h *WizardHandler) Retreat(c *gin.Context) {
	h.step(c, h.usecase.Retreat)
}

func (h *WizardHandler) step(c *gin.Context, move func(id string) (usecase.WizardSession, bool, error)) {
	s, moved, err := move(c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WizardStepResponse{
		Session: response.FromWizardSession(s),
		Moved:   moved,
	})
}

// ExitSession resets the session back to step one with the default
// configuration.
func (h *WizardHandler) ExitSession(c *gin.Context) {
	s, err := h.usecase.Exit(c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(s))
}

// SubmitSession runs the gated quote pipeline from the summary step. Bot
// rejections are served the same 201 shape as a real submission.
func (h *WizardHandler) SubmitSession(c *gin.Context) {
	var payload request.WizardSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	s, quote, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), usecase.WizardSubmitCommand{
		UserEmail:           payload.UserEmail,
		ClientKey:           c.ClientIP(),
		FormMountedAtMillis: payload.FormMountedAtMillis,
		HoneypotValue:       payload.Website,
		RepeatConfirmed:     payload.RepeatConfirmed,
	})
	if err != nil {
		if isSilentRejection(err) {
			fake := s
			fake.Submitted = true
			c.JSON(http.StatusCreated, response.WizardSubmitResponse{
				Session: response.FromWizardSession(fake),
				Quote:   response.FromQuoteSubmission(decoyQuote(payload.UserEmail, s.Config)),
			})
			return
		}
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.WizardSubmitResponse{
		Session: response.FromWizardSession(s),
		Quote:   response.FromQuoteSubmission(quote),
	})
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWizardSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWizardAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "This session was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrWizardNotAtSummary):
		return pkg.NewDomainErrorSimple("NOT_AT_SUMMARY", "Submit is only available from the summary step", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTotalArea),
		errors.Is(err, usecase.ErrInvalidServiceType),
		errors.Is(err, usecase.ErrInvalidSpaceType),
		errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrInvalidRevitVersion),
		errors.Is(err, usecase.ErrInvalidMeasurementUnit),
		errors.Is(err, usecase.ErrInvalidUserEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionRateLimited):
		return pkg.NewDomainErrorSimple("SUBMISSION_LIMIT_REACHED", "Maximum submissions reached, try later", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "You already submitted recently, confirm to submit again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
