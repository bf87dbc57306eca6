package handlers

import (
	"errors"
	"net/http"
	"time"

	request "draftingco/internal/adapter/http/dto/request"
	response "draftingco/internal/adapter/http/dto/response"
	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase"
	"draftingco/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles direct quote submissions and retrieval.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitQuote runs the gated submission pipeline for a standalone quote
// request. Bot-pattern rejections get the same 201 shape as a real
// submission so automated senders learn nothing from the response.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	email, err := payload.ResolveEmail()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	cfg, err := payload.Configuration.ToConfiguration()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SubmitQuote(c.Request.Context(), usecase.SubmitQuoteCommand{
		ClientKey:           c.ClientIP(),
		FormMountedAtMillis: payload.FormMountedAtMillis,
		HoneypotValue:       payload.Website,
		RepeatConfirmed:     payload.RepeatConfirmed,
		UserEmail:           email,
		Configuration:       cfg,
	})
	if err != nil {
		if isSilentRejection(err) {
			c.JSON(http.StatusCreated, response.FromQuoteSubmission(decoyQuote(email, cfg)))
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteSubmission(quote))
}

// GetQuoteByID returns a persisted submission.
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteSubmission(quote))
}

// isSilentRejection marks the gate failures that must be indistinguishable
// from success on the wire.
func isSilentRejection(err error) bool {
	return errors.Is(err, usecase.ErrSubmissionBotSuspected) || errors.Is(err, usecase.ErrSubmissionTooFast)
}

// decoyQuote is the response body for a silent rejection: a plausible
// submission that was never persisted or emailed.
func decoyQuote(email string, cfg entities.ProjectConfiguration) entities.QuoteSubmission {
	est := usecase.ComputeEstimate(cfg)
	return entities.QuoteSubmission{
		ID:            uuid.NewString(),
		UserEmail:     email,
		Configuration: cfg,
		EstimatePrice: est.Price,
		DeliveryRange: est.DeliveryRange,
		CreatedAt:     time.Now().UTC(),
	}
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserEmail), errors.Is(err, usecase.ErrInvalidTotalArea), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionRateLimited):
		return pkg.NewDomainErrorSimple("SUBMISSION_LIMIT_REACHED", "Maximum submissions reached, try later", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "You already submitted recently, confirm to submit again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
