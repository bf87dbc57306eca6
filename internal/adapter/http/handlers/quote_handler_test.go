package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"draftingco/internal/adapter/http/handlers/mocks"
	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *QuoteHandler, body string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		w := post(NewQuoteHandler(uc), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		w := post(NewQuoteHandler(uc), `{"user_email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		now := time.Now().UTC()
		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, cmd usecase.SubmitQuoteCommand) (entities.QuoteSubmission, error) {
				if cmd.UserEmail != "jane@example.com" {
					t.Fatalf("unexpected email: %s", cmd.UserEmail)
				}
				if cmd.Configuration.TotalAreaSqFt != 2000 {
					t.Fatalf("unexpected area: %d", cmd.Configuration.TotalAreaSqFt)
				}
				return entities.QuoteSubmission{
					ID:            "q-1",
					UserEmail:     cmd.UserEmail,
					Configuration: cmd.Configuration,
					EstimatePrice: 5050,
					DeliveryRange: "6-9 Business Days",
					CreatedAt:     now,
				}, nil
			})

		w := post(NewQuoteHandler(uc), `{"user_email":"jane@example.com","form_mounted_at_millis":1,"configuration":{"total_area":2000}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteSubmission{}, usecase.ErrSubmissionRateLimited)

		w := post(NewQuoteHandler(uc), `{"user_email":"jane@example.com"}`)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("confirmation required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteSubmission{}, usecase.ErrConfirmationRequired)

		w := post(NewQuoteHandler(uc), `{"user_email":"jane@example.com"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("honeypot trip looks like success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteSubmission{}, usecase.ErrSubmissionBotSuspected)

		w := post(NewQuoteHandler(uc), `{"user_email":"bot@example.com","website":"http://spam"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] == "" || body["id"] == nil {
			t.Fatalf("decoy response must carry an id: %s", w.Body.String())
		}
	})

	t.Run("too fast looks like success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteSubmission{}, usecase.ErrSubmissionTooFast)

		w := post(NewQuoteHandler(uc), `{"user_email":"jane@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuoteByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(h *QuoteHandler, id string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuoteByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteSubmission{ID: "q-1", UserEmail: "jane@example.com"}, nil)

		w := get(NewQuoteHandler(uc), "q-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.QuoteSubmission{}, usecase.ErrQuoteNotFound)

		w := get(NewQuoteHandler(uc), "missing")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
