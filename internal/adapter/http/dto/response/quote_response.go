package response

import (
	"time"

	"draftingco/internal/domain/entities"
)

type QuoteResponse struct {
	ID            string                        `json:"id"`
	UserEmail     string                        `json:"user_email"`
	Configuration entities.ProjectConfiguration `json:"configuration"`
	EstimatePrice float64                       `json:"estimate_price"`
	DeliveryRange string                        `json:"delivery_range"`
	CreatedAt     time.Time                     `json:"created_at"`
}

func FromQuoteSubmission(q entities.QuoteSubmission) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		UserEmail:     q.UserEmail,
		Configuration: q.Configuration,
		EstimatePrice: q.EstimatePrice,
		DeliveryRange: q.DeliveryRange,
		CreatedAt:     q.CreatedAt,
	}
}
