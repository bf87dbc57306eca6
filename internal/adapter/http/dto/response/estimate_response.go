package response

import (
	"draftingco/internal/domain/entities"
)

type EstimateResponse struct {
	Price         float64 `json:"price"`
	DeliveryRange string  `json:"delivery_range"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		Price:         e.Price,
		DeliveryRange: e.DeliveryRange,
	}
}
