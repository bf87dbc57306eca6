package usecase

import (
	"fmt"

	"draftingco/internal/domain/entities"
)

// Pricing model for the estimator. These figures are customer-visible and
// must not be changed without a business sign-off.
const (
	estimateBasePrice   = 4000.0
	areaRatePerSqFt     = 0.15
	chargePerScope      = 750.0
	complexMEPFCharge   = 1500.0
	exteriorModelCharge = 1000.0

	baseDeliveryDays   = 5
	sqFtPerDeliveryDay = 5000
	deliveryWindowDays = 3
)

// ComputeEstimate derives the price and delivery window from a project
// configuration. Pure and deterministic: no I/O, no clock, no state.
//
// An empty scope set simply contributes zero (it is permitted transiently
// while the user toggles scopes); negative areas are rejected at input
// validation and never reach this function.
func ComputeEstimate(cfg entities.ProjectConfiguration) entities.Estimate {
	areaCharge := float64(cfg.TotalAreaSqFt) * areaRatePerSqFt
	scopeCharge := float64(len(cfg.Scopes)) * chargePerScope

	price := estimateBasePrice + areaCharge + scopeCharge
	if cfg.ComplexMEPF {
		price += complexMEPFCharge
	}
	if cfg.ExteriorModelling {
		price += exteriorModelCharge
	}

	low := baseDeliveryDays + cfg.TotalAreaSqFt/sqFtPerDeliveryDay + len(cfg.Scopes)
	high := low + deliveryWindowDays

	return entities.Estimate{
		Price:         price,
		DeliveryRange: fmt.Sprintf("%d-%d Business Days", low, high),
	}
}
