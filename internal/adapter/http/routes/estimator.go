package routes

import (
	"draftingco/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathQuotes    = "/quotes"
	PathWizard    = "/wizard"
	PathLocations = "/locations"
)

func addEstimatorRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	quoteHandler *handlers.QuoteHandler,
	wizardHandler *handlers.WizardHandler,
	locationHandler *handlers.LocationHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		// Stateless pricing used by the wizard's live ticker.
		estimates.POST("", estimateHandler.CalculateEstimate)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
	}

	wizard := rg.Group(PathWizard)
	{
		wizard.POST("", wizardHandler.CreateSession)
		wizard.GET("/:id", wizardHandler.GetSession)
		wizard.PATCH("/:id/configuration", wizardHandler.UpdateConfiguration)
		wizard.POST("/:id/advance", wizardHandler.Advance)
		wizard.POST("/:id/retreat", wizardHandler.Retreat)
		wizard.POST("/:id/exit", wizardHandler.ExitSession)
		wizard.POST("/:id/submit", wizardHandler.SubmitSession)
	}

	branches := rg.Group(PathLocations)
	{
		branches.GET("", locationHandler.ListLocations)
		branches.GET("/nearest", locationHandler.NearestLocation)
		branches.GET("/resolve", locationHandler.ResolveVisitor)
	}
}
