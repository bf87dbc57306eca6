package handlers

import (
	"net/http"

	request "draftingco/internal/adapter/http/dto/request"
	response "draftingco/internal/adapter/http/dto/response"
	"draftingco/internal/usecase"
	"draftingco/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler prices a project configuration without creating any
// state. The wizard pulls from here on every configuration change to keep
// the price ticker live.

type EstimateHandler struct{}

func NewEstimateHandler() *EstimateHandler {
	return &EstimateHandler{}
}

// CalculateEstimate prices the posted configuration.
func (h *EstimateHandler) CalculateEstimate(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	cfg, err := payload.ToConfiguration()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(usecase.ComputeEstimate(cfg)))
}
