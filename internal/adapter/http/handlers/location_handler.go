package handlers

import (
	"net/http"
	"strconv"

	response "draftingco/internal/adapter/http/dto/response"
	"draftingco/internal/usecase"
	"draftingco/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCoordinates = pkg.NewDomainErrorSimple("INVALID_COORDINATES", "Invalid lat/lon query parameters", http.StatusBadRequest)
	errNoLocations        = pkg.NewDomainErrorSimple("NO_LOCATIONS", "No service locations available", http.StatusNotFound)
)

// LocationHandler serves the branch directory, nearest-branch lookup, and
// visitor geolocation.

type LocationHandler struct {
	usecase usecase.ILocationUseCase
}

func NewLocationHandler(uc usecase.ILocationUseCase) *LocationHandler {
	return &LocationHandler{usecase: uc}
}

// ListLocations returns every branch office in dataset order.
func (h *LocationHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceLocations(h.usecase.Locations()))
}

// NearestLocation returns the branch closest to the caller. With explicit
// lat/lon query parameters the lookup is purely geometric; without them
// the caller's IP is geolocated, falling back to headquarters when no
// provider can place it.
func (h *LocationHandler) NearestLocation(c *gin.Context) {
	latStr, hasLat := c.GetQuery("lat")
	lonStr, hasLon := c.GetQuery("lon")

	if hasLat || hasLon {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			c.JSON(errInvalidCoordinates.HTTPStatus, errInvalidCoordinates.ToHTTPError())
			return
		}

		loc, found := h.usecase.NearestLocation(lat, lon)
		if !found {
			c.JSON(errNoLocations.HTTPStatus, errNoLocations.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.NearestLocationResponse{
			Location: response.FromServiceLocation(loc),
			Resolved: true,
		})
		return
	}

	loc, resolved := h.usecase.NearestBranch(c.Request.Context(), c.ClientIP())
	if loc.City == "" {
		c.JSON(errNoLocations.HTTPStatus, errNoLocations.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NearestLocationResponse{
		Location: response.FromServiceLocation(loc),
		Resolved: resolved,
	})
}

// ResolveVisitor geolocates the caller's IP through the provider chain.
// Failure to resolve is a normal 200 with resolved=false.
func (h *LocationHandler) ResolveVisitor(c *gin.Context) {
	coord, ok := h.usecase.Resolve(c.Request.Context(), c.ClientIP())
	c.JSON(http.StatusOK, response.ResolvedCoordinateResponse{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Resolved:  ok,
	})
}
