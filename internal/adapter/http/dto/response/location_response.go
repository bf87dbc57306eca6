package response

import (
	"draftingco/internal/domain/entities"
)

type LocationResponse struct {
	City           string  `json:"city"`
	State          string  `json:"state"`
	Region         string  `json:"region"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DisplayPhone   string  `json:"display_phone,omitempty"`
	DisplayAddress string  `json:"display_address,omitempty"`
	Headquarters   bool    `json:"headquarters,omitempty"`
}

func FromServiceLocation(l entities.ServiceLocation) LocationResponse {
	return LocationResponse{
		City:           l.City,
		State:          l.State,
		Region:         l.Category,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		DisplayPhone:   l.DisplayPhone,
		DisplayAddress: l.DisplayAddress,
		Headquarters:   l.Headquarters,
	}
}

func FromServiceLocations(list []entities.ServiceLocation) []LocationResponse {
	out := make([]LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromServiceLocation(l))
	}
	return out
}

// NearestLocationResponse reports the closest branch plus whether it came
// from a real geolocation or from the headquarters fallback.
type NearestLocationResponse struct {
	Location LocationResponse `json:"location"`
	Resolved bool             `json:"resolved"`
}

// ResolvedCoordinateResponse is the visitor geolocation result. When
// Resolved is false the coordinate fields are zero and should be ignored.
type ResolvedCoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Resolved  bool    `json:"resolved"`
}
