package interfaces

import (
	"context"
	"draftingco/internal/domain/entities"
)

// ICoordinateProvider is one IP-to-location service in the fallback chain.
//
// Providers are capability-equivalent and tried in order; any error
// (network, malformed response, missing coordinates, timeout) just moves
// the chain to the next provider. The specific roster is a deployment
// concern, not a design contract.

type ICoordinateProvider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (entities.Coordinate, error)
}
