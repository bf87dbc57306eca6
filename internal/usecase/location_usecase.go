package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"draftingco/internal/domain/entities"
	"draftingco/internal/domain/geo"
	"draftingco/internal/usecase/interfaces"

	"github.com/mmcloughlin/geohash"
	"golang.org/x/sync/singleflight"
)

const (
	geoCacheKeyPrefix = "user_location_cache:"
	geoCacheTTL       = 24 * time.Hour
	providerTimeout   = 5 * time.Second

	nearestCacheKeyPrefix = "nearest_branch:"
	// Precision 4 buckets are ~39x20 km; coordinates inside one bucket
	// always resolve to the same branch at our branch density.
	nearestGeohashPrecision = 4
)

// cachedCoordinate is the geolocation cache entry. An entry older than the
// TTL is treated as absent even if the store still returns it.

type cachedCoordinate struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	ResolvedAtMillis int64   `json:"resolved_at_millis"`
}

// ILocationUseCase exposes visitor geolocation and branch lookup.

type ILocationUseCase interface {
	Resolve(ctx context.Context, clientIP string) (entities.Coordinate, bool)
	NearestLocation(lat, lon float64) (entities.ServiceLocation, bool)
	NearestBranch(ctx context.Context, clientIP string) (entities.ServiceLocation, bool)
	Locations() []entities.ServiceLocation
}

// LocationUseCase resolves a visitor's coordinate through an ordered chain
// of IP-geolocation providers and finds the nearest branch office.
//
// Resolution is strictly best-effort: every failure path degrades to
// "no coordinate", and callers fall back to the headquarters branch. The
// singleflight group collapses concurrent resolutions for the same IP into
// one provider-chain pass.

type LocationUseCase struct {
	providers []interfaces.ICoordinateProvider
	kv        interfaces.IKeyValueStore
	locations []entities.ServiceLocation
	now       func() time.Time
	group     singleflight.Group
}

var _ ILocationUseCase = (*LocationUseCase)(nil)

func NewLocationUseCase(providers []interfaces.ICoordinateProvider, kv interfaces.IKeyValueStore, locations []entities.ServiceLocation) *LocationUseCase {
	return &LocationUseCase{
		providers: providers,
		kv:        kv,
		locations: locations,
		now:       time.Now,
	}
}

// Resolve returns the visitor's coordinate, preferring a fresh cache entry
// over the provider chain. The second return is false when every provider
// failed; that is a normal outcome, not an error.
func (u *LocationUseCase) Resolve(ctx context.Context, clientIP string) (entities.Coordinate, bool) {
	if coord, ok := u.cachedLocation(ctx, clientIP); ok {
		return coord, true
	}

	v, err, _ := u.group.Do(clientIP, func() (interface{}, error) {
		return u.resolveThroughChain(ctx, clientIP)
	})
	if err != nil {
		return entities.Coordinate{}, false
	}
	return v.(entities.Coordinate), true
}

var errAllProvidersFailed = errors.New("all geolocation providers failed")

func (u *LocationUseCase) resolveThroughChain(ctx context.Context, clientIP string) (entities.Coordinate, error) {
	for _, p := range u.providers {
		attemptCtx, cancel := context.WithTimeout(ctx, providerTimeout)
		coord, err := p.Lookup(attemptCtx, clientIP)
		cancel()
		if err != nil {
			log.Printf("[geo][chain] provider failed name=%s err=%v", p.Name(), err)
			continue
		}

		log.Printf("[geo][chain] resolved name=%s lat=%.4f lon=%.4f", p.Name(), coord.Latitude, coord.Longitude)
		u.storeLocation(ctx, clientIP, coord)
		return coord, nil
	}
	log.Printf("[geo][chain] all providers failed ip=%s", clientIP)
	return entities.Coordinate{}, errAllProvidersFailed
}

func (u *LocationUseCase) cachedLocation(ctx context.Context, clientIP string) (entities.Coordinate, bool) {
	raw, err := u.kv.Get(ctx, geoCacheKeyPrefix+clientIP)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			log.Printf("[geo][cache] read failed err=%v", err)
		}
		return entities.Coordinate{}, false
	}

	var entry cachedCoordinate
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		log.Printf("[geo][cache] corrupt entry discarded err=%v", err)
		_ = u.kv.Delete(ctx, geoCacheKeyPrefix+clientIP)
		return entities.Coordinate{}, false
	}
	if u.now().Sub(time.UnixMilli(entry.ResolvedAtMillis)) >= geoCacheTTL {
		return entities.Coordinate{}, false
	}
	return entities.Coordinate{Latitude: entry.Latitude, Longitude: entry.Longitude}, true
}

func (u *LocationUseCase) storeLocation(ctx context.Context, clientIP string, coord entities.Coordinate) {
	raw, err := json.Marshal(cachedCoordinate{
		Latitude:         coord.Latitude,
		Longitude:        coord.Longitude,
		ResolvedAtMillis: u.now().UnixMilli(),
	})
	if err != nil {
		return
	}
	if err := u.kv.Set(ctx, geoCacheKeyPrefix+clientIP, string(raw), geoCacheTTL); err != nil {
		log.Printf("[geo][cache] write failed err=%v", err)
	}
}

// NearestLocation scans the branch dataset linearly and returns the branch
// with the smallest great-circle distance. Ties keep the first entry in
// dataset order; an empty dataset returns false.
func (u *LocationUseCase) NearestLocation(lat, lon float64) (entities.ServiceLocation, bool) {
	var nearest entities.ServiceLocation
	found := false
	minDistance := 0.0

	for _, loc := range u.locations {
		d := geo.DistanceKm(lat, lon, loc.Latitude, loc.Longitude)
		if !found || d < minDistance {
			nearest = loc
			minDistance = d
			found = true
		}
	}
	return nearest, found
}

// NearestBranch resolves the visitor and returns their closest branch. The
// second return reports whether resolution actually succeeded; when it did
// not, the headquarters branch is returned so callers always have contact
// details to render.
func (u *LocationUseCase) NearestBranch(ctx context.Context, clientIP string) (entities.ServiceLocation, bool) {
	coord, ok := u.Resolve(ctx, clientIP)
	if !ok {
		return u.defaultBranch(), false
	}

	// A geohash bucket is stable across nearby coordinates, so repeated
	// visitors from one area share a cached branch lookup.
	bucket := geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, nearestGeohashPrecision)
	if loc, ok := u.cachedBranch(ctx, bucket); ok {
		return loc, true
	}

	nearest, found := u.NearestLocation(coord.Latitude, coord.Longitude)
	if !found {
		return u.defaultBranch(), false
	}
	u.storeBranch(ctx, bucket, nearest)
	return nearest, true
}

// Locations returns the full branch dataset in its bundled order.
func (u *LocationUseCase) Locations() []entities.ServiceLocation {
	return u.locations
}

func (u *LocationUseCase) defaultBranch() entities.ServiceLocation {
	for _, loc := range u.locations {
		if loc.Headquarters {
			return loc
		}
	}
	if len(u.locations) > 0 {
		return u.locations[0]
	}
	return entities.ServiceLocation{}
}

func (u *LocationUseCase) cachedBranch(ctx context.Context, bucket string) (entities.ServiceLocation, bool) {
	raw, err := u.kv.Get(ctx, nearestCacheKeyPrefix+bucket)
	if err != nil {
		return entities.ServiceLocation{}, false
	}
	var loc entities.ServiceLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		_ = u.kv.Delete(ctx, nearestCacheKeyPrefix+bucket)
		return entities.ServiceLocation{}, false
	}
	return loc, true
}

func (u *LocationUseCase) storeBranch(ctx context.Context, bucket string, loc entities.ServiceLocation) {
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := u.kv.Set(ctx, nearestCacheKeyPrefix+bucket, string(raw), geoCacheTTL); err != nil {
		log.Printf("[geo][cache] branch write failed err=%v", err)
	}
}
