package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase/interfaces"
)

var (
	ErrMissingAPIKey      = errors.New("missing geolocation api key")
	ErrProviderStatus     = errors.New("geolocation provider returned non-200")
	ErrCoordinatesMissing = errors.New("geolocation response without coordinates")
)

// flexFloat unmarshals a float that some providers send as a JSON number
// and others as a quoted string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type geoPayload struct {
	Latitude  *flexFloat `json:"latitude"`
	Longitude *flexFloat `json:"longitude"`
}

// httpProvider is a single IP-geolocation REST endpoint. The three public
// services we chain differ only in URL shape and key placement.

type httpProvider struct {
	name   string
	client *http.Client
	url    func(ip string) string
}

var _ interfaces.ICoordinateProvider = (*httpProvider)(nil)

func (p *httpProvider) Name() string {
	return p.name
}

func (p *httpProvider) Lookup(ctx context.Context, ip string) (entities.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url(ip), nil)
	if err != nil {
		return entities.Coordinate{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return entities.Coordinate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.Coordinate{}, fmt.Errorf("%w: %d", ErrProviderStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.Coordinate{}, err
	}

	var payload geoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return entities.Coordinate{}, err
	}
	// Some providers answer 200 with an error object; no coordinates means
	// the lookup failed.
	if payload.Latitude == nil || payload.Longitude == nil {
		return entities.Coordinate{}, ErrCoordinatesMissing
	}
	return entities.Coordinate{
		Latitude:  float64(*payload.Latitude),
		Longitude: float64(*payload.Longitude),
	}, nil
}

// NewIPStackProvider talks to api.ipstack.com. Requires an access key.
func NewIPStackProvider(client *http.Client, accessKey string) (interfaces.ICoordinateProvider, error) {
	if strings.TrimSpace(accessKey) == "" {
		return nil, ErrMissingAPIKey
	}
	return &httpProvider{
		name:   "ipstack",
		client: client,
		url: func(ip string) string {
			return fmt.Sprintf("http://api.ipstack.com/%s?access_key=%s&fields=latitude,longitude", ip, accessKey)
		},
	}, nil
}

// NewIPAPIProvider talks to ipapi.co. No key required.
func NewIPAPIProvider(client *http.Client) interfaces.ICoordinateProvider {
	return &httpProvider{
		name:   "ipapi",
		client: client,
		url: func(ip string) string {
			return fmt.Sprintf("https://ipapi.co/%s/json/", ip)
		},
	}
}

// NewIPGeolocationProvider talks to api.ipgeolocation.io. Requires an API
// key; this provider sends coordinates as quoted strings.
func NewIPGeolocationProvider(client *http.Client, apiKey string) (interfaces.ICoordinateProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	return &httpProvider{
		name:   "ipgeolocation",
		client: client,
		url: func(ip string) string {
			return fmt.Sprintf("https://api.ipgeolocation.io/ipgeo?apiKey=%s&ip=%s&fields=latitude,longitude", apiKey, ip)
		},
	}, nil
}
