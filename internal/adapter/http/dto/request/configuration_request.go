package request

import (
	"errors"
	"strings"

	"draftingco/internal/domain/entities"
)

var (
	ErrInvalidServiceValue   = errors.New("invalid service value")
	ErrInvalidSpaceTypeValue = errors.New("invalid space type value")
	ErrInvalidScopeValue     = errors.New("invalid scope value")
	ErrInvalidRevitValue     = errors.New("invalid revit version value")
	ErrInvalidUnitValue      = errors.New("invalid measurement unit value")
	ErrInvalidAreaValue      = errors.New("invalid total area value")
)

// CoordinateRequest is a latitude/longitude pair in a request body.
type CoordinateRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// ConfigurationRequest is the project configuration payload accepted by the
// estimate and quote endpoints. Absent fields fall back to the same
// defaults a fresh wizard session starts from, so a partial payload still
// produces a meaningful estimate.
type ConfigurationRequest struct {
	Service           *string            `json:"service"`
	ProjectName       *string            `json:"project_name"`
	Address           *string            `json:"address"`
	MapLocation       *CoordinateRequest `json:"map_location"`
	TotalAreaSqFt     *int               `json:"total_area"`
	Floors            *string            `json:"floors"`
	SpaceType         *string            `json:"space_type"`
	Scopes            *[]string          `json:"scopes"`
	ComplexMEPF       *bool              `json:"complex_mepf"`
	ExteriorModelling *bool              `json:"exterior_modelling"`
	ProjectControls   *bool              `json:"project_controls"`
	COIRequired       *bool              `json:"coi_required"`
	RevitVersion      *string            `json:"revit_version"`
	PreferredUnit     *string            `json:"preferred_unit"`
	AttachedFileNames *[]string          `json:"attached_file_names"`
	ScanDate1         *string            `json:"scan_date_1"`
	ScanDate2         *string            `json:"scan_date_2"`
}

// ToConfiguration materializes the payload over the default configuration,
// validating every enum value it carries.
func (r ConfigurationRequest) ToConfiguration() (entities.ProjectConfiguration, error) {
	cfg := entities.DefaultProjectConfiguration()

	if r.Service != nil {
		svc, err := ParseServiceType(*r.Service)
		if err != nil {
			return entities.ProjectConfiguration{}, err
		}
		cfg.Service = svc
	}
	if r.ProjectName != nil {
		cfg.ProjectName = *r.ProjectName
	}
	if r.Address != nil {
		cfg.Address = *r.Address
	}
	if r.MapLocation != nil {
		cfg.MapLocation = &entities.Coordinate{
			Latitude:  r.MapLocation.Latitude,
			Longitude: r.MapLocation.Longitude,
		}
	}
	if r.TotalAreaSqFt != nil {
		if *r.TotalAreaSqFt < 0 {
			return entities.ProjectConfiguration{}, ErrInvalidAreaValue
		}
		cfg.TotalAreaSqFt = *r.TotalAreaSqFt
	}
	if r.Floors != nil {
		cfg.Floors = *r.Floors
	}
	if r.SpaceType != nil {
		st, err := ParseSpaceType(*r.SpaceType)
		if err != nil {
			return entities.ProjectConfiguration{}, err
		}
		cfg.SpaceType = st
	}
	if r.Scopes != nil {
		scopes, err := ParseScopes(*r.Scopes)
		if err != nil {
			return entities.ProjectConfiguration{}, err
		}
		cfg.Scopes = scopes
	}
	if r.ComplexMEPF != nil {
		cfg.ComplexMEPF = *r.ComplexMEPF
	}
	if r.ExteriorModelling != nil {
		cfg.ExteriorModelling = *r.ExteriorModelling
	}
	if r.ProjectControls != nil {
		cfg.ProjectControls = *r.ProjectControls
	}
	if r.COIRequired != nil {
		cfg.COIRequired = *r.COIRequired
	}
	if r.RevitVersion != nil {
		rv, err := ParseRevitVersion(*r.RevitVersion)
		if err != nil {
			return entities.ProjectConfiguration{}, err
		}
		cfg.RevitVersion = rv
	}
	if r.PreferredUnit != nil {
		unit, err := ParseMeasurementUnit(*r.PreferredUnit)
		if err != nil {
			return entities.ProjectConfiguration{}, err
		}
		cfg.PreferredUnit = unit
	}
	if r.AttachedFileNames != nil {
		cfg.AttachedFileNames = append([]string(nil), (*r.AttachedFileNames)...)
	}
	if r.ScanDate1 != nil {
		cfg.ScanDate1 = *r.ScanDate1
	}
	if r.ScanDate2 != nil {
		cfg.ScanDate2 = *r.ScanDate2
	}
	return cfg, nil
}

func ParseServiceType(v string) (entities.ServiceType, error) {
	svc := entities.ServiceType(strings.ToUpper(strings.TrimSpace(v)))
	if !svc.Valid() {
		return "", ErrInvalidServiceValue
	}
	return svc, nil
}

func ParseSpaceType(v string) (entities.SpaceType, error) {
	st := entities.SpaceType(strings.TrimSpace(v))
	if !st.Valid() {
		return "", ErrInvalidSpaceTypeValue
	}
	return st, nil
}

func ParseScope(v string) (entities.Scope, error) {
	s := entities.Scope(strings.TrimSpace(v))
	if !s.Valid() {
		return "", ErrInvalidScopeValue
	}
	return s, nil
}

func ParseScopes(values []string) ([]entities.Scope, error) {
	out := make([]entities.Scope, 0, len(values))
	for _, v := range values {
		s, err := ParseScope(v)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func ParseRevitVersion(v string) (entities.RevitVersion, error) {
	rv := entities.RevitVersion(strings.TrimSpace(v))
	if !rv.Valid() {
		return "", ErrInvalidRevitValue
	}
	return rv, nil
}

func ParseMeasurementUnit(v string) (entities.MeasurementUnit, error) {
	u := entities.MeasurementUnit(strings.TrimSpace(v))
	if !u.Valid() {
		return "", ErrInvalidUnitValue
	}
	return u, nil
}
