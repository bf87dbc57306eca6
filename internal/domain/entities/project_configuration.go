package entities

// ServiceType selects what the customer is ordering.
//
// SCANIT: we laser-scan the space and deliver the point cloud.
// BIMIT: the customer already has scan data and needs BIM modeling.

type ServiceType string

const (
	ServiceScanIt ServiceType = "SCANIT"
	ServiceBimIt  ServiceType = "BIMIT"
)

func (s ServiceType) Valid() bool {
	return s == ServiceScanIt || s == ServiceBimIt
}

type SpaceType string

const (
	SpaceDataCenter  SpaceType = "Data Center"
	SpaceOffice      SpaceType = "Office"
	SpaceResidential SpaceType = "Residential"
	SpaceIndustrial  SpaceType = "Industrial"
	SpaceRetail      SpaceType = "Retail"
)

func (s SpaceType) Valid() bool {
	switch s {
	case SpaceDataCenter, SpaceOffice, SpaceResidential, SpaceIndustrial, SpaceRetail:
		return true
	}
	return false
}

// Scope is an interior modeling scope the customer can toggle on or off.

type Scope string

const (
	ScopeArchitecture Scope = "Architecture"
	ScopeFurniture    Scope = "Furniture"
	ScopeMEPF         Scope = "MEPF"
)

func (s Scope) Valid() bool {
	return s == ScopeArchitecture || s == ScopeFurniture || s == ScopeMEPF
}

type RevitVersion string

const (
	Revit2023 RevitVersion = "Revit 2023"
	Revit2022 RevitVersion = "Revit 2022"
	Revit2021 RevitVersion = "Revit 2021"
	Revit2020 RevitVersion = "Revit 2020"
)

func (v RevitVersion) Valid() bool {
	switch v {
	case Revit2023, Revit2022, Revit2021, Revit2020:
		return true
	}
	return false
}

type MeasurementUnit string

const (
	UnitImperial MeasurementUnit = "Imperial"
	UnitMetric   MeasurementUnit = "Metric"
)

func (u MeasurementUnit) Valid() bool {
	return u == UnitImperial || u == UnitMetric
}

// Coordinate is a WGS84 latitude/longitude pair.

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProjectConfiguration is the mutable form state owned by a wizard session.
//
// Scopes behaves as a set: ToggleScope keeps it duplicate-free, and pricing
// only depends on its cardinality. An empty set is permitted transiently
// (the scope surcharge is simply zero).

type ProjectConfiguration struct {
	Service           ServiceType     `json:"service"`
	ProjectName       string          `json:"project_name"`
	Address           string          `json:"address"`
	MapLocation       *Coordinate     `json:"map_location,omitempty"`
	TotalAreaSqFt     int             `json:"total_area"`
	Floors            string          `json:"floors"`
	SpaceType         SpaceType       `json:"space_type"`
	Scopes            []Scope         `json:"scopes"`
	ComplexMEPF       bool            `json:"complex_mepf"`
	ExteriorModelling bool            `json:"exterior_modelling"`
	ProjectControls   bool            `json:"project_controls"`
	COIRequired       bool            `json:"coi_required"`
	RevitVersion      RevitVersion    `json:"revit_version"`
	PreferredUnit     MeasurementUnit `json:"preferred_unit"`
	AttachedFileNames []string        `json:"attached_file_names,omitempty"`
	ScanDate1         string          `json:"scan_date_1"`
	ScanDate2         string          `json:"scan_date_2,omitempty"`
}

// DefaultProjectConfiguration returns the state a fresh wizard session
// starts from, and the state Exit resets back to.
func DefaultProjectConfiguration() ProjectConfiguration {
	return ProjectConfiguration{
		Service:       "",
		ProjectName:   "New Project",
		Address:       "",
		MapLocation:   nil,
		TotalAreaSqFt: 1000,
		Floors:        "Floor 1",
		SpaceType:     SpaceDataCenter,
		Scopes:        []Scope{ScopeArchitecture},
		RevitVersion:  Revit2023,
		PreferredUnit: UnitImperial,
		ScanDate1:     "",
		ScanDate2:     "",
	}
}

// HasScope reports whether s is currently selected.
func (c ProjectConfiguration) HasScope(s Scope) bool {
	for _, existing := range c.Scopes {
		if existing == s {
			return true
		}
	}
	return false
}

// ToggleScope adds s when absent and removes it when present.
func (c *ProjectConfiguration) ToggleScope(s Scope) {
	for i, existing := range c.Scopes {
		if existing == s {
			c.Scopes = append(c.Scopes[:i], c.Scopes[i+1:]...)
			return
		}
	}
	c.Scopes = append(c.Scopes, s)
}
