package request

import (
	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase"
)

// WizardConfigurationRequest is the PATCH payload for a wizard session's
// configuration. Every field is optional; only the fields present in the
// JSON are applied. ToggleScope flips a single scope instead of replacing
// the whole set.
type WizardConfigurationRequest struct {
	Service           *string            `json:"service"`
	ProjectName       *string            `json:"project_name"`
	Address           *string            `json:"address"`
	MapLocation       *CoordinateRequest `json:"map_location"`
	TotalAreaSqFt     *int               `json:"total_area"`
	Floors            *string            `json:"floors"`
	SpaceType         *string            `json:"space_type"`
	Scopes            *[]string          `json:"scopes"`
	ToggleScope       *string            `json:"toggle_scope"`
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

// ToPatch translates the payload into the domain patch, rejecting enum
// values the domain does not know.
func (r WizardConfigurationRequest) ToPatch() (usecase.ConfigurationPatch, error) {
	var p usecase.ConfigurationPatch

	if r.Service != nil {
		svc, err := ParseServiceType(*r.Service)
		if err != nil {
			return usecase.ConfigurationPatch{}, err
		}
		p.Service = &svc
	}
	p.ProjectName = r.ProjectName
	p.Address = r.Address
	if r.MapLocation != nil {
		p.MapLocation = &entities.Coordinate{
			Latitude:  r.MapLocation.Latitude,
			Longitude: r.MapLocation.Longitude,
		}
	}
	p.TotalAreaSqFt = r.TotalAreaSqFt
	p.Floors = r.Floors
	if r.SpaceType != nil {
		st, err := ParseSpaceType(*r.SpaceType)
		if err != nil {
			return usecase.ConfigurationPatch{}, err
		}
		p.SpaceType = &st
	}
	if r.Scopes != nil {
		scopes, err := ParseScopes(*r.Scopes)
		if err != nil {
			return usecase.ConfigurationPatch{}, err
		}
		p.Scopes = &scopes
	}
	if r.ToggleScope != nil {
		s, err := ParseScope(*r.ToggleScope)
		if err != nil {
			return usecase.ConfigurationPatch{}, err
		}
		p.ToggleScope = &s
	}
	p.ComplexMEPF = r.ComplexMEPF
	p.ExteriorModelling = r.ExteriorModelling
	p.ProjectControls = r.ProjectControls
	p.COIRequired = r.COIRequired
	if r.RevitVersion != nil {
		rv, err := ParseRevitVersion(*r.RevitVersion)
		if err != nil {
			return usecase.ConfigurationPatch{}, err
		}
		p.RevitVersion = &rv
	}
	if r.PreferredUnit != nil {
		u, err := ParseMeasurementUnit(*r.PreferredUnit)
		if err != nil {
			return usecase.ConfigurationPatch{}, err
		}
		p.PreferredUnit = &u
	}
	p.AttachedFileNames = r.AttachedFileNames
	p.ScanDate1 = r.ScanDate1
	p.ScanDate2 = r.ScanDate2
	return p, nil
}

// WizardSubmitRequest is the terminal submit from the summary step. The
// session already owns the configuration, so the payload only carries the
// contact email and the anti-abuse signals.
type WizardSubmitRequest struct {
	UserEmail           string `json:"user_email" binding:"required"`
	FormMountedAtMillis int64  `json:"form_mounted_at_millis"`
	Website             string `json:"website"`
	RepeatConfirmed     bool   `json:"repeat_confirmed"`
}
