package request

import (
	"errors"
	"testing"

	"draftingco/internal/domain/entities"
)

func strptr(s string) *string      { return &s }
func intptr(v int) *int            { return &v }
func boolptr(v bool) *bool         { return &v }
func strsptr(v []string) *[]string { return &v }

func TestConfigurationRequest_Defaults(t *testing.T) {
	cfg, err := ConfigurationRequest{}.ToConfiguration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TotalAreaSqFt != 1000 || cfg.ProjectName != "New Project" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.SpaceType != entities.SpaceDataCenter || cfg.RevitVersion != entities.Revit2023 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if len(cfg.Scopes) != 1 || cfg.Scopes[0] != entities.ScopeArchitecture {
		t.Fatalf("default scopes not applied: %+v", cfg.Scopes)
	}
}

func TestConfigurationRequest_Overrides(t *testing.T) {
	r := ConfigurationRequest{
		Service:           strptr("scanit"),
		TotalAreaSqFt:     intptr(25000),
		SpaceType:         strptr("Office"),
		Scopes:            strsptr([]string{"Architecture", "MEPF"}),
		ComplexMEPF:       boolptr(true),
		ExteriorModelling: boolptr(true),
		RevitVersion:      strptr("Revit 2021"),
		PreferredUnit:     strptr("Metric"),
		MapLocation:       &CoordinateRequest{Latitude: 40.7, Longitude: -74.0},
	}
	cfg, err := r.ToConfiguration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Service values are normalized to upper case.
	if cfg.Service != entities.ServiceScanIt {
		t.Fatalf("expected SCANIT, got %q", cfg.Service)
	}
	if cfg.TotalAreaSqFt != 25000 || cfg.SpaceType != entities.SpaceOffice {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Scopes) != 2 || !cfg.ComplexMEPF || !cfg.ExteriorModelling {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.MapLocation == nil || cfg.MapLocation.Latitude != 40.7 {
		t.Fatalf("map location not applied: %+v", cfg.MapLocation)
	}
}

func TestConfigurationRequest_Invalid(t *testing.T) {
	cases := []struct {
		name string
		req  ConfigurationRequest
		want error
	}{
		{"bad service", ConfigurationRequest{Service: strptr("PRINTIT")}, ErrInvalidServiceValue},
		{"bad space type", ConfigurationRequest{SpaceType: strptr("Warehouse")}, ErrInvalidSpaceTypeValue},
		{"bad scope", ConfigurationRequest{Scopes: strsptr([]string{"Landscaping"})}, ErrInvalidScopeValue},
		{"bad revit", ConfigurationRequest{RevitVersion: strptr("Revit 2019")}, ErrInvalidRevitValue},
		{"bad unit", ConfigurationRequest{PreferredUnit: strptr("Nautical")}, ErrInvalidUnitValue},
		{"negative area", ConfigurationRequest{TotalAreaSqFt: intptr(-1)}, ErrInvalidAreaValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.req.ToConfiguration(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteRequest_ResolveEmail(t *testing.T) {
	r := QuoteRequest{UserEmail: "  jane@example.com  "}
	email, err := r.ResolveEmail()
	if err != nil || email != "jane@example.com" {
		t.Fatalf("expected trimmed email, got %q err=%v", email, err)
	}

	for _, bad := range []string{"", "   ", "not-an-email"} {
		if _, err := (QuoteRequest{UserEmail: bad}).ResolveEmail(); !errors.Is(err, ErrInvalidEmailValue) {
			t.Fatalf("expected ErrInvalidEmailValue for %q, got %v", bad, err)
		}
	}
}

func TestWizardConfigurationRequest_ToPatch(t *testing.T) {
	r := WizardConfigurationRequest{
		Service:     strptr("BIMIT"),
		ToggleScope: strptr("Furniture"),
		ScanDate1:   strptr("2025-07-01"),
	}
	p, err := r.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Service == nil || *p.Service != entities.ServiceBimIt {
		t.Fatalf("service not mapped: %+v", p)
	}
	if p.ToggleScope == nil || *p.ToggleScope != entities.ScopeFurniture {
		t.Fatalf("toggle scope not mapped: %+v", p)
	}
	if p.ScanDate1 == nil || *p.ScanDate1 != "2025-07-01" {
		t.Fatalf("scan date not mapped: %+v", p)
	}
	if p.TotalAreaSqFt != nil || p.Scopes != nil {
		t.Fatalf("absent fields must stay nil: %+v", p)
	}

	if _, err := (WizardConfigurationRequest{ToggleScope: strptr("Landscaping")}).ToPatch(); !errors.Is(err, ErrInvalidScopeValue) {
		t.Fatalf("expected ErrInvalidScopeValue, got %v", err)
	}
}
