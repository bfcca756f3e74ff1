package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hometown/models"
)

func TestLoad_BuiltInDefault(t *testing.T) {
	cat, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.ServiceTypes) == 0 || len(cat.MainServices) == 0 {
		t.Fatal("expected the built-in catalog to be populated")
	}
	if len(cat.TimeSlots) == 0 {
		t.Error("expected time slots")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"serviceTypes": [
			{"id": "wash", "name": "Wash", "packages": [{"id": "basic", "name": "Basic", "price": "49.50"}]}
		],
		"timeSlots": ["9:00 AM - 11:00 AM"],
		"promoCodes": [{"code": "TEN", "discount": 10}]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := cat.ServiceType("wash")
	if st == nil {
		t.Fatal("expected service type wash")
	}
	if got := st.Packages[0].Price; got != 49.5 {
		t.Errorf("expected string price parsed to 49.5, got %v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}

func TestValidate_RejectsMixedShape(t *testing.T) {
	cat := &Catalog{
		ServiceTypes: []models.ServiceType{{
			ID:       "mixed",
			Name:     "Mixed",
			Variants: []models.Variant{{ID: "v1", Name: "V1"}},
			Packages: []models.Package{{ID: "p1", Name: "P1", Price: 10}},
		}},
	}
	err := cat.Validate()
	if err == nil || !strings.Contains(err.Error(), "both variants and direct packages") {
		t.Errorf("expected a mixed-shape error, got %v", err)
	}
}

func TestValidate_RejectsDuplicateIDs(t *testing.T) {
	cat := &Catalog{
		ServiceTypes: []models.ServiceType{
			{ID: "dup", Name: "A", Packages: []models.Package{{ID: "p", Name: "P"}}},
			{ID: "dup", Name: "B", Packages: []models.Package{{ID: "q", Name: "Q"}}},
		},
	}
	if err := cat.Validate(); err == nil {
		t.Error("expected a duplicate-id error")
	}
}

func TestValidate_RejectsOutOfRangePromo(t *testing.T) {
	cat := &Catalog{PromoCodes: []models.PromoCode{{Code: "BIG", Discount: 150}}}
	if err := cat.Validate(); err == nil {
		t.Error("expected an out-of-range promo error")
	}
}

func TestPromo_CaseInsensitive(t *testing.T) {
	cat := &Catalog{PromoCodes: []models.PromoCode{{Code: "SAVE10", Discount: 10}}}
	if p := cat.Promo("save10"); p == nil || p.Discount != 10 {
		t.Errorf("expected case-insensitive match, got %+v", p)
	}
	if p := cat.Promo("SAVE11"); p != nil {
		t.Errorf("expected no match, got %+v", p)
	}
}

func TestStateForCity(t *testing.T) {
	cases := []struct {
		city  string
		state string
		ok    bool
	}{
		{"Tampa", "FL", true},
		{"  chicago  ", "IL", true},
		{"NEW YORK", "NY", true},
		{"Springfield", "", false},
	}
	for _, tc := range cases {
		state, ok := StateForCity(tc.city)
		if state != tc.state || ok != tc.ok {
			t.Errorf("StateForCity(%q) = %q, %v; want %q, %v", tc.city, state, ok, tc.state, tc.ok)
		}
	}
}

func TestHasTimeSlot(t *testing.T) {
	cat := Default()
	if !cat.HasTimeSlot("8:00 AM - 10:00 AM") {
		t.Error("expected the first slot to exist")
	}
	if cat.HasTimeSlot("midnight") {
		t.Error("did not expect a made-up slot to exist")
	}
}
