package models

import (
	"encoding/json"
	"testing"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Price
	}{
		{"number", `199.5`, 199.5},
		{"integer", `89`, 89},
		{"numeric string", `"149.99"`, 149.99},
		{"padded string", `"  25 "`, 25},
		{"garbage string", `"call us"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"boolean", `true`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Price
			if err := json.Unmarshal([]byte(tc.in), &p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p != tc.want {
				t.Errorf("got %v, want %v", p, tc.want)
			}
		})
	}
}

func TestPackage_PriceFieldCoercion(t *testing.T) {
	var pkg Package
	if err := json.Unmarshal([]byte(`{"id":"p1","name":"Basic","price":"120"}`), &pkg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Price != 120 {
		t.Errorf("got %v, want 120", pkg.Price)
	}
}
