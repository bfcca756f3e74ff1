package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Pricing types a package can carry. Fixed is assumed when the field is empty.
const (
	PricingFixed   = "fixed"
	PricingPerFoot = "perFoot"
)

// Price is a monetary amount that upstream catalog data may encode as either
// a JSON number or a numeric string. Unparsable values coerce to zero instead
// of failing the load; this is the single place that leniency lives.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*p = 0
			return nil
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*p = 0
		return nil
	}
	*p = Price(f)
	return nil
}

// Package is a bookable service tier. PricingType "perFoot" multiplies the
// unit price by the vehicle's length at quote time.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       Price    `json:"price"`
	PricingType string   `json:"pricingType,omitempty"`
	Description string   `json:"description,omitempty"`
	Includes    []string `json:"includes,omitempty"`
}

// AddOn is an optional extra scoped to the service type or variant that
// declares it.
type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Variant is a vehicle-class refinement of a service type (e.g. sedan vs
// SUV), carrying its own packages and add-ons.
type Variant struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Packages           []Package `json:"packages"`
	AdditionalServices []AddOn   `json:"additionalServices,omitempty"`
}

// ServiceType either refines into variants or carries packages directly;
// never both. Catalog validation rejects mixed shapes at load time.
type ServiceType struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Variants           []Variant `json:"variants,omitempty"`
	Packages           []Package `json:"packages,omitempty"`
	AdditionalServices []AddOn   `json:"additionalServices,omitempty"`
}

// HasVariants reports which of the two service-type shapes this is.
func (s *ServiceType) HasVariants() bool {
	return len(s.Variants) > 0
}

// FindVariant returns the variant with the given id, or nil.
func (s *ServiceType) FindVariant(id string) *Variant {
	for i := range s.Variants {
		if s.Variants[i].ID == id {
			return &s.Variants[i]
		}
	}
	return nil
}

// MainService is the premium override track. When a vehicle selects one, its
// packages take precedence over anything the service type offers.
type MainService struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Packages []Package `json:"packages"`
}

// PromoCode applies a percentage discount (0-100) to the pre-discount total.
type PromoCode struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}
