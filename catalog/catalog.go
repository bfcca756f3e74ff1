package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"hometown/models"
)

// Catalog is the static reference data the wizard runs against: service
// types, the premium main-service track, time slots, and promo codes. It is
// loaded once at startup and read-only afterwards.
type Catalog struct {
	ServiceTypes []models.ServiceType `json:"serviceTypes"`
	MainServices []models.MainService `json:"mainServices"`
	TimeSlots    []string             `json:"timeSlots"`
	PromoCodes   []models.PromoCode   `json:"promoCodes"`
}

// Load returns the built-in catalog, or the contents of the JSON file at
// path when one is configured. Either way the result is validated.
func Load(path string) (*Catalog, error) {
	if path == "" {
		cat := Default()
		if err := cat.Validate(); err != nil {
			return nil, fmt.Errorf("built-in catalog invalid: %w", err)
		}
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog file %s invalid: %w", path, err)
	}
	return &cat, nil
}

// Validate enforces the structural rules the pricing engine relies on:
// a service type refines into variants or carries packages directly, never
// both, and promo discounts are percentages.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for i := range c.ServiceTypes {
		st := &c.ServiceTypes[i]
		if st.ID == "" {
			return fmt.Errorf("service type at index %d has no id", i)
		}
		if seen[st.ID] {
			return fmt.Errorf("duplicate service type id %q", st.ID)
		}
		seen[st.ID] = true
		if st.HasVariants() && len(st.Packages) > 0 {
			return fmt.Errorf("service type %q has both variants and direct packages", st.ID)
		}
		if st.HasVariants() && len(st.AdditionalServices) > 0 {
			return fmt.Errorf("service type %q has both variants and direct add-ons", st.ID)
		}
	}
	for _, ms := range c.MainServices {
		if ms.ID == "" {
			return fmt.Errorf("main service %q has no id", ms.Name)
		}
	}
	for _, p := range c.PromoCodes {
		if p.Code == "" {
			return fmt.Errorf("promo code with empty code")
		}
		if p.Discount < 0 || p.Discount > 100 {
			return fmt.Errorf("promo %q discount %.2f out of range", p.Code, p.Discount)
		}
	}
	return nil
}

// ServiceType returns the service type with the given id, or nil.
func (c *Catalog) ServiceType(id string) *models.ServiceType {
	for i := range c.ServiceTypes {
		if c.ServiceTypes[i].ID == id {
			return &c.ServiceTypes[i]
		}
	}
	return nil
}

// MainService returns the main service with the given id, or nil.
func (c *Catalog) MainService(id string) *models.MainService {
	for i := range c.MainServices {
		if c.MainServices[i].ID == id {
			return &c.MainServices[i]
		}
	}
	return nil
}

// Promo matches an already whitespace-stripped code case-insensitively.
func (c *Catalog) Promo(code string) *models.PromoCode {
	for i := range c.PromoCodes {
		if strings.EqualFold(c.PromoCodes[i].Code, code) {
			return &c.PromoCodes[i]
		}
	}
	return nil
}

// HasTimeSlot reports whether slot is one of the offered time slots.
func (c *Catalog) HasTimeSlot(slot string) bool {
	for _, s := range c.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
