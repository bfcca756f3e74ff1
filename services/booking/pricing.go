package booking

import (
	"strconv"
	"strings"
	"unicode"

	"hometown/catalog"
	"hometown/models"
)

// ResolvePackage finds the package a vehicle's selections point at.
// Precedence: a selected main service wins, then the selected variant when
// the service type has variants, then the service type's own packages.
// Any unresolved link returns nil, which prices as zero, never an error.
func ResolvePackage(v models.VehicleBooking, cat *catalog.Catalog) *models.Package {
	if ms := cat.MainService(v.MainService); ms != nil {
		return findPackage(ms.Packages, v.Package)
	}
	st := cat.ServiceType(v.ServiceType)
	if st == nil {
		return nil
	}
	if st.HasVariants() && v.Variant != "" {
		vr := st.FindVariant(v.Variant)
		if vr == nil {
			return nil
		}
		return findPackage(vr.Packages, v.Package)
	}
	return findPackage(st.Packages, v.Package)
}

// ResolveAddOns returns the add-on list in scope for a vehicle, mirroring
// the package precedence: the selected variant's add-ons when the service
// type has variants, otherwise the service type's own.
func ResolveAddOns(v models.VehicleBooking, cat *catalog.Catalog) []models.AddOn {
	st := cat.ServiceType(v.ServiceType)
	if st == nil {
		return nil
	}
	if st.HasVariants() && v.Variant != "" {
		if vr := st.FindVariant(v.Variant); vr != nil {
			return vr.AdditionalServices
		}
		return nil
	}
	return st.AdditionalServices
}

// PackagePrice returns a package's price for a vehicle. perFoot packages
// multiply the unit price by the vehicle's length; an empty or unparsable
// length leaves the unit price unmultiplied.
func PackagePrice(pkg *models.Package, v models.VehicleBooking) float64 {
	price := float64(pkg.Price)
	if pkg.PricingType == models.PricingPerFoot {
		if feet, ok := parseLength(v.VehicleLength); ok {
			price *= feet
		}
	}
	return price
}

// VehicleTotal is the vehicle's package price plus its resolved add-ons.
// Add-on ids that no longer resolve against the current scope contribute
// nothing.
func VehicleTotal(v models.VehicleBooking, cat *catalog.Catalog) float64 {
	total := 0.0
	if pkg := ResolvePackage(v, cat); pkg != nil {
		total += PackagePrice(pkg, v)
	}
	if len(v.AdditionalServices) == 0 {
		return total
	}
	scope := ResolveAddOns(v, cat)
	for _, id := range v.AdditionalServices {
		for i := range scope {
			if scope[i].ID == id {
				total += float64(scope[i].Price)
				break
			}
		}
	}
	return total
}

// TotalPrice sums VehicleTotal across the form's vehicles.
func TotalPrice(form models.BookingForm, cat *catalog.Catalog) float64 {
	total := 0.0
	for _, v := range form.VehicleBookings {
		total += VehicleTotal(v, cat)
	}
	return total
}

// Discount is the promo percentage of the pre-discount total, zero when no
// promo is applied.
func Discount(total float64, promo *models.PromoCode) float64 {
	if promo == nil {
		return 0
	}
	return total * promo.Discount / 100
}

// FinalPrice is total minus discount. Deliberately not floored at zero:
// catalog discounts are capped at 100%, so a negative result is unreachable
// with current data.
func FinalPrice(total, discount float64) float64 {
	return total - discount
}

// Summarize computes the full pricing view for a session.
func Summarize(s *models.FormSession, cat *catalog.Catalog) models.PricingSummary {
	summary := models.PricingSummary{
		VehicleTotals: make(map[string]float64, len(s.Form.VehicleBookings)),
	}
	for _, v := range s.Form.VehicleBookings {
		vt := VehicleTotal(v, cat)
		summary.VehicleTotals[v.ID] = vt
		summary.Total += vt
	}
	summary.Discount = Discount(summary.Total, s.AppliedPromo)
	summary.Final = FinalPrice(summary.Total, summary.Discount)
	return summary
}

func findPackage(pkgs []models.Package, id string) *models.Package {
	if id == "" {
		return nil
	}
	for i := range pkgs {
		if pkgs[i].ID == id {
			return &pkgs[i]
		}
	}
	return nil
}

// parseLength parses a vehicle length the way the frontend historically did:
// the longest leading numeric prefix counts, so "24ft" reads as 24. Anything
// without a usable prefix reports false.
func parseLength(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range s {
		if r == '-' || r == '+' {
			if i != 0 {
				break
			}
		} else if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if unicode.IsDigit(r) {
			seenDigit = true
		} else {
			break
		}
		end = i + 1
	}
	if !seenDigit {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
