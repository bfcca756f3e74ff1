package booking

import (
	"hometown/catalog"
	"hometown/models"
)

// StepOneComplete requires every vehicle to have a service type and package
// selected, a variant whenever the chosen service type has variants, and a
// package id that actually resolves in the vehicle's scope.
func StepOneComplete(form models.BookingForm, cat *catalog.Catalog) bool {
	for _, v := range form.VehicleBookings {
		if v.ServiceType == "" || v.Package == "" {
			return false
		}
		if st := cat.ServiceType(v.ServiceType); st != nil && st.HasVariants() && v.Variant == "" {
			return false
		}
		if ResolvePackage(v, cat) == nil {
			return false
		}
	}
	return true
}

// StepTwoComplete requires every vehicle's package to be confirmed.
func StepTwoComplete(form models.BookingForm) bool {
	for _, v := range form.VehicleBookings {
		if !v.PackageConfirmed {
			return false
		}
	}
	return true
}

// StepThreeComplete requires the schedule and every contact field.
func StepThreeComplete(form models.BookingForm) bool {
	return form.Date != "" &&
		form.TimeSlot != "" &&
		form.FirstName != "" &&
		form.LastName != "" &&
		form.Email != "" &&
		form.Phone != "" &&
		form.Address != "" &&
		form.City != "" &&
		form.State != "" &&
		form.Zip != ""
}

// guardAdvance returns the error blocking a forward transition out of the
// given step, or nil when the transition is allowed.
func guardAdvance(s *models.FormSession, cat *catalog.Catalog) error {
	switch s.Step {
	case models.StepSelectServices:
		if !StepOneComplete(s.Form, cat) {
			return NewValidationError("Each vehicle needs a service type, a package, and a variant where applicable")
		}
	case models.StepConfirmPackages:
		if !StepTwoComplete(s.Form) {
			return NewValidationError("Every vehicle's package must be confirmed before continuing")
		}
	default:
		return NewStepError("No further step to advance to")
	}
	return nil
}
