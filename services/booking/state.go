package booking

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"hometown/catalog"
	"hometown/models"
)

// ActionType enumerates every mutation the wizard can apply to a session.
type ActionType string

const (
	ActionSetField          ActionType = "setField"
	ActionSetVehicleField   ActionType = "setVehicleField"
	ActionSelectServiceType ActionType = "selectServiceType"
	ActionSelectVariant     ActionType = "selectVariant"
	ActionSelectMainService ActionType = "selectMainService"
	ActionSelectPackage     ActionType = "selectPackage"
	ActionSetAddOns         ActionType = "setAddOns"
	ActionConfirmPackage    ActionType = "confirmPackage"
	ActionAddVehicle        ActionType = "addVehicle"
	ActionRemoveVehicle     ActionType = "removeVehicle"
	ActionApplyPromo        ActionType = "applyPromo"
	ActionRemovePromo       ActionType = "removePromo"
	ActionNextStep          ActionType = "nextStep"
	ActionPrevStep          ActionType = "prevStep"
)

// Action is one wizard mutation. Which fields are meaningful depends on the
// type: vehicle-scoped actions carry VehicleID, field mutations carry
// Field/Value, add-on updates carry AddOns.
type Action struct {
	Type      ActionType `json:"type"`
	VehicleID string     `json:"vehicleId,omitempty"`
	Field     string     `json:"field,omitempty"`
	Value     string     `json:"value,omitempty"`
	AddOns    []string   `json:"addOns,omitempty"`
}

// NewFormSession returns the wizard's initial state: step one with a single
// empty vehicle.
func NewFormSession(sessionID string) *models.FormSession {
	return &models.FormSession{
		SessionID: sessionID,
		Form:      newBookingForm(),
		Step:      models.StepSelectServices,
		CreatedAt: time.Now(),
	}
}

func newBookingForm() models.BookingForm {
	return models.BookingForm{
		VehicleBookings: []models.VehicleBooking{newVehicleBooking()},
		Phone:           "+1 ",
	}
}

func newVehicleBooking() models.VehicleBooking {
	return models.VehicleBooking{
		ID:                 "vehicle-" + uuid.NewString(),
		AdditionalServices: []string{},
	}
}

// resetSession restores a session to the initial wizard state, keeping only
// its identity. Used when the confirmation dialog is dismissed.
func resetSession(s *models.FormSession) {
	s.Form = newBookingForm()
	s.Step = models.StepSelectServices
	s.PromoCode = ""
	s.AppliedPromo = nil
	s.PromoError = ""
	s.ManualState = false
	s.Submitting = false
	s.Confirmed = false
	s.BookingID = ""
}

// Apply is the wizard's state-transition function: it returns the state
// after the action, or the unchanged input state plus an error when the
// action is rejected. Cascading resets fire inside the same transition so a
// stale downstream selection is never observable. Promo misses are not
// errors; they land in the session's PromoError field like any other state.
func Apply(s models.FormSession, cat *catalog.Catalog, a Action) (models.FormSession, error) {
	if s.Submitting {
		return s, NewStepError("Submission in progress")
	}
	if s.Confirmed {
		return s, NewStepError("Booking already confirmed")
	}

	next := cloneSession(s)
	switch a.Type {
	case ActionSetField:
		if err := setFormField(&next, cat, a.Field, a.Value); err != nil {
			return s, err
		}
	case ActionSetVehicleField:
		v, err := vehicleByID(&next.Form, a.VehicleID)
		if err != nil {
			return s, err
		}
		if err := setVehicleField(v, a.Field, a.Value); err != nil {
			return s, err
		}
	case ActionSelectServiceType:
		v, err := vehicleByID(&next.Form, a.VehicleID)
		if err != nil {
			return s, err
		}
		if err := selectServiceType(v, cat, a.Value); err != nil {
			return s, err
		}
	case ActionSelectVariant:
		v, err := vehicleByID(&next.Form, a.VehicleID)
		if err != nil {
			return s, err
		}
		if err := selectVariant(v, cat, a.Value); err != nil {
			return s, err
		}
	case ActionSelectMainService:
		v, err := vehicleByID(&next.Form, a.VehicleID)
		if err != nil {
			return s, err
		}
		if a.Value != "" && cat.MainService(a.Value) == nil {
			return s, NewValidationError(fmt.Sprintf("Unknown main service %q", a.Value))
		}
		v.MainService = a.Value
		v.Package = ""
		v.AdditionalServices = []string{}
		v.PackageConfirmed = false
	case ActionSelectPackage:
		v, err := vehicleByID(&next.Form, a.VehicleID)
		if err != nil {
			return s, err
		}
		if a.Value != "" {
			candidate := *v
			candidate.Package = a.Value
			if ResolvePackage(candidate, cat) == nil {
				return s, NewValidationError(fmt.Sprintf("Package %q is not offered for this selection", a.Value))
			}
		}
		v.Package = a.Value
	case ActionSetAddOns:
		v, err := vehicleByID(&next.Form, a.VehicleID)
		if err != nil {
			return s, err
		}
		scope := ResolveAddOns(*v, cat)
		for _, id := range a.AddOns {
			if !addOnInScope(scope, id) {
				return s, NewValidationError(fmt.Sprintf("Add-on %q is not offered for this selection", id))
			}
		}
		v.AdditionalServices = append([]string{}, a.AddOns...)
	case ActionConfirmPackage:
		v, err := vehicleByID(&next.Form, a.VehicleID)
		if err != nil {
			return s, err
		}
		if v.Package == "" {
			return s, NewValidationError("Select a package before confirming it")
		}
		v.PackageConfirmed = true
	case ActionAddVehicle:
		next.Form.VehicleBookings = append(next.Form.VehicleBookings, newVehicleBooking())
	case ActionRemoveVehicle:
		if err := removeVehicle(&next.Form, a.VehicleID); err != nil {
			return s, err
		}
	case ActionApplyPromo:
		applyPromo(&next, cat, a.Value)
	case ActionRemovePromo:
		next.PromoCode = ""
		next.AppliedPromo = nil
		next.PromoError = ""
	case ActionNextStep:
		if err := guardAdvance(&next, cat); err != nil {
			return s, err
		}
		next.Step++
	case ActionPrevStep:
		if next.Step <= models.StepSelectServices {
			return s, NewStepError("Already at the first step")
		}
		next.Step--
	default:
		return s, NewValidationError(fmt.Sprintf("Unknown action type %q", a.Type))
	}
	return next, nil
}

func setFormField(s *models.FormSession, cat *catalog.Catalog, field, value string) error {
	f := &s.Form
	switch field {
	case "firstName":
		f.FirstName = value
	case "lastName":
		f.LastName = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = formatPhone(value)
	case "address":
		f.Address = value
	case "city":
		f.City = value
		if strings.TrimSpace(value) == "" {
			// Clearing the city always clears the state, and leaving manual
			// mode here is the one path that re-enables auto-fill.
			f.State = ""
			s.ManualState = false
		} else if !s.ManualState {
			if st, ok := catalog.StateForCity(value); ok {
				f.State = st
			}
		}
	case "state":
		f.State = value
		s.ManualState = true
	case "zip":
		f.Zip = value
	case "date":
		if value != "" {
			if _, err := time.Parse(time.RFC3339, value); err != nil {
				return NewValidationError(fmt.Sprintf("Invalid date %q", value))
			}
		}
		f.Date = value
	case "timeSlot":
		if value != "" && !cat.HasTimeSlot(value) {
			return NewValidationError(fmt.Sprintf("Unknown time slot %q", value))
		}
		f.TimeSlot = value
	case "notes":
		f.Notes = value
	default:
		return NewValidationError(fmt.Sprintf("Unknown form field %q", field))
	}
	return nil
}

func setVehicleField(v *models.VehicleBooking, field, value string) error {
	switch field {
	case "vehicleMake":
		v.VehicleMake = value
	case "vehicleModel":
		v.VehicleModel = value
	case "vehicleYear":
		v.VehicleYear = value
	case "vehicleColor":
		v.VehicleColor = value
	case "vehicleLength":
		v.VehicleLength = value
	default:
		return NewValidationError(fmt.Sprintf("Unknown vehicle field %q", field))
	}
	return nil
}

// selectServiceType resets everything downstream of the service type choice:
// variant, main service, package, add-ons, confirmation, and the vehicle
// detail fields, then derives vehicleType from the service's display name.
// An id the catalog does not carry is rejected; empty clears the selection.
func selectServiceType(v *models.VehicleBooking, cat *catalog.Catalog, serviceTypeID string) error {
	st := cat.ServiceType(serviceTypeID)
	if serviceTypeID != "" && st == nil {
		return NewValidationError(fmt.Sprintf("Unknown service type %q", serviceTypeID))
	}
	v.ServiceType = serviceTypeID
	v.Variant = ""
	v.MainService = ""
	v.Package = ""
	v.AdditionalServices = []string{}
	v.PackageConfirmed = false
	if st != nil {
		v.VehicleType = st.Name
	} else {
		v.VehicleType = ""
	}
	v.VehicleMake = ""
	v.VehicleModel = ""
	v.VehicleYear = ""
	v.VehicleColor = ""
	v.VehicleLength = ""
	return nil
}

// selectVariant resets the selections scoped below the variant and overrides
// vehicleType with the variant's display name. The variant must belong to
// the vehicle's current service type; empty clears the selection.
func selectVariant(v *models.VehicleBooking, cat *catalog.Catalog, variantID string) error {
	var vr *models.Variant
	if variantID != "" {
		st := cat.ServiceType(v.ServiceType)
		if st == nil || st.FindVariant(variantID) == nil {
			return NewValidationError(fmt.Sprintf("Unknown variant %q for service type %q", variantID, v.ServiceType))
		}
		vr = st.FindVariant(variantID)
	}
	v.Variant = variantID
	v.MainService = ""
	v.Package = ""
	v.AdditionalServices = []string{}
	v.PackageConfirmed = false
	if vr != nil {
		v.VehicleType = vr.Name
	}
	return nil
}

func addOnInScope(scope []models.AddOn, id string) bool {
	for i := range scope {
		if scope[i].ID == id {
			return true
		}
	}
	return false
}

// applyPromo strips all whitespace from the entered code and matches it
// case-insensitively. Outcomes land in the session's promo fields; a miss
// clears any previously applied promo.
func applyPromo(s *models.FormSession, cat *catalog.Catalog, code string) {
	cleaned := stripWhitespace(code)
	if cleaned == "" {
		s.PromoError = MsgPromoEmpty
		return
	}
	if promo := cat.Promo(cleaned); promo != nil {
		p := *promo
		s.AppliedPromo = &p
		s.PromoCode = cleaned
		s.PromoError = ""
	} else {
		s.AppliedPromo = nil
		s.PromoError = MsgPromoInvalid
	}
}

func removeVehicle(f *models.BookingForm, vehicleID string) error {
	if len(f.VehicleBookings) <= 1 {
		return NewVehicleError(MsgVehicleRequired)
	}
	for i := range f.VehicleBookings {
		if f.VehicleBookings[i].ID == vehicleID {
			f.VehicleBookings = append(f.VehicleBookings[:i], f.VehicleBookings[i+1:]...)
			return nil
		}
	}
	return NewVehicleError(fmt.Sprintf("Vehicle %q not found", vehicleID))
}

func vehicleByID(f *models.BookingForm, vehicleID string) (*models.VehicleBooking, error) {
	for i := range f.VehicleBookings {
		if f.VehicleBookings[i].ID == vehicleID {
			return &f.VehicleBookings[i], nil
		}
	}
	return nil, NewVehicleError(fmt.Sprintf("Vehicle %q not found", vehicleID))
}

// cloneSession copies the parts of the session an action may mutate, so
// Apply's input state survives a rejected action untouched.
func cloneSession(s models.FormSession) models.FormSession {
	vehicles := make([]models.VehicleBooking, len(s.Form.VehicleBookings))
	copy(vehicles, s.Form.VehicleBookings)
	for i := range vehicles {
		vehicles[i].AdditionalServices = append([]string{}, vehicles[i].AdditionalServices...)
	}
	s.Form.VehicleBookings = vehicles
	if s.AppliedPromo != nil {
		p := *s.AppliedPromo
		s.AppliedPromo = &p
	}
	return s
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// formatPhone normalizes a phone input to the progressive
// "+1 (AAA) FFF-SSSS" shape, inferring the leading country code when the
// caller omits it.
func formatPhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return "+1"
	}
	if !strings.HasPrefix(cleaned, "1") {
		cleaned = "1" + cleaned
	}
	if len(cleaned) == 1 {
		return "+1"
	}
	country := cleaned[:1]
	area := sliceDigits(cleaned, 1, 4)
	first := sliceDigits(cleaned, 4, 7)
	second := sliceDigits(cleaned, 7, 11)

	result := "+" + country
	if area != "" {
		result += " (" + area
	}
	if first != "" {
		result += ") " + first
	}
	if second != "" {
		result += "-" + second
	}
	return result
}

func sliceDigits(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
