package models

import "time"

// Wizard steps. Submitting and confirmation are tracked as flags on the
// session so a failed submission leaves the user on the schedule step.
const (
	StepSelectServices  = 1
	StepConfirmPackages = 2
	StepScheduleContact = 3
)

// VehicleBooking captures one vehicle's selections within a booking form.
type VehicleBooking struct {
	ID                 string   `json:"id"`
	ServiceType        string   `json:"serviceType"`
	Variant            string   `json:"variant"`
	MainService        string   `json:"mainService"`
	Package            string   `json:"package"`
	AdditionalServices []string `json:"additionalServices"`
	VehicleType        string   `json:"vehicleType"`
	VehicleMake        string   `json:"vehicleMake"`
	VehicleModel       string   `json:"vehicleModel"`
	VehicleYear        string   `json:"vehicleYear"`
	VehicleColor       string   `json:"vehicleColor"`
	VehicleLength      string   `json:"vehicleLength"`
	PackageConfirmed   bool     `json:"packageConfirmed"`
}

// BookingForm is the aggregate the wizard fills in across its three steps.
type BookingForm struct {
	VehicleBookings []VehicleBooking `json:"vehicleBookings"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	State           string           `json:"state"`
	Zip             string           `json:"zip"`
	Date            string           `json:"date"`
	TimeSlot        string           `json:"timeSlot"`
	Notes           string           `json:"notes"`
}

// FormSession holds a wizard instance between requests: the form itself plus
// step position, promo state, the sticky manual-state flag for the city
// auto-fill, and the submission flags.
type FormSession struct {
	SessionID    string      `json:"sessionId"`
	Form         BookingForm `json:"form"`
	Step         int         `json:"step"`
	PromoCode    string      `json:"promoCode"`
	AppliedPromo *PromoCode  `json:"appliedPromo,omitempty"`
	PromoError   string      `json:"promoError,omitempty"`
	ManualState  bool        `json:"manualState"`
	Submitting   bool        `json:"submitting"`
	Confirmed    bool        `json:"confirmed"`
	BookingID    string      `json:"bookingId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// PricingSummary is recomputed from the form and catalog on every read.
type PricingSummary struct {
	VehicleTotals map[string]float64 `json:"vehicleTotals"`
	Total         float64            `json:"total"`
	Discount      float64            `json:"discount"`
	Final         float64            `json:"final"`
}

// BookingSubmission is the payload posted to the external booking API.
type BookingSubmission struct {
	BookingID       string      `json:"bookingId"`
	WebName         string      `json:"webName"`
	FormData        BookingForm `json:"formData"`
	TotalPrice      float64     `json:"totalPrice"`
	DiscountAmount  float64     `json:"discountAmount"`
	DiscountedPrice float64     `json:"discountedPrice"`
	DiscountApplied bool        `json:"discountApplied"`
	DiscountPercent float64     `json:"discountPercent"`
	PromoCode       *string     `json:"promoCode"`
	SubmittedAt     string      `json:"submittedAt"`
	VehicleCount    int         `json:"vehicleCount"`
	Status          string      `json:"status"`
}
