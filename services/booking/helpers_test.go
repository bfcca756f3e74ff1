package booking

import (
	"context"
	"encoding/json"

	"hometown/catalog"
	"hometown/models"
)

// testCatalog is a compact catalog exercising every shape: a variant-based
// service type, a direct service type with perFoot pricing, and a main
// service override track.
func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		ServiceTypes: []models.ServiceType{
			{
				ID:   "detail",
				Name: "Auto Detailing",
				Variants: []models.Variant{
					{
						ID:   "sedan",
						Name: "Sedan",
						Packages: []models.Package{
							{ID: "basic", Name: "Basic", Price: 100},
							{ID: "deluxe", Name: "Deluxe", Price: 150},
						},
						AdditionalServices: []models.AddOn{
							{ID: "wax", Name: "Wax", Price: 25},
							{ID: "odor", Name: "Odor Removal", Price: 45},
						},
					},
					{
						ID:   "suv",
						Name: "SUV",
						Packages: []models.Package{
							{ID: "suv-basic", Name: "Basic", Price: 120},
						},
					},
				},
			},
			{
				ID:   "boat",
				Name: "Boat Detailing",
				Packages: []models.Package{
					{ID: "boat-wash", Name: "Wash & Wax", Price: 10, PricingType: models.PricingPerFoot},
					{ID: "boat-flat", Name: "Flat Detail", Price: 50},
				},
				AdditionalServices: []models.AddOn{
					{ID: "teak", Name: "Teak Cleaning", Price: 95},
				},
			},
		},
		MainServices: []models.MainService{
			{
				ID:   "ceramic",
				Name: "Ceramic Coating",
				Packages: []models.Package{
					{ID: "ceramic-1yr", Name: "1-Year Coating", Price: 499},
				},
			},
		},
		TimeSlots:  []string{"8:00 AM - 10:00 AM", "10:00 AM - 12:00 PM"},
		PromoCodes: []models.PromoCode{{Code: "SAVE10", Discount: 10}},
	}
}

// memoryStore emulates the Redis store with a JSON round trip per operation.
type memoryStore struct {
	sessions map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string][]byte)}
}

func (m *memoryStore) Save(_ context.Context, session *models.FormSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.sessions[session.SessionID] = data
	return nil
}

func (m *memoryStore) Get(_ context.Context, sessionID string) (*models.FormSession, error) {
	data, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.FormSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (m *memoryStore) Delete(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

// completedSession builds a session sitting on the schedule step with every
// required field filled in, ready to submit.
func completedSession(id string) *models.FormSession {
	s := NewFormSession(id)
	v := &s.Form.VehicleBookings[0]
	v.ServiceType = "boat"
	v.Package = "boat-flat"
	v.PackageConfirmed = true
	s.Step = models.StepScheduleContact
	s.Form.Date = "2026-09-15T00:00:00.000Z"
	s.Form.TimeSlot = "8:00 AM - 10:00 AM"
	s.Form.FirstName = "Jamie"
	s.Form.LastName = "Rivera"
	s.Form.Email = "jamie@example.com"
	s.Form.Phone = "+1 (555) 123-4567"
	s.Form.Address = "12 Harbor Rd"
	s.Form.City = "Tampa"
	s.Form.State = "FL"
	s.Form.Zip = "33601"
	return s
}
