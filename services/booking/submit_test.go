package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"go.uber.org/zap"

	"hometown/models"
)

func TestGenerateBookingID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^HTD-[1-9][0-9]{4}$`)
	for i := 0; i < 100; i++ {
		id := GenerateBookingID()
		if !pattern.MatchString(id) {
			t.Fatalf("booking id %q does not match HTD-XXXXX", id)
		}
	}
}

func TestBuildSubmission_Payload(t *testing.T) {
	cat := testCatalog()
	s := completedSession("s1")
	s.AppliedPromo = &models.PromoCode{Code: "SAVE10", Discount: 10}
	summary := Summarize(s, cat)

	sub := BuildSubmission(s, summary, "HTD-12345")
	if sub.BookingID != "HTD-12345" {
		t.Errorf("expected booking id carried, got %q", sub.BookingID)
	}
	if sub.WebName != WebsiteName {
		t.Errorf("expected webName %q, got %q", WebsiteName, sub.WebName)
	}
	if sub.TotalPrice != 50 || sub.DiscountAmount != 5 || sub.DiscountedPrice != 45 {
		t.Errorf("unexpected pricing: total=%v discount=%v final=%v", sub.TotalPrice, sub.DiscountAmount, sub.DiscountedPrice)
	}
	if !sub.DiscountApplied || sub.DiscountPercent != 10 {
		t.Errorf("expected promo metadata, got applied=%v percent=%v", sub.DiscountApplied, sub.DiscountPercent)
	}
	if sub.PromoCode == nil || *sub.PromoCode != "SAVE10" {
		t.Errorf("expected promo code SAVE10, got %v", sub.PromoCode)
	}
	if sub.VehicleCount != 1 {
		t.Errorf("expected one vehicle, got %d", sub.VehicleCount)
	}
	if sub.Status != "pending" {
		t.Errorf("expected status pending, got %q", sub.Status)
	}
	if sub.SubmittedAt == "" {
		t.Error("expected a submission timestamp")
	}
}

func TestBuildSubmission_NoPromo(t *testing.T) {
	cat := testCatalog()
	s := completedSession("s1")
	sub := BuildSubmission(s, Summarize(s, cat), "HTD-54321")
	if sub.DiscountApplied || sub.DiscountPercent != 0 {
		t.Errorf("expected no promo metadata, got %+v", sub)
	}
	if sub.PromoCode != nil {
		t.Errorf("expected nil promo code, got %q", *sub.PromoCode)
	}

	// The wire format carries an explicit null for the promo code.
	data, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if string(raw["promoCode"]) != "null" {
		t.Errorf("expected promoCode null, got %s", raw["promoCode"])
	}
}

func testSubmission() models.BookingSubmission {
	cat := testCatalog()
	s := completedSession("s1")
	return BuildSubmission(s, Summarize(s, cat), "HTD-10000")
}

func TestSubmit_Success(t *testing.T) {
	var received models.BookingSubmission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json request, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode submission: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewSubmissionClient(srv.URL, zap.NewNop())
	if err := client.Submit(context.Background(), testSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.BookingID != "HTD-10000" {
		t.Errorf("expected the payload to reach the API, got %+v", received)
	}
}

func TestSubmit_NonJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	client := NewSubmissionClient(srv.URL, zap.NewNop())
	err := client.Submit(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("expected an error")
	}
	be, ok := err.(*BookingError)
	if !ok || be.Code != CodeServerError {
		t.Fatalf("expected a server error, got %v", err)
	}
	if be.Message != MsgServerError {
		t.Errorf("expected %q, got %q", MsgServerError, be.Message)
	}
}

func TestSubmit_RejectionSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Time slot no longer available"}`))
	}))
	defer srv.Close()

	client := NewSubmissionClient(srv.URL, zap.NewNop())
	err := client.Submit(context.Background(), testSubmission())
	be, ok := err.(*BookingError)
	if !ok || be.Code != CodeBookingRejected {
		t.Fatalf("expected a rejection, got %v", err)
	}
	if be.Message != "Time slot no longer available" {
		t.Errorf("expected the server message verbatim, got %q", be.Message)
	}
}

func TestSubmit_RejectionWithoutMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewSubmissionClient(srv.URL, zap.NewNop())
	err := client.Submit(context.Background(), testSubmission())
	be, ok := err.(*BookingError)
	if !ok || be.Code != CodeBookingRejected {
		t.Fatalf("expected a rejection, got %v", err)
	}
	if be.Message != MsgBookingFailed {
		t.Errorf("expected %q, got %q", MsgBookingFailed, be.Message)
	}
}

func TestSubmit_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewSubmissionClient(srv.URL, zap.NewNop())
	err := client.Submit(context.Background(), testSubmission())
	be, ok := err.(*BookingError)
	if !ok || be.Code != CodeNetworkError {
		t.Fatalf("expected a network error, got %v", err)
	}
	if be.Message != MsgNetworkError {
		t.Errorf("expected %q, got %q", MsgNetworkError, be.Message)
	}
}
