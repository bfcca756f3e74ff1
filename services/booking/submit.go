package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"hometown/models"
)

// WebsiteName is carried in every submission payload so the dashboard can
// attribute bookings to this storefront.
const WebsiteName = "Home Town Detailing"

// GenerateBookingID returns a customer-facing booking reference of the form
// HTD-XXXXX with a random 5-digit suffix.
func GenerateBookingID() string {
	return fmt.Sprintf("HTD-%d", 10000+rand.Intn(90000))
}

// BuildSubmission assembles the payload for the external booking API from a
// session snapshot and its pricing summary.
func BuildSubmission(s *models.FormSession, summary models.PricingSummary, bookingID string) models.BookingSubmission {
	sub := models.BookingSubmission{
		BookingID:       bookingID,
		WebName:         WebsiteName,
		FormData:        s.Form,
		TotalPrice:      summary.Total,
		DiscountAmount:  summary.Discount,
		DiscountedPrice: summary.Final,
		DiscountApplied: s.AppliedPromo != nil,
		SubmittedAt:     time.Now().UTC().Format(time.RFC3339),
		VehicleCount:    len(s.Form.VehicleBookings),
		Status:          "pending",
	}
	if s.AppliedPromo != nil {
		sub.DiscountPercent = s.AppliedPromo.Discount
		code := s.AppliedPromo.Code
		sub.PromoCode = &code
	}
	return sub
}

// SubmissionClient posts finished bookings to the external booking API.
// No request timeout is set: the submission runs to completion or transport
// failure, and callers gate duplicates with the session's in-flight flag.
type SubmissionClient struct {
	Endpoint   string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewSubmissionClient(endpoint string, logger *zap.Logger) *SubmissionClient {
	return &SubmissionClient{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

// Submit sends the booking and interprets the response per the failure
// taxonomy: a missing or non-JSON content type is a server malfunction and
// the body is never parsed; a JSON non-2xx surfaces the server's error
// message; transport failures are retryable network errors.
func (c *SubmissionClient) Submit(ctx context.Context, sub models.BookingSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal booking submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Warn("Booking submission transport failure",
			zap.String("bookingId", sub.BookingID), zap.Error(err))
		return NewNetworkError()
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || !strings.Contains(contentType, "application/json") {
		c.Logger.Error("Booking API returned non-JSON response",
			zap.String("bookingId", sub.BookingID),
			zap.Int("status", resp.StatusCode),
			zap.String("contentType", contentType))
		return NewServerError()
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.Logger.Info("Booking submitted",
			zap.String("bookingId", sub.BookingID),
			zap.Float64("total", sub.TotalPrice),
			zap.Int("vehicles", sub.VehicleCount))
		return nil
	}

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		apiErr.Error = ""
	}
	c.Logger.Warn("Booking rejected by API",
		zap.String("bookingId", sub.BookingID),
		zap.Int("status", resp.StatusCode),
		zap.String("apiError", apiErr.Error))
	return NewRejectedError(apiErr.Error)
}
