package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hometown/models"
)

// StartSession creates a fresh wizard session, persists it, and returns it
// with its (empty) pricing summary.
func (s *DefaultFormService) StartSession(ctx context.Context) (*models.FormSession, models.PricingSummary, error) {
	session := NewFormSession(uuid.New().String())
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, models.PricingSummary{}, fmt.Errorf("failed to store booking session: %w", err)
	}
	return session, Summarize(session, s.Catalog), nil
}

// GetSession returns the current session state with pricing recomputed from
// the catalog, mirroring the wizard's recompute-on-render behavior.
func (s *DefaultFormService) GetSession(ctx context.Context, sessionID string) (*models.FormSession, models.PricingSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.PricingSummary{}, err
	}
	return session, Summarize(session, s.Catalog), nil
}

// ApplyAction runs one reducer action against the stored session and saves
// the result. A rejected action leaves the stored state untouched.
func (s *DefaultFormService) ApplyAction(ctx context.Context, sessionID string, action Action) (*models.FormSession, models.PricingSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.PricingSummary{}, err
	}

	next, err := Apply(*session, s.Catalog, action)
	if err != nil {
		return nil, models.PricingSummary{}, err
	}
	if err := s.Store.Save(ctx, &next); err != nil {
		return nil, models.PricingSummary{}, fmt.Errorf("failed to store booking session: %w", err)
	}
	return &next, Summarize(&next, s.Catalog), nil
}

// Submit validates the final step, marks the session in flight, posts the
// booking to the external API, and records the outcome. Every failure path
// leaves the form state intact on the schedule step with only the
// submitting flag cleared, so the user can correct and retry.
func (s *DefaultFormService) Submit(ctx context.Context, sessionID string) (*models.FormSession, models.PricingSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.PricingSummary{}, err
	}
	summary := Summarize(session, s.Catalog)

	if session.Confirmed {
		return nil, summary, NewStepError("Booking already confirmed")
	}
	if session.Submitting {
		return nil, summary, NewStepError("Submission already in progress")
	}
	if session.Step != models.StepScheduleContact {
		return nil, summary, NewStepError("Submission is only available from the final step")
	}
	if !StepThreeComplete(session.Form) {
		return nil, summary, NewValidationError("Please fill in the date, time slot, and all contact fields")
	}

	bookingID := GenerateBookingID()
	session.Submitting = true
	if err := s.Store.Save(ctx, session); err != nil {
		session.Submitting = false
		return nil, summary, fmt.Errorf("failed to store booking session: %w", err)
	}

	submitErr := s.Submitter.Submit(ctx, BuildSubmission(session, summary, bookingID))

	session.Submitting = false
	if submitErr != nil {
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, summary, fmt.Errorf("failed to store booking session: %w", err)
		}
		return session, summary, submitErr
	}

	session.Confirmed = true
	session.BookingID = bookingID
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, summary, fmt.Errorf("failed to store booking session: %w", err)
	}
	return session, summary, nil
}

// Dismiss acknowledges the confirmation dialog: the form resets to its
// initial shape and the wizard returns to step one.
func (s *DefaultFormService) Dismiss(ctx context.Context, sessionID string) (*models.FormSession, models.PricingSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.PricingSummary{}, err
	}
	if !session.Confirmed {
		return nil, models.PricingSummary{}, NewStepError("No confirmation to dismiss")
	}
	resetSession(session)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, models.PricingSummary{}, fmt.Errorf("failed to store booking session: %w", err)
	}
	return session, Summarize(session, s.Catalog), nil
}
