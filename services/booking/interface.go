package booking

import (
	"context"
	"errors"

	"hometown/catalog"
	"hometown/models"
)

// ErrSessionNotFound is returned when a wizard session is missing or its TTL
// has lapsed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// FormService defines the interface for driving a stateful booking wizard
// session through its three steps, submission, and reset.
type FormService interface {
	StartSession(ctx context.Context) (*models.FormSession, models.PricingSummary, error)
	GetSession(ctx context.Context, sessionID string) (*models.FormSession, models.PricingSummary, error)
	ApplyAction(ctx context.Context, sessionID string, action Action) (*models.FormSession, models.PricingSummary, error)
	Submit(ctx context.Context, sessionID string) (*models.FormSession, models.PricingSummary, error)
	Dismiss(ctx context.Context, sessionID string) (*models.FormSession, models.PricingSummary, error)
}

// SessionStore abstracts where wizard sessions live between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.FormSession) error
	Get(ctx context.Context, sessionID string) (*models.FormSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// DefaultFormService implements FormService.
type DefaultFormService struct {
	Store     SessionStore
	Catalog   *catalog.Catalog
	Submitter *SubmissionClient
}
