package conference

import (
	"context"

	"confcentral/models"
)

// ConferenceService defines conference creation and lookups.
type ConferenceService interface {
	// CreateConference creates a conference owned by userID, saving it and
	// the (possibly freshly created) profile in one transaction, then
	// enqueues a confirmation email.
	CreateConference(ctx context.Context, userID, email string, form *models.ConferenceForm) (*models.Conference, error)
	// GetConference fetches a conference by key.
	GetConference(conferenceKey string) (*models.Conference, error)
	// GetConferencesCreated lists the conferences the user organizes.
	GetConferencesCreated(userID string) ([]models.Conference, error)
	// GetConferencesToAttend lists the conferences the user registered for,
	// in registration order.
	GetConferencesToAttend(userID string) ([]models.Conference, error)
	// QueryConferences runs an ad-hoc filtered conference search.
	QueryConferences(form *models.ConferenceQueryForm) ([]models.Conference, error)
}
