package conferenceRepo

import "confcentral/models"

// ConferenceRepository defines methods for conference data access.
type ConferenceRepository interface {
	// GetByID retrieves a conference by key. Returns nil, nil when absent.
	GetByID(id string) (*models.Conference, error)
	// GetByKeys retrieves the conferences for the given keys, preserving
	// key order. Missing keys are skipped.
	GetByKeys(keys []string) ([]models.Conference, error)
	// GetByOrganizer retrieves the conferences a user created, by name.
	GetByOrganizer(userID string) ([]models.Conference, error)
	// Query runs a validated conference query plan.
	Query(plan *models.ConferenceQueryPlan) ([]models.Conference, error)
	// NearlySoldOut retrieves conferences with 0 < seatsAvailable <= maxSeats.
	NearlySoldOut(maxSeats int) ([]models.Conference, error)
}
