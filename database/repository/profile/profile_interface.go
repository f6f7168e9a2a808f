package profileRepo

import "confcentral/models"

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByID retrieves a profile by user ID. Returns nil, nil when the
	// profile does not exist yet.
	GetByID(userID string) (*models.Profile, error)
	// Upsert inserts or replaces a profile document.
	Upsert(profile *models.Profile) error
}
