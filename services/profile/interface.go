package profile

import "confcentral/models"

// ProfileService defines profile lookups and updates.
type ProfileService interface {
	// GetProfile returns the user's profile, creating nothing; a not-found
	// error surfaces when the user has never saved one.
	GetProfile(userID string) (*models.Profile, error)
	// SaveProfile creates or updates the user's profile from the form.
	// Missing display name defaults to the email local part, missing tee
	// shirt size to NOT_SPECIFIED.
	SaveProfile(userID, email string, form *models.ProfileForm) (*models.Profile, error)
}
