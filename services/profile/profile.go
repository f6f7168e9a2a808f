package profile

import (
	"fmt"

	profileRepo "confcentral/database/repository/profile"
	"confcentral/models"
	"confcentral/utils"
)

// DefaultProfileService implements ProfileService.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}

// GetProfile returns the stored profile for userID.
func (s *DefaultProfileService) GetProfile(userID string) (*models.Profile, error) {
	p, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return nil, utils.NotFoundErr("no profile found for user %s", userID)
	}
	return p, nil
}

// SaveProfile creates the profile on first save and updates it afterwards.
func (s *DefaultProfileService) SaveProfile(userID, email string, form *models.ProfileForm) (*models.Profile, error) {
	if form == nil {
		form = &models.ProfileForm{}
	}

	p, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		p = models.NewProfile(userID, form.DisplayName, email, form.TeeShirt)
	} else {
		p.Update(form.DisplayName, form.TeeShirt)
	}

	if err := s.Repo.Upsert(p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return p, nil
}
