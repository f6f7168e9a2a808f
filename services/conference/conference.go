package conference

import (
	"context"
	"fmt"

	conferenceRepo "confcentral/database/repository/conference"
	profileRepo "confcentral/database/repository/profile"
	registrationRepo "confcentral/database/repository/registration"
	"confcentral/models"
	"confcentral/services/notification"
	"confcentral/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultConferenceService implements ConferenceService.
type DefaultConferenceService struct {
	Repo        conferenceRepo.ConferenceRepository
	ProfileRepo profileRepo.ProfileRepository
	Atomic      registrationRepo.AtomicRunner
	Notifier    notification.NotificationService
}

// CreateConference validates the form, then saves the new conference together
// with the organizer's profile in one transaction. The confirmation email is
// enqueued after commit; a failed enqueue is logged, never surfaced.
func (s *DefaultConferenceService) CreateConference(ctx context.Context, userID, email string, form *models.ConferenceForm) (*models.Conference, error) {
	conferenceKey := uuid.New().String()
	conference, err := models.NewConference(conferenceKey, userID, form)
	if err != nil {
		return nil, err
	}

	var organizer *models.Profile
	err = s.Atomic.RunAtomic(ctx, func(tx registrationRepo.Tx) error {
		p, err := tx.Profile(userID)
		if err != nil {
			return err
		}
		if p == nil {
			p = models.NewProfile(userID, "", email, "")
		}
		organizer = p

		if err := tx.SaveProfile(p); err != nil {
			return err
		}
		return tx.SaveConference(conference)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create conference: %w", err)
	}

	if err := s.Notifier.EnqueueConfirmationEmail(ctx, models.EmailPayload{
		Type:  models.EmailTypeNewConference,
		Email: organizer.MainEmail,
		Info:  conference.Summary(),
	}); err != nil {
		utils.GetLogger().Warn("failed to enqueue conference confirmation email",
			zap.String("conferenceKey", conferenceKey), zap.Error(err))
	}

	return conference, nil
}

// GetConference fetches a conference by key.
func (s *DefaultConferenceService) GetConference(conferenceKey string) (*models.Conference, error) {
	conference, err := s.Repo.GetByID(conferenceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load conference: %w", err)
	}
	if conference == nil {
		return nil, utils.NotFoundErr("no conference found with key: %s", conferenceKey)
	}
	return conference, nil
}

// GetConferencesCreated lists the conferences the user organizes.
func (s *DefaultConferenceService) GetConferencesCreated(userID string) ([]models.Conference, error) {
	conferences, err := s.Repo.GetByOrganizer(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created conferences: %w", err)
	}
	return conferences, nil
}

// GetConferencesToAttend lists the conferences the user registered for.
func (s *DefaultConferenceService) GetConferencesToAttend(userID string) ([]models.Conference, error) {
	p, err := s.ProfileRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return nil, utils.NotFoundErr("no profile found for user %s", userID)
	}

	conferences, err := s.Repo.GetByKeys(p.ConferencesToAttend())
	if err != nil {
		return nil, fmt.Errorf("failed to load conferences to attend: %w", err)
	}
	return conferences, nil
}

// QueryConferences validates the filters into a plan and executes it.
func (s *DefaultConferenceService) QueryConferences(form *models.ConferenceQueryForm) ([]models.Conference, error) {
	if form == nil {
		form = &models.ConferenceQueryForm{}
	}
	plan, err := form.BuildPlan()
	if err != nil {
		return nil, err
	}
	conferences, err := s.Repo.Query(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to query conferences: %w", err)
	}
	return conferences, nil
}
