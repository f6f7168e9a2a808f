package session

import (
	"context"
	"fmt"

	registrationRepo "confcentral/database/repository/registration"
	sessionRepo "confcentral/database/repository/session"
	"confcentral/models"
	"confcentral/services/announcement"
	"confcentral/services/notification"
	"confcentral/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Repo          sessionRepo.SessionRepository
	Atomic        registrationRepo.AtomicRunner
	Notifier      notification.NotificationService
	Announcements announcement.AnnouncementService
}

// CreateSession validates the form and saves the session transactionally
// after verifying the caller organizes the parent conference. The
// featured-speaker check and confirmation email are deferred side effects and
// may fail without affecting the result.
func (s *DefaultSessionService) CreateSession(ctx context.Context, userID, email, conferenceKey string, form *models.SessionForm) (*models.Session, error) {
	sessionKey := uuid.New().String()
	session, err := models.NewSession(sessionKey, conferenceKey, form)
	if err != nil {
		return nil, err
	}

	err = s.Atomic.RunAtomic(ctx, func(tx registrationRepo.Tx) error {
		conference, err := tx.Conference(conferenceKey)
		if err != nil {
			return err
		}
		if conference == nil {
			return utils.NotFoundErr("no conference found with key: %s", conferenceKey)
		}
		if conference.OrganizerUserID != userID {
			return utils.UnauthorizedErr("only the conference organizer can add sessions")
		}
		return tx.SaveSession(session)
	})
	if err != nil {
		return nil, err
	}

	if err := s.Notifier.EnqueueConfirmationEmail(ctx, models.EmailPayload{
		Type:  models.EmailTypeNewSession,
		Email: email,
		Info:  session.Summary(),
	}); err != nil {
		utils.GetLogger().Warn("failed to enqueue session confirmation email",
			zap.String("sessionKey", sessionKey), zap.Error(err))
	}

	// Featured-speaker announcement runs after the save and must not
	// block or fail the creation.
	go func() {
		if err := s.Announcements.CheckFeaturedSpeaker(context.Background(), conferenceKey, session.Speaker); err != nil {
			utils.GetLogger().Warn("featured speaker check failed",
				zap.String("conferenceKey", conferenceKey),
				zap.String("speaker", session.Speaker), zap.Error(err))
		}
	}()

	return session, nil
}

// GetConferenceSessions lists all sessions of a conference.
func (s *DefaultSessionService) GetConferenceSessions(conferenceKey string) ([]models.Session, error) {
	sessions, err := s.Repo.GetByConference(conferenceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load conference sessions: %w", err)
	}
	return sessions, nil
}

// GetConferenceSessionsByType lists a conference's sessions of one type.
func (s *DefaultSessionService) GetConferenceSessionsByType(conferenceKey, sessionType string) ([]models.Session, error) {
	sessions, err := s.Repo.GetByConferenceAndType(conferenceKey, sessionType)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions by type: %w", err)
	}
	return sessions, nil
}

// GetSessionsBySpeaker lists a speaker's sessions across conferences.
func (s *DefaultSessionService) GetSessionsBySpeaker(speaker string) ([]models.Session, error) {
	sessions, err := s.Repo.GetBySpeaker(speaker)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions by speaker: %w", err)
	}
	return sessions, nil
}

// QuerySessions validates the filters into a plan and executes it lazily: the
// store is only hit here, never while the plan is built.
func (s *DefaultSessionService) QuerySessions(form *models.SessionQueryForm) ([]models.Session, error) {
	if form == nil {
		form = &models.SessionQueryForm{}
	}
	plan, err := form.BuildPlan()
	if err != nil {
		return nil, err
	}
	sessions, err := s.Repo.Query(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	return sessions, nil
}
