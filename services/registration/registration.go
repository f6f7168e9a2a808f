package registration

import (
	"context"
	"fmt"

	profileRepo "confcentral/database/repository/profile"
	registrationRepo "confcentral/database/repository/registration"
	sessionRepo "confcentral/database/repository/session"
	"confcentral/models"
	"confcentral/utils"
)

// DefaultRegistrationService implements RegistrationService.
type DefaultRegistrationService struct {
	Atomic      registrationRepo.AtomicRunner
	ProfileRepo profileRepo.ProfileRepository
	SessionRepo sessionRepo.SessionRepository
}

// RegisterForConference books one seat for the user. The conference load, the
// membership and capacity checks, and both writes happen in one transaction.
func (s *DefaultRegistrationService) RegisterForConference(ctx context.Context, userID, email, conferenceKey string) error {
	return s.Atomic.RunAtomic(ctx, func(tx registrationRepo.Tx) error {
		conference, err := tx.Conference(conferenceKey)
		if err != nil {
			return err
		}
		if conference == nil {
			return utils.NotFoundErr("no conference found with key: %s", conferenceKey)
		}

		profile, err := tx.Profile(userID)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = models.NewProfile(userID, "", email, "")
		}

		if profile.IsRegisteredForConference(conferenceKey) {
			return utils.ConflictErr("you have already registered for this conference")
		}
		if conference.SeatsAvailable == 0 {
			return utils.ConflictErr("there are no seats available")
		}

		profile.AddConferenceKeyToAttend(conferenceKey)
		if err := conference.BookSeats(1); err != nil {
			return err
		}

		if err := tx.SaveConference(conference); err != nil {
			return err
		}
		return tx.SaveProfile(profile)
	})
}

// UnregisterFromConference releases the user's seat.
func (s *DefaultRegistrationService) UnregisterFromConference(ctx context.Context, userID, conferenceKey string) error {
	return s.Atomic.RunAtomic(ctx, func(tx registrationRepo.Tx) error {
		conference, err := tx.Conference(conferenceKey)
		if err != nil {
			return err
		}
		if conference == nil {
			return utils.NotFoundErr("no conference found with key: %s", conferenceKey)
		}

		profile, err := tx.Profile(userID)
		if err != nil {
			return err
		}
		if profile == nil || !profile.IsRegisteredForConference(conferenceKey) {
			return utils.ForbiddenErr("you are not registered for this conference")
		}

		if err := profile.UnregisterFromConference(conferenceKey); err != nil {
			return err
		}
		if err := conference.GiveBackSeats(1); err != nil {
			return err
		}

		if err := tx.SaveConference(conference); err != nil {
			return err
		}
		return tx.SaveProfile(profile)
	})
}

// AddSessionToWishlist records a session on the user's wishlist. The user
// must already be registered for the session's parent conference.
func (s *DefaultRegistrationService) AddSessionToWishlist(ctx context.Context, userID, sessionKey string) error {
	return s.Atomic.RunAtomic(ctx, func(tx registrationRepo.Tx) error {
		session, err := tx.Session(sessionKey)
		if err != nil {
			return err
		}
		if session == nil {
			return utils.NotFoundErr("no session found with key: %s", sessionKey)
		}

		profile, err := tx.Profile(userID)
		if err != nil {
			return err
		}
		if profile == nil || !profile.IsRegisteredForConference(session.ConferenceKey) {
			return utils.ConflictErr("register for the conference before wishlisting its sessions")
		}
		if profile.IsSessionInWishlist(sessionKey) {
			return utils.ConflictErr("session is already in your wishlist")
		}

		profile.AddSessionKeyToWishlist(sessionKey)
		return tx.SaveProfile(profile)
	})
}

// RemoveSessionFromWishlist drops a session from the user's wishlist.
func (s *DefaultRegistrationService) RemoveSessionFromWishlist(ctx context.Context, userID, sessionKey string) error {
	return s.Atomic.RunAtomic(ctx, func(tx registrationRepo.Tx) error {
		profile, err := tx.Profile(userID)
		if err != nil {
			return err
		}
		if profile == nil || !profile.IsSessionInWishlist(sessionKey) {
			return utils.ForbiddenErr("session is not in your wishlist")
		}

		if err := profile.RemoveSessionKeyFromWishlist(sessionKey); err != nil {
			return err
		}
		return tx.SaveProfile(profile)
	})
}

// GetWishlistSessions lists the sessions on the user's wishlist.
func (s *DefaultRegistrationService) GetWishlistSessions(userID string) ([]models.Session, error) {
	profile, err := s.ProfileRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, utils.NotFoundErr("no profile found for user %s", userID)
	}

	sessions, err := s.SessionRepo.GetByKeys(profile.SessionsInWishlist())
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist sessions: %w", err)
	}
	return sessions, nil
}
