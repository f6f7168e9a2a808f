package announcement

import (
	"context"
	"fmt"
	"strings"

	conferenceRepo "confcentral/database/repository/conference"
	sessionRepo "confcentral/database/repository/session"
	"confcentral/models"
)

// DefaultAnnouncementService implements AnnouncementService.
type DefaultAnnouncementService struct {
	Cache          Cache
	ConferenceRepo conferenceRepo.ConferenceRepository
	SessionRepo    sessionRepo.SessionRepository
}

// RefreshNearlySoldOut rescans conferences with 1-5 seats left and overwrites
// the cached announcement. When no conference qualifies, the previous value
// stays untouched.
func (s *DefaultAnnouncementService) RefreshNearlySoldOut(ctx context.Context) (string, error) {
	conferences, err := s.ConferenceRepo.NearlySoldOut(NearlySoldOutMaxSeats)
	if err != nil {
		return "", fmt.Errorf("failed to scan for nearly sold out conferences: %w", err)
	}
	if len(conferences) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(conferences))
	for _, c := range conferences {
		names = append(names, c.Name)
	}
	text := "Oh look! Last chance to attend! The following conferences are nearly sold out: " +
		strings.Join(names, ", ")

	if err := s.Cache.Set(ctx, NearlySoldOutKey, text); err != nil {
		return "", fmt.Errorf("failed to cache announcement: %w", err)
	}
	return text, nil
}

// CheckFeaturedSpeaker counts the speaker's sessions within the conference
// and publishes a featured-speaker announcement when there is more than one.
func (s *DefaultAnnouncementService) CheckFeaturedSpeaker(ctx context.Context, conferenceKey, speaker string) error {
	sessions, err := s.SessionRepo.GetByConferenceAndSpeaker(conferenceKey, speaker)
	if err != nil {
		return fmt.Errorf("failed to fetch sessions for speaker %s: %w", speaker, err)
	}
	if len(sessions) <= 1 {
		return nil
	}

	conference, err := s.ConferenceRepo.GetByID(conferenceKey)
	if err != nil {
		return fmt.Errorf("failed to fetch conference %s: %w", conferenceKey, err)
	}
	if conference == nil {
		return nil
	}

	names := make([]string, 0, len(sessions))
	for _, session := range sessions {
		names = append(names, session.Name)
	}
	text := fmt.Sprintf("Our featured speaker at %s is %s! Don't miss: %s",
		conference.Name, speaker, strings.Join(names, " • "))

	if err := s.Cache.Set(ctx, FeaturedSpeakerKey, text); err != nil {
		return fmt.Errorf("failed to cache featured speaker announcement: %w", err)
	}
	return nil
}

// GetAnnouncement returns the cached nearly-sold-out announcement.
func (s *DefaultAnnouncementService) GetAnnouncement(ctx context.Context) (*models.Announcement, error) {
	return s.read(ctx, NearlySoldOutKey)
}

// GetFeaturedSpeaker returns the cached featured-speaker announcement.
func (s *DefaultAnnouncementService) GetFeaturedSpeaker(ctx context.Context) (*models.Announcement, error) {
	return s.read(ctx, FeaturedSpeakerKey)
}

func (s *DefaultAnnouncementService) read(ctx context.Context, key string) (*models.Announcement, error) {
	text, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read announcement: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &models.Announcement{Message: text}, nil
}
