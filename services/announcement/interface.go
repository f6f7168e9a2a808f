package announcement

import (
	"context"

	"confcentral/models"
)

// Cache key for the nearly-sold-out announcement.
const NearlySoldOutKey = "announcements:nearly_sold_out"

// Cache key for the featured-speaker announcement.
const FeaturedSpeakerKey = "announcements:featured_speaker"

// NearlySoldOutMaxSeats is the seat threshold below which a conference counts
// as nearly sold out (1-5 seats left).
const NearlySoldOutMaxSeats = 5

// Cache is the key-value collaborator announcements live in. A missing key is
// a valid steady state, distinct from an empty string.
type Cache interface {
	// Get returns the cached value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the cached value.
	Set(ctx context.Context, key, value string) error
}

// AnnouncementService derives and caches the two announcement strings.
type AnnouncementService interface {
	// RefreshNearlySoldOut rescans conferences and overwrites the cached
	// nearly-sold-out announcement when any qualify. Returns the
	// published text, empty when nothing qualified.
	RefreshNearlySoldOut(ctx context.Context) (string, error)
	// CheckFeaturedSpeaker publishes a featured-speaker announcement when
	// the speaker has more than one session in the conference.
	CheckFeaturedSpeaker(ctx context.Context, conferenceKey, speaker string) error
	// GetAnnouncement returns the cached nearly-sold-out announcement,
	// nil when none has been published.
	GetAnnouncement(ctx context.Context) (*models.Announcement, error)
	// GetFeaturedSpeaker returns the cached featured-speaker
	// announcement, nil when none has been published.
	GetFeaturedSpeaker(ctx context.Context) (*models.Announcement, error)
}
