package registrationRepo

import (
	"context"

	"confcentral/models"
)

// Tx exposes entity access inside one atomic unit. All reads and writes made
// through a Tx commit together or not at all.
type Tx interface {
	// Profile loads a profile by user ID. Returns nil, nil when absent.
	Profile(userID string) (*models.Profile, error)
	// Conference loads a conference by key. Returns nil, nil when absent.
	Conference(key string) (*models.Conference, error)
	// Session loads a session by key. Returns nil, nil when absent.
	Session(key string) (*models.Session, error)
	// SaveProfile inserts or replaces a profile document.
	SaveProfile(profile *models.Profile) error
	// SaveConference inserts or replaces a conference document.
	SaveConference(conference *models.Conference) error
	// SaveSession inserts a session document.
	SaveSession(session *models.Session) error
}

// AtomicRunner executes a function with transactional guarantees over the
// entities it touches. When fn returns an error, every write made through the
// Tx is rolled back; concurrent conflicting transactions serialize so that
// exactly one wins.
type AtomicRunner interface {
	RunAtomic(ctx context.Context, fn func(tx Tx) error) error
}
