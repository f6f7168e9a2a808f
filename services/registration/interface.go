package registration

import (
	"context"

	"confcentral/models"
)

// RegistrationService coordinates profile and conference state changes that
// must succeed or fail together. Every multi-entity mutation runs inside a
// single transaction: a conflicting concurrent attempt on the last seat
// resolves so exactly one caller wins.
type RegistrationService interface {
	// RegisterForConference books one seat and records the conference on
	// the user's profile, atomically.
	RegisterForConference(ctx context.Context, userID, email, conferenceKey string) error
	// UnregisterFromConference releases the seat and removes the key,
	// atomically.
	UnregisterFromConference(ctx context.Context, userID, conferenceKey string) error
	// AddSessionToWishlist adds a session the user's registered
	// conference offers to their wishlist.
	AddSessionToWishlist(ctx context.Context, userID, sessionKey string) error
	// RemoveSessionFromWishlist removes a wishlisted session.
	RemoveSessionFromWishlist(ctx context.Context, userID, sessionKey string) error
	// GetWishlistSessions lists the sessions on the user's wishlist, in
	// wishlist order.
	GetWishlistSessions(userID string) ([]models.Session, error)
}
