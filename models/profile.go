package models

import (
	"strings"

	"confcentral/utils"
)

// TeeShirtSize options a user can pick for their profile.
type TeeShirtSize string

const (
	TeeShirtNotSpecified TeeShirtSize = "NOT_SPECIFIED"
	TeeShirtXS           TeeShirtSize = "XS"
	TeeShirtS            TeeShirtSize = "S"
	TeeShirtM            TeeShirtSize = "M"
	TeeShirtL            TeeShirtSize = "L"
	TeeShirtXL           TeeShirtSize = "XL"
	TeeShirtXXL          TeeShirtSize = "XXL"
	TeeShirtXXXL         TeeShirtSize = "XXXL"
)

// Profile represents a platform user. One per userID, created lazily on the
// first authenticated interaction.
type Profile struct {
	UserID      string       `bson:"id" json:"userId"`
	DisplayName string       `bson:"displayName" json:"displayName"`
	MainEmail   string       `bson:"mainEmail" json:"mainEmail"`
	TeeShirt    TeeShirtSize `bson:"teeShirtSize" json:"teeShirtSize"`

	// Keys of the conferences this user registered to attend, in
	// registration order. A key appears at most once.
	ConferenceKeysToAttend []string `bson:"conferenceKeysToAttend" json:"conferenceKeysToAttend"`

	// Keys of the sessions this user put on their wishlist, same
	// uniqueness rule.
	SessionKeysWishlist []string `bson:"sessionKeysWishlist" json:"sessionKeysWishlist"`
}

// NewProfile builds a profile with defaults filled in. An empty display name
// falls back to the local part of the email; an empty tee shirt size becomes
// NOT_SPECIFIED.
func NewProfile(userID, displayName, mainEmail string, teeShirt TeeShirtSize) *Profile {
	if displayName == "" {
		displayName = DefaultDisplayName(mainEmail)
	}
	if teeShirt == "" {
		teeShirt = TeeShirtNotSpecified
	}
	return &Profile{
		UserID:      userID,
		DisplayName: displayName,
		MainEmail:   mainEmail,
		TeeShirt:    teeShirt,
	}
}

// DefaultDisplayName derives a display name from the email local part, so
// "lemoncake@example.com" becomes "lemoncake".
func DefaultDisplayName(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// ConferencesToAttend returns a snapshot of the registered conference keys.
func (p *Profile) ConferencesToAttend() []string {
	return append([]string(nil), p.ConferenceKeysToAttend...)
}

// SessionsInWishlist returns a snapshot of the wishlist session keys.
func (p *Profile) SessionsInWishlist() []string {
	return append([]string(nil), p.SessionKeysWishlist...)
}

// IsRegisteredForConference reports whether conferenceKey is in the
// registered set.
func (p *Profile) IsRegisteredForConference(conferenceKey string) bool {
	for _, k := range p.ConferenceKeysToAttend {
		if k == conferenceKey {
			return true
		}
	}
	return false
}

// IsSessionInWishlist reports whether sessionKey is on the wishlist.
func (p *Profile) IsSessionInWishlist(sessionKey string) bool {
	for _, k := range p.SessionKeysWishlist {
		if k == sessionKey {
			return true
		}
	}
	return false
}

// AddConferenceKeyToAttend registers a conference key. Set semantics: adding
// a key already present is a no-op and returns false.
func (p *Profile) AddConferenceKeyToAttend(conferenceKey string) bool {
	if p.IsRegisteredForConference(conferenceKey) {
		return false
	}
	p.ConferenceKeysToAttend = append(p.ConferenceKeysToAttend, conferenceKey)
	return true
}

// AddSessionKeyToWishlist adds a session key to the wishlist. Set semantics,
// same as AddConferenceKeyToAttend.
func (p *Profile) AddSessionKeyToWishlist(sessionKey string) bool {
	if p.IsSessionInWishlist(sessionKey) {
		return false
	}
	p.SessionKeysWishlist = append(p.SessionKeysWishlist, sessionKey)
	return true
}

// UnregisterFromConference removes a conference key from the registered set.
func (p *Profile) UnregisterFromConference(conferenceKey string) error {
	for i, k := range p.ConferenceKeysToAttend {
		if k == conferenceKey {
			p.ConferenceKeysToAttend = append(p.ConferenceKeysToAttend[:i], p.ConferenceKeysToAttend[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundErr("invalid conferenceKey: %s", conferenceKey)
}

// RemoveSessionKeyFromWishlist removes a session key from the wishlist.
func (p *Profile) RemoveSessionKeyFromWishlist(sessionKey string) error {
	for i, k := range p.SessionKeysWishlist {
		if k == sessionKey {
			p.SessionKeysWishlist = append(p.SessionKeysWishlist[:i], p.SessionKeysWishlist[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundErr("invalid sessionKey: %s", sessionKey)
}

// Update overwrites display name and tee shirt size where provided.
func (p *Profile) Update(displayName string, teeShirt TeeShirtSize) {
	if displayName != "" {
		p.DisplayName = displayName
	}
	if teeShirt != "" {
		p.TeeShirt = teeShirt
	}
}
