package models

// Announcement wraps a cached announcement message.
type Announcement struct {
	Message string `json:"message"`
}
