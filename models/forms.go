package models

import "time"

// ConferenceForm carries the client input for creating a conference.
type ConferenceForm struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Topics       []string   `json:"topics"`
	City         string     `json:"city"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	MaxAttendees int        `json:"maxAttendees"`
}

// SessionForm carries the client input for creating a session.
type SessionForm struct {
	Name       string    `json:"name"`
	Speaker    string    `json:"speaker"`
	Highlights string    `json:"highlights"`
	Type       string    `json:"type"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Duration   int       `json:"duration"`
}

// ProfileForm carries the client input for creating or updating a profile.
type ProfileForm struct {
	DisplayName string       `json:"displayName"`
	TeeShirt    TeeShirtSize `json:"teeShirtSize"`
}
