package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"confcentral/utils"
)

// MinSessionDuration is the shortest session accepted, in minutes.
const MinSessionDuration = 15

// time24Pattern matches a 24-hour HH:MM clock string.
var time24Pattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTime24 reports whether s is a well-formed 24-hour HH:MM string.
func ValidTime24(s string) bool {
	return time24Pattern.MatchString(s)
}

// Session belongs to a parent conference and is immutable after creation.
type Session struct {
	ID            string    `bson:"id" json:"sessionKey"`
	ConferenceKey string    `bson:"conferenceKey" json:"conferenceKey"`
	Name          string    `bson:"name" json:"name"`
	Speaker       string    `bson:"speaker" json:"speaker"`
	Highlights    string    `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Type          string    `bson:"type" json:"type"`
	Date          time.Time `bson:"date" json:"date"`

	// Start time in 24-hour HH:MM format. Kept as a string so inequality
	// filters sort lexicographically, which for this format is also
	// chronological.
	Time string `bson:"time" json:"time"`

	// Duration in minutes, at least MinSessionDuration.
	Duration int `bson:"duration" json:"duration"`
}

// NewSession builds a session from the client form. All fields except
// highlights are required.
func NewSession(id, conferenceKey string, form *SessionForm) (*Session, error) {
	if err := validateSessionForm(form); err != nil {
		return nil, err
	}
	return &Session{
		ID:            id,
		ConferenceKey: conferenceKey,
		Name:          form.Name,
		Speaker:       form.Speaker,
		Highlights:    form.Highlights,
		Type:          form.Type,
		Date:          form.Date,
		Time:          form.Time,
		Duration:      form.Duration,
	}, nil
}

func validateSessionForm(form *SessionForm) error {
	if form == nil {
		return utils.ValidationErr("session form is required")
	}
	if form.Name == "" {
		return utils.ValidationErr("session name is required")
	}
	if form.Speaker == "" {
		return utils.ValidationErr("speaker is required")
	}
	if form.Duration < MinSessionDuration {
		return utils.ValidationErr("session must be at least %d minutes", MinSessionDuration)
	}
	if form.Type == "" {
		return utils.ValidationErr("session type is required")
	}
	if form.Date.IsZero() {
		return utils.ValidationErr("session date is required")
	}
	if form.Time == "" {
		return utils.ValidationErr("session time is required")
	}
	if !ValidTime24(form.Time) {
		return utils.ValidationErr("session time must be in 24-hour HH:MM format")
	}
	return nil
}

// Summary renders the session for confirmation emails.
func (s *Session) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	if s.Highlights != "" {
		fmt.Fprintf(&b, "Highlights: %s\n", s.Highlights)
	}
	fmt.Fprintf(&b, "Speaker: %s\n", s.Speaker)
	fmt.Fprintf(&b, "Duration: %d\n", s.Duration)
	fmt.Fprintf(&b, "Type: %s\n", s.Type)
	fmt.Fprintf(&b, "Date: %s\n", s.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Time: %s\n", s.Time)
	return b.String()
}
