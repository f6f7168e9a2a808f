package models

import (
	"fmt"
	"strings"
	"time"

	"confcentral/utils"
)

// Conference is owned by the organizing profile. Identity and organizer are
// immutable after creation; only the seat count changes afterwards.
type Conference struct {
	ID              string     `bson:"id" json:"conferenceKey"`
	OrganizerUserID string     `bson:"organizerUserId" json:"organizerUserId"`
	Name            string     `bson:"name" json:"name"`
	Description     string     `bson:"description,omitempty" json:"description,omitempty"`
	Topics          []string   `bson:"topics,omitempty" json:"topics,omitempty"`
	City            string     `bson:"city,omitempty" json:"city,omitempty"`
	StartDate       *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`

	// Month is derived from StartDate: 1-12, or 0 when there is no start
	// date. Stored so queries can filter on it.
	Month int `bson:"month" json:"month"`

	MaxAttendees   int `bson:"maxAttendees" json:"maxAttendees"`
	SeatsAvailable int `bson:"seatsAvailable" json:"seatsAvailable"`
}

// NewConference builds a conference from the client form. The name is
// required; dates may be nil. SeatsAvailable starts equal to MaxAttendees.
func NewConference(id, organizerUserID string, form *ConferenceForm) (*Conference, error) {
	if form == nil {
		return nil, utils.ValidationErr("conference form is required")
	}
	if form.Name == "" {
		return nil, utils.ValidationErr("conference name is required")
	}
	if form.MaxAttendees < 0 {
		return nil, utils.ValidationErr("maxAttendees must not be negative")
	}

	c := &Conference{
		ID:              id,
		OrganizerUserID: organizerUserID,
		Name:            form.Name,
		Description:     form.Description,
		Topics:          append([]string(nil), form.Topics...),
		City:            form.City,
		MaxAttendees:    form.MaxAttendees,
		SeatsAvailable:  form.MaxAttendees,
	}
	if form.StartDate != nil {
		start := *form.StartDate
		c.StartDate = &start
		c.Month = int(start.Month())
	}
	if form.EndDate != nil {
		end := *form.EndDate
		c.EndDate = &end
	}
	return c, nil
}

// TopicsList returns a snapshot of the topics.
func (c *Conference) TopicsList() []string {
	return append([]string(nil), c.Topics...)
}

// Start returns a copy of the start date, nil when unset.
func (c *Conference) Start() *time.Time {
	if c.StartDate == nil {
		return nil
	}
	start := *c.StartDate
	return &start
}

// End returns a copy of the end date, nil when unset.
func (c *Conference) End() *time.Time {
	if c.EndDate == nil {
		return nil
	}
	end := *c.EndDate
	return &end
}

// Summary renders the conference for confirmation emails.
func (c *Conference) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	if c.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", c.Description)
	}
	if c.City != "" {
		fmt.Fprintf(&b, "City: %s\n", c.City)
	}
	if len(c.Topics) > 0 {
		fmt.Fprintf(&b, "Topics: %s\n", strings.Join(c.Topics, ", "))
	}
	if c.StartDate != nil {
		fmt.Fprintf(&b, "Start date: %s\n", c.StartDate.Format("2006-01-02"))
	}
	if c.EndDate != nil {
		fmt.Fprintf(&b, "End date: %s\n", c.EndDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Max attendees: %d\n", c.MaxAttendees)
	return b.String()
}

// BookSeats removes n seats from the available pool. Fails without mutating
// when fewer than n seats remain.
func (c *Conference) BookSeats(n int) error {
	if n > c.SeatsAvailable {
		return utils.CapacityErr("there are only %d seats available", c.SeatsAvailable)
	}
	c.SeatsAvailable -= n
	return nil
}

// GiveBackSeats returns n seats to the available pool. Fails without mutating
// when the result would exceed MaxAttendees.
func (c *Conference) GiveBackSeats(n int) error {
	if c.SeatsAvailable+n > c.MaxAttendees {
		return utils.CapacityErr("the number of seats cannot exceed the capacity of %d", c.MaxAttendees)
	}
	c.SeatsAvailable += n
	return nil
}
