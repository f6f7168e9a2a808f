package models

// Email types carried on confirmation-email tasks.
const (
	EmailTypeNewConference = "new_conference"
	EmailTypeNewSession    = "new_session"
)

// EmailPayload is the task payload for a confirmation email. Delivery is
// fire-and-forget: a failed send never rolls back the operation that
// enqueued it.
type EmailPayload struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	Info  string `json:"info"`
}
