package notification

import (
	"context"

	"confcentral/models"
)

// TypeConfirmationEmail is the asynq task type for confirmation emails.
const TypeConfirmationEmail = "email:confirmation"

// NotificationService enqueues fire-and-forget notifications. The worker in
// cron consumes them; enqueue and delivery failures never affect the
// operation that triggered the notification.
type NotificationService interface {
	EnqueueConfirmationEmail(ctx context.Context, payload models.EmailPayload) error
}
