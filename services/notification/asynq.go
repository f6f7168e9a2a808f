package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"confcentral/config"
	"confcentral/models"

	"github.com/hibiken/asynq"
)

// AsynqNotificationService enqueues notification tasks on the Redis-backed
// asynq queue.
type AsynqNotificationService struct {
	client *asynq.Client
}

// NewAsynqNotificationService creates the production enqueuer.
func NewAsynqNotificationService() *AsynqNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqNotificationService{client: client}
}

// EnqueueConfirmationEmail puts a confirmation-email task on the queue.
func (s *AsynqNotificationService) EnqueueConfirmationEmail(ctx context.Context, payload models.EmailPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}
	task := asynq.NewTask(TypeConfirmationEmail, data)
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation email: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqNotificationService) Close() error {
	return s.client.Close()
}
