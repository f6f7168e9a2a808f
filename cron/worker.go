package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"confcentral/config"
	"confcentral/models"
	"confcentral/services/announcement"
	"confcentral/services/notification"
	"confcentral/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Mailer delivers a single email. Delivery is best effort; the queue retries
// per its own policy and a final failure is only logged.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes the email to the log instead of delivering it. Stands in
// until an SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, body string) error {
	utils.GetLogger().Info("confirmation email",
		zap.String("from", config.AppConfig.EmailFrom),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}

// InitWorker runs the async worker in background: it consumes
// confirmation-email tasks and periodically refreshes the nearly-sold-out
// announcement.
func InitWorker(announcements announcement.AnnouncementService, mailer Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeConfirmationEmail, handleConfirmationEmail(mailer))

	go runAnnouncementScan(announcements)

	go func() {
		log.Println("[Worker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationEmail(mailer Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailHandler] Invalid payload: %v", err)
			return err
		}

		var subject, body string
		switch p.Type {
		case models.EmailTypeNewConference:
			subject = "You created a new Conference!"
			body = "Hi, you have created the following conference.\n" + p.Info
		case models.EmailTypeNewSession:
			subject = "You created a new Session!"
			body = "Hi, you have created the following session.\n" + p.Info
		default:
			log.Printf("[EmailHandler] Unknown email type: %s", p.Type)
			return nil
		}

		if err := mailer.Send(ctx, p.Email, subject, body); err != nil {
			log.Printf("[EmailHandler] Failed to send email to %s: %v", p.Email, err)
			return err
		}
		return nil
	}
}

// runAnnouncementScan periodically rebuilds the nearly-sold-out announcement.
// Replaces the cron-invoked refresh endpoint of earlier deployments.
func runAnnouncementScan(announcements announcement.AnnouncementService) {
	interval := time.Duration(config.AppConfig.AnnouncementScanMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		text, err := announcements.RefreshNearlySoldOut(ctx)
		cancel()
		if err != nil {
			utils.GetLogger().Warn("announcement scan failed", zap.Error(err))
			continue
		}
		if text != "" {
			utils.GetLogger().Info("announcement refreshed", zap.String("text", text))
		}
	}
}
