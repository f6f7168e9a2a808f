// File: confcentral/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"confcentral/config"
	"confcentral/cron"
	"confcentral/database"
	conferenceRepo "confcentral/database/repository/conference"
	profileRepo "confcentral/database/repository/profile"
	registrationRepo "confcentral/database/repository/registration"
	sessionRepo "confcentral/database/repository/session"
	"confcentral/handlers"
	"confcentral/middleware"
	"confcentral/routes"
	"confcentral/services/announcement"
	"confcentral/services/conference"
	"confcentral/services/notification"
	"confcentral/services/profile"
	"confcentral/services/registration"
	"confcentral/services/session"
	"confcentral/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := profileRepo.NewMongoProfileRepo()
	confRepo := conferenceRepo.NewMongoConferenceRepo()
	sessRepo := sessionRepo.NewMongoSessionRepo()
	atomicRunner := registrationRepo.NewMongoRegistrationRepo()

	// services.
	notifier := notification.NewAsynqNotificationService()
	defer notifier.Close()

	announcementService := &announcement.DefaultAnnouncementService{
		Cache:          &announcement.RedisCache{Client: utils.GetCacheClient()},
		ConferenceRepo: confRepo,
		SessionRepo:    sessRepo,
	}

	profileService := &profile.DefaultProfileService{
		Repo: profRepo,
	}

	conferenceService := &conference.DefaultConferenceService{
		Repo:        confRepo,
		ProfileRepo: profRepo,
		Atomic:      atomicRunner,
		Notifier:    notifier,
	}

	sessionService := &session.DefaultSessionService{
		Repo:          sessRepo,
		Atomic:        atomicRunner,
		Notifier:      notifier,
		Announcements: announcementService,
	}

	registrationService := &registration.DefaultRegistrationService{
		Atomic:      atomicRunner,
		ProfileRepo: profRepo,
		SessionRepo: sessRepo,
	}

	// Background worker: confirmation emails + announcement scans.
	cron.InitWorker(announcementService, cron.LogMailer{})

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Profile:      handlers.NewProfileHandler(profileService),
		Conference:   handlers.NewConferenceHandler(conferenceService),
		Session:      handlers.NewSessionHandler(sessionService),
		Registration: handlers.NewRegistrationHandler(registrationService),
		Announcement: handlers.NewAnnouncementHandler(announcementService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
