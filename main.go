package main

import (
	"log"

	api "jobtrackr-backend/cmd/api"
	authdomain "jobtrackr-backend/internal/auth/domain"
	authRepo "jobtrackr-backend/internal/auth/repository"
	authUsecase "jobtrackr-backend/internal/auth/usecase"
	"jobtrackr-backend/internal/digest"
	jobdomain "jobtrackr-backend/internal/job/domain"
	jobRepo "jobtrackr-backend/internal/job/repository"
	jobUsecase "jobtrackr-backend/internal/job/usecase"
	"jobtrackr-backend/internal/reminder"
	resumedomain "jobtrackr-backend/internal/resume/domain"
	resumeRepo "jobtrackr-backend/internal/resume/repository"
	resumeUsecase "jobtrackr-backend/internal/resume/usecase"
	revisiondomain "jobtrackr-backend/internal/revision/domain"
	revisionRepo "jobtrackr-backend/internal/revision/repository"
	revisionUsecase "jobtrackr-backend/internal/revision/usecase"
	settingsdomain "jobtrackr-backend/internal/settings/domain"
	settingsRepo "jobtrackr-backend/internal/settings/repository"
	settingsUsecase "jobtrackr-backend/internal/settings/usecase"
	taskdomain "jobtrackr-backend/internal/task/domain"
	taskRepo "jobtrackr-backend/internal/task/repository"
	taskUsecase "jobtrackr-backend/internal/task/usecase"
	"jobtrackr-backend/pkg/config"
	"jobtrackr-backend/pkg/database"
	"jobtrackr-backend/pkg/fcm"
	"jobtrackr-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.FCMToken{},
		&jobdomain.JobApplication{},
		&taskdomain.Task{},
		&revisiondomain.Revision{},
		&resumedomain.Resume{},
		&settingsdomain.UserSettings{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	fcmTokenRepo := authRepo.NewFCMTokenRepository(db)
	jobRepository := jobRepo.NewGormJobRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	revisionRepository := revisionRepo.NewGormRevisionRepository(db)
	resumeRepository := resumeRepo.NewGormResumeRepository(db)
	settingsRepository := settingsRepo.NewGormSettingsRepository(db)

	// Initialize FCM client (optional, push notifications disabled without it)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
			fcmClient = nil
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, push notifications disabled")
	}

	clock := reminder.SystemClock{}
	notifier := reminder.NewFCMNotifier(fcmClient, fcmTokenRepo)
	reminderService := reminder.NewService(jobRepository, clock, notifier)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, fcmTokenRepo, cfg)
	jobUsecaseInstance := jobUsecase.NewJobUsecase(jobRepository)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)
	revisionUsecaseInstance := revisionUsecase.NewRevisionUsecase(revisionRepository)
	resumeUsecaseInstance := resumeUsecase.NewResumeUsecase(resumeRepository)
	settingsUsecaseInstance := settingsUsecase.NewSettingsUsecase(settingsRepository)

	// Start the daily digest scheduler when mail is configured
	if cfg.SMTPHost != "" {
		m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		scheduler := digest.NewScheduler(settingsRepository, userRepository, jobRepository, taskRepository, m, clock)
		if err := scheduler.Start(); err != nil {
			log.Printf("[WARN] Failed to start digest scheduler: %v", err)
		} else {
			defer scheduler.Stop()
		}
	} else {
		log.Println("[WARN] SMTP not configured, daily digest disabled")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		jobUsecaseInstance,
		taskUsecaseInstance,
		revisionUsecaseInstance,
		resumeUsecaseInstance,
		settingsUsecaseInstance,
		reminderService,
		clock,
		cfg,
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
