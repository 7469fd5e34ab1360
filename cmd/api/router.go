package api

import (
	"net/http"

	"jobtrackr-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Me)
			auth.PUT("/profile", delivery.AuthMiddleware(h.authUsecase), authHandler.UpdateProfile)
			auth.PUT("/password", delivery.AuthMiddleware(h.authUsecase), authHandler.ChangePassword)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			fcm.POST("/register", authHandler.RegisterFCMToken)
			fcm.DELETE("/:token", authHandler.UnregisterFCMToken)
		}

		// Dashboard (protected)
		api.GET("/dashboard", delivery.AuthMiddleware(h.authUsecase), h.dashboardHandler.GetDashboard)

		// Job application routes (protected)
		jobs := api.Group("/jobs")
		jobs.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			jobs.GET("", h.jobHandler.GetJobs)
			jobs.POST("", h.jobHandler.CreateJob)
			jobs.PUT("/:id", h.jobHandler.UpdateJob)
			jobs.DELETE("/:id", h.jobHandler.DeleteJob)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.PUT("/:id", h.taskHandler.UpdateTask)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
			tasks.POST("/:id/toggle", h.taskHandler.ToggleComplete)
			tasks.POST("/:id/confirm", h.taskHandler.ConfirmCompletion)
			tasks.POST("/:id/cancel", h.taskHandler.CancelCompletion)
			tasks.POST("/escalate", h.taskHandler.Escalate)
		}

		// Follow-up reminder routes (protected)
		reminders := api.Group("/reminders")
		reminders.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			reminders.GET("", h.reminderHandler.GetReminders)
			reminders.POST("/:id/complete", h.reminderHandler.CompleteReminder)
			reminders.POST("/:id/snooze", h.reminderHandler.SnoozeReminder)
		}

		// Revision routes (protected)
		revisions := api.Group("/revisions")
		revisions.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			revisions.GET("", h.revisionHandler.GetRevisions)
			revisions.POST("", h.revisionHandler.CreateRevision)
			revisions.PUT("/:id", h.revisionHandler.UpdateRevision)
			revisions.DELETE("/:id", h.revisionHandler.DeleteRevision)
			revisions.POST("/:id/revised", h.revisionHandler.MarkRevised)
		}

		// Resume routes (protected)
		resumes := api.Group("/resumes")
		resumes.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			resumes.GET("", h.resumeHandler.GetResumes)
			resumes.POST("", h.resumeHandler.CreateResume)
			resumes.PUT("/:id", h.resumeHandler.UpdateResume)
			resumes.DELETE("/:id", h.resumeHandler.DeleteResume)
			resumes.POST("/:id/usage", h.resumeHandler.RecordUsage)
		}

		// Settings routes (protected)
		settings := api.Group("/settings")
		settings.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			settings.GET("", h.settingsHandler.GetSettings)
			settings.PUT("", h.settingsHandler.UpdateSettings)
		}
	}
}
