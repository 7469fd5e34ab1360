package api

import (
	"log"

	authUsecase "jobtrackr-backend/internal/auth/usecase"
	jobDelivery "jobtrackr-backend/internal/job/delivery"
	jobUsecasePkg "jobtrackr-backend/internal/job/usecase"
	"jobtrackr-backend/internal/reminder"
	reminderDelivery "jobtrackr-backend/internal/reminder/delivery"
	resumeDelivery "jobtrackr-backend/internal/resume/delivery"
	resumeUsecasePkg "jobtrackr-backend/internal/resume/usecase"
	revisionDelivery "jobtrackr-backend/internal/revision/delivery"
	revisionUsecasePkg "jobtrackr-backend/internal/revision/usecase"
	settingsDelivery "jobtrackr-backend/internal/settings/delivery"
	settingsUsecasePkg "jobtrackr-backend/internal/settings/usecase"
	taskDelivery "jobtrackr-backend/internal/task/delivery"
	taskUsecasePkg "jobtrackr-backend/internal/task/usecase"
	"jobtrackr-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	config      *config.Config

	jobHandler       *jobDelivery.JobHandler
	taskHandler      *taskDelivery.TaskHandler
	reminderHandler  *reminderDelivery.ReminderHandler
	revisionHandler  *revisionDelivery.RevisionHandler
	resumeHandler    *resumeDelivery.ResumeHandler
	settingsHandler  *settingsDelivery.SettingsHandler
	dashboardHandler *DashboardHandler
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	jobUc jobUsecasePkg.JobUsecase,
	taskUc taskUsecasePkg.TaskUsecase,
	revisionUc revisionUsecasePkg.RevisionUsecase,
	resumeUc resumeUsecasePkg.ResumeUsecase,
	settingsUc settingsUsecasePkg.SettingsUsecase,
	reminderSv *reminder.Service,
	clock reminder.Clock,
	cfg *config.Config,
) *Handler {
	log.Println("HTTP handlers initialized")

	return &Handler{
		authUsecase:      authUc,
		config:           cfg,
		jobHandler:       jobDelivery.NewJobHandler(jobUc),
		taskHandler:      taskDelivery.NewTaskHandler(taskUc),
		reminderHandler:  reminderDelivery.NewReminderHandler(reminderSv),
		revisionHandler:  revisionDelivery.NewRevisionHandler(revisionUc),
		resumeHandler:    resumeDelivery.NewResumeHandler(resumeUc),
		settingsHandler:  settingsDelivery.NewSettingsHandler(settingsUc),
		dashboardHandler: NewDashboardHandler(jobUc, taskUc, reminderSv, clock),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
