package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/handlers/jobs"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/handlers/notification"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/handlers/scheduled"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/middlewares"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/respond"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/config"
)

func New(
	jobsHandler *jobs.Handler,
	scheduledHandler *scheduled.Handler,
	notificationHandler *notification.Handler,
	auth config.Auth,
) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, http.StatusText(http.StatusOK))
	})

	api := e.Group("/api")

	jobsGroup := api.Group("/jobs", middlewares.CronAuth(auth.CronSecret))
	jobsGroup.POST("/process-notifications", jobsHandler.ProcessNotifications)
	jobsGroup.POST("/trial-reminders", jobsHandler.TrialReminders)
	jobsGroup.POST("/purge", jobsHandler.Purge)

	user := api.Group("", middlewares.JWTAuth(auth.JWTSecret))

	user.POST("/scheduled", scheduledHandler.Create)
	user.GET("/scheduled", scheduledHandler.List)
	user.GET("/scheduled/:id", scheduledHandler.Get)
	user.GET("/scheduled/:id/status", scheduledHandler.GetStatus)
	user.DELETE("/scheduled/:id", scheduledHandler.Cancel)

	user.GET("/notifications", notificationHandler.List)

	return e
}
