package jobs

import (
	"context"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/respond"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/jobs/mock.go -package=mocks

type dispatcher interface {
	Run(ctx context.Context) (model.DispatchSummary, error)
}

type trialReminder interface {
	Run(ctx context.Context) (model.TrialSummary, error)
}

type purger interface {
	Run(ctx context.Context) (model.PurgeSummary, error)
}

// Response is the body every job endpoint returns.
type Response struct {
	Success bool     `json:"success"`
	Results any      `json:"results,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Handler exposes the periodic jobs to an external scheduler.
type Handler struct {
	dispatcher dispatcher
	trial      trialReminder
	purger     purger
	timeout    time.Duration // bounds each run, kept below the dispatch claim TTL
}

func NewHandler(d dispatcher, t trialReminder, p purger, timeout time.Duration) *Handler {
	return &Handler{dispatcher: d, trial: t, purger: p, timeout: timeout}
}

func (h *Handler) runContext(c *ginext.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) ProcessNotifications(c *ginext.Context) {
	ctx, cancel := h.runContext(c)
	defer cancel()

	summary, err := h.dispatcher.Run(ctx)
	if err != nil {
		h.fail(c, "process-notifications", err)
		return
	}

	respond.JSON(c.Writer, http.StatusOK, Response{Success: true, Results: summary, Errors: summary.Errors})
}

func (h *Handler) TrialReminders(c *ginext.Context) {
	ctx, cancel := h.runContext(c)
	defer cancel()

	summary, err := h.trial.Run(ctx)
	if err != nil {
		h.fail(c, "trial-reminders", err)
		return
	}

	respond.JSON(c.Writer, http.StatusOK, Response{Success: true, Results: summary, Errors: summary.Errors})
}

func (h *Handler) Purge(c *ginext.Context) {
	ctx, cancel := h.runContext(c)
	defer cancel()

	summary, err := h.purger.Run(ctx)
	if err != nil {
		h.fail(c, "purge", err)
		return
	}

	respond.JSON(c.Writer, http.StatusOK, Response{Success: true, Results: summary})
}

func (h *Handler) fail(c *ginext.Context, job string, err error) {
	zlog.Logger.Error().Err(err).Str("job", job).Msg("job failed")
	respond.JSON(c.Writer, http.StatusInternalServerError, Response{Success: false, Error: err.Error()})
}
