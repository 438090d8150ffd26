package scheduled

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/dto"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/middlewares"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/respond"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/config"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/scheduled"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/scheduled/mock.go -package=mocks

type scheduledService interface {
	Create(ctx context.Context, strategy retry.Strategy, n model.ScheduledNotification) (uuid.UUID, error)
	Get(ctx context.Context, userID, id uuid.UUID) (model.ScheduledNotification, error)
	GetStatus(ctx context.Context, strategy retry.Strategy, userID, id uuid.UUID) (model.ScheduleStatus, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.ScheduledNotification, error)
	Cancel(ctx context.Context, strategy retry.Strategy, userID, id uuid.UUID) error
}

type Handler struct {
	service   scheduledService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s scheduledService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

func (h *Handler) Create(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	var req dto.CreateScheduledRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	n := model.ScheduledNotification{
		UserID:           userID,
		EntityID:         req.EntityID,
		NotificationType: req.NotificationType,
		Title:            req.Title,
		Message:          req.Message,
		ScheduledFor:     req.ScheduledFor.UTC(),
		MaxRetries:       req.MaxRetries,
		Metadata:         model.Metadata(req.Metadata),
	}

	id, err := h.service.Create(c.Request.Context(), h.cfg.Retry, n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create scheduled notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) List(c *ginext.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid query"))
		return
	}

	if err := h.validator.Struct(q); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	limit, offset := q.Normalize()

	list, err := h.service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list scheduled notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) Get(c *ginext.Context) {
	userID, id, ok := h.ids(c)
	if !ok {
		return
	}

	n, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.serviceError(c, id, err, "failed to get scheduled notification")
		return
	}

	respond.OK(c.Writer, n)
}

func (h *Handler) GetStatus(c *ginext.Context) {
	userID, id, ok := h.ids(c)
	if !ok {
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), h.cfg.Retry, userID, id)
	if err != nil {
		h.serviceError(c, id, err, "failed to get scheduled notification status")
		return
	}

	respond.OK(c.Writer, status)
}

func (h *Handler) Cancel(c *ginext.Context) {
	userID, id, ok := h.ids(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), h.cfg.Retry, userID, id); err != nil {
		h.serviceError(c, id, err, "failed to cancel scheduled notification")
		return
	}

	respond.OK(c.Writer, "scheduled notification cancelled")
}

// ids extracts the caller and the :id path parameter, writing the error response itself.
func (h *Handler) ids(c *ginext.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return uuid.Nil, uuid.Nil, false
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, uuid.Nil, false
	}

	if id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, uuid.Nil, false
	}

	return userID, id, true
}

func (h *Handler) serviceError(c *ginext.Context, id uuid.UUID, err error, msg string) {
	switch {
	case errors.Is(err, scheduled.ErrScheduledNotFound):
		zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("scheduled notification not found")
		respond.Fail(c.Writer, http.StatusNotFound, scheduled.ErrScheduledNotFound)
	case errors.Is(err, scheduled.ErrNotCancellable):
		respond.Fail(c.Writer, http.StatusConflict, scheduled.ErrNotCancellable)
	default:
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
