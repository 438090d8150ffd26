package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/dto"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/middlewares"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/respond"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notificationService interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error)
}

// Handler serves the caller's in-app notifications.
type Handler struct {
	service   notificationService
	validator *validator.Validate
}

func NewHandler(s notificationService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
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
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}
