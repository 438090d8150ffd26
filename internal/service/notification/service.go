package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error)
}

// Service exposes the in-app notifications created by the dispatcher.
type Service struct {
	repo notificationRepository
}

func NewService(repo notificationRepository) *Service {
	return &Service{repo: repo}
}

// List returns the user's in-app notifications, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return list, nil
}
