package scheduled

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/Nardo758/entity-guardian-pro-sub003/internal/mocks/service/scheduled"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/scheduled"
)

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func newTestService(t *testing.T) (*Service, *mocks.MockscheduledRepository, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockscheduledRepository(ctrl)
	c := mocks.NewMockcache(ctrl)

	return NewService(repo, c, 3), repo, c
}

func TestCreate_AppliesDefaults(t *testing.T) {
	s, repo, c := newTestService(t)
	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.ScheduledNotification) (uuid.UUID, error) {
			assert.Equal(t, 3, n.MaxRetries)
			assert.Equal(t, model.StatusPending, n.Status)
			assert.False(t, n.ScheduledFor.IsZero())
			return id, nil
		})
	c.EXPECT().SetWithRetry(gomock.Any(), strategy, model.StatusCacheKey(userID, id), "pending").Return(nil)

	got, err := s.Create(context.Background(), strategy, model.ScheduledNotification{UserID: userID, NotificationType: model.TypePaymentDue})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCreate_CacheFailureIgnored(t *testing.T) {
	s, repo, c := newTestService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	c.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := s.Create(context.Background(), strategy, model.ScheduledNotification{MaxRetries: 5})
	assert.NoError(t, err)
}

func TestGetStatus_CacheHit(t *testing.T) {
	s, _, c := newTestService(t)
	userID, id := uuid.New(), uuid.New()

	c.EXPECT().GetWithRetry(gomock.Any(), strategy, model.StatusCacheKey(userID, id)).Return("done", nil)

	status, err := s.GetStatus(context.Background(), strategy, userID, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, status)
}

func TestGetStatus_CacheMissFallsBackToDB(t *testing.T) {
	s, repo, c := newTestService(t)
	userID, id := uuid.New(), uuid.New()

	c.EXPECT().GetWithRetry(gomock.Any(), strategy, gomock.Any()).Return("", redis.Nil)
	repo.EXPECT().GetByID(gomock.Any(), id).Return(model.ScheduledNotification{ID: id, UserID: userID, Status: model.StatusFailed}, nil)
	c.EXPECT().FillWithRetry(gomock.Any(), strategy, model.StatusCacheKey(userID, id), "failed").Return(nil)

	status, err := s.GetStatus(context.Background(), strategy, userID, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, status)
}

func TestGet_OtherUsersRowIsNotFound(t *testing.T) {
	s, repo, _ := newTestService(t)
	id := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), id).Return(model.ScheduledNotification{ID: id, UserID: uuid.New()}, nil)

	_, err := s.Get(context.Background(), uuid.New(), id)
	assert.ErrorIs(t, err, scheduled.ErrScheduledNotFound)
}

func TestCancel(t *testing.T) {
	s, repo, c := newTestService(t)
	userID, id := uuid.New(), uuid.New()

	repo.EXPECT().Cancel(gomock.Any(), id, userID).Return(nil)
	c.EXPECT().SetWithRetry(gomock.Any(), strategy, model.StatusCacheKey(userID, id), "cancelled").Return(nil)

	assert.NoError(t, s.Cancel(context.Background(), strategy, userID, id))
}

func TestCancel_NotPending(t *testing.T) {
	s, repo, _ := newTestService(t)

	repo.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Return(scheduled.ErrNotCancellable)

	err := s.Cancel(context.Background(), strategy, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, scheduled.ErrNotCancellable)
}
