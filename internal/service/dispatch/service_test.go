package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/Nardo758/entity-guardian-pro-sub003/internal/mocks/service/dispatch"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/preference"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/scheduled"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/user"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type deps struct {
	scheduled   *mocks.MockscheduledRepository
	users       *mocks.MockuserRepository
	preferences *mocks.MockpreferenceRepository
	renderer    *mocks.Mockrenderer
	sender      *mocks.MockemailSender
	alerter     *mocks.Mockalerter
	cache       *mocks.MockstatusCache
}

var opts = Options{
	BatchSize: 100,
	ClaimTTL:  15 * time.Minute,
	Retry:     retry.Strategy{Attempts: 1, Delay: time.Millisecond},
}

func newTestService(t *testing.T) (*Service, deps) {
	ctrl := gomock.NewController(t)

	d := deps{
		scheduled:   mocks.NewMockscheduledRepository(ctrl),
		users:       mocks.NewMockuserRepository(ctrl),
		preferences: mocks.NewMockpreferenceRepository(ctrl),
		renderer:    mocks.NewMockrenderer(ctrl),
		sender:      mocks.NewMockemailSender(ctrl),
		alerter:     mocks.NewMockalerter(ctrl),
		cache:       mocks.NewMockstatusCache(ctrl),
	}

	s := NewService(d.scheduled, d.users, d.preferences, d.renderer, d.sender, d.alerter, d.cache, opts)
	s.now = func() time.Time { return fixedNow }

	return s, d
}

func dueRow() model.ScheduledNotification {
	return model.ScheduledNotification{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		NotificationType: model.TypePaymentDue,
		Title:            "Annual report fee",
		Message:          "Your Delaware annual report fee is due",
		ScheduledFor:     fixedNow.Add(-24 * time.Hour),
		Status:           model.StatusClaimed,
		RetryCount:       0,
		MaxRetries:       3,
		Metadata:         model.Metadata{"entity_name": "Acme LLC", "due_date": "2026-11-01", "amount": float64(300)},
	}
}

func expectClaim(d deps, rows ...model.ScheduledNotification) {
	d.scheduled.EXPECT().
		Claim(gomock.Any(), fixedNow, fixedNow.Add(-opts.ClaimTTL), opts.BatchSize).
		Return(rows, nil)
}

func expectLookups(d deps, row model.ScheduledNotification) {
	d.users.EXPECT().GetProfile(gomock.Any(), row.UserID).Return(model.Profile{ID: uuid.New(), FullName: "Dana Reyes"}, nil)
	d.users.EXPECT().GetAuthEmail(gomock.Any(), row.UserID).Return("dana@example.com", nil)
}

func TestRun_NoPreferenceRowUsesDefaults(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()
	notificationID := uuid.New()

	expectClaim(d, row)
	expectLookups(d, row)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), row.UserID).Return(model.NotificationPreference{}, preference.ErrPreferenceNotFound)

	d.scheduled.EXPECT().
		Complete(gomock.Any(), row.ID, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, n model.Notification, _ time.Time) (uuid.UUID, error) {
			assert.Equal(t, model.DeliveryBoth, n.NotificationType)
			assert.Equal(t, row.UserID, n.UserID)
			assert.Equal(t, row.NotificationType, n.Type)
			assert.Equal(t, row.Title, n.Title)
			return notificationID, nil
		})

	d.renderer.EXPECT().
		Notification(gomock.Any()).
		DoAndReturn(func(data model.NotificationEmail) (model.EmailMessage, error) {
			assert.Equal(t, notificationID, data.NotificationID)
			assert.Equal(t, "dana@example.com", data.To)
			assert.Equal(t, "Dana Reyes", data.RecipientName)
			assert.Equal(t, "Acme LLC", data.EntityName)
			assert.Equal(t, "2026-11-01", data.DueDate)
			assert.Equal(t, "300", data.Amount)
			return model.EmailMessage{NotificationID: notificationID, To: data.To, Subject: "s", HTML: "h"}, nil
		})
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	d.cache.EXPECT().SetWithRetry(gomock.Any(), opts.Retry, model.StatusCacheKey(row.UserID, row.ID), "done").Return(nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Errored)
	assert.Equal(t, 1, summary.Total)
}

func TestRun_EmailFailureStillProcessed(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()

	expectClaim(d, row)
	expectLookups(d, row)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), row.UserID).Return(model.NotificationPreference{}, preference.ErrPreferenceNotFound)
	d.scheduled.EXPECT().Complete(gomock.Any(), row.ID, gomock.Any(), fixedNow).Return(uuid.New(), nil)
	d.renderer.EXPECT().Notification(gomock.Any()).Return(model.EmailMessage{To: "dana@example.com"}, nil)
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp: 421 service not available"))
	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "done").Return(nil)

	// Fail must not be called.
	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Errored)
}

func TestRun_EmailDisabledCreatesInAppOnly(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()

	expectClaim(d, row)
	expectLookups(d, row)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), row.UserID).Return(model.NotificationPreference{
		UserID:             row.UserID,
		EmailNotifications: false,
		NotificationTypes:  []string{model.TypePaymentDue},
	}, nil)
	d.scheduled.EXPECT().
		Complete(gomock.Any(), row.ID, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, n model.Notification, _ time.Time) (uuid.UUID, error) {
			assert.Equal(t, model.DeliveryInApp, n.NotificationType)
			return uuid.New(), nil
		})
	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "done").Return(nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
}

func TestRun_UnsubscribedTypeSkipsEmail(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()

	expectClaim(d, row)
	expectLookups(d, row)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), row.UserID).Return(model.NotificationPreference{
		UserID:             row.UserID,
		EmailNotifications: true,
		NotificationTypes:  []string{model.TypeRenewalReminder},
	}, nil)
	d.scheduled.EXPECT().
		Complete(gomock.Any(), row.ID, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, n model.Notification, _ time.Time) (uuid.UUID, error) {
			assert.Equal(t, model.DeliveryBoth, n.NotificationType)
			return uuid.New(), nil
		})
	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "done").Return(nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
}

func TestRun_LookupFailureIncrementsRetry(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()

	expectClaim(d, row)
	d.users.EXPECT().GetProfile(gomock.Any(), row.UserID).Return(model.Profile{}, user.ErrProfileNotFound)
	d.scheduled.EXPECT().
		Fail(gomock.Any(), row.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, msg string) (model.RetryState, error) {
			assert.Contains(t, msg, "profile not found")
			return model.RetryState{RetryCount: 1, MaxRetries: 3, Status: model.StatusPending}, nil
		})
	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "pending").Return(nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 1, summary.Errored)
	assert.Equal(t, 0, summary.Exhausted)
	require.Len(t, summary.Errors, 1)
}

func TestRun_CompleteFailureIncrementsRetry(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()

	expectClaim(d, row)
	expectLookups(d, row)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), row.UserID).Return(model.NotificationPreference{}, preference.ErrPreferenceNotFound)
	d.scheduled.EXPECT().Complete(gomock.Any(), row.ID, gomock.Any(), fixedNow).Return(uuid.Nil, errors.New("insert notification: deadlock"))
	d.scheduled.EXPECT().Fail(gomock.Any(), row.ID, gomock.Any()).Return(model.RetryState{RetryCount: 1, MaxRetries: 3, Status: model.StatusPending}, nil)
	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "pending").Return(nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Errored)
}

func TestRun_ExhaustionAlerts(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()
	row.RetryCount = 2

	expectClaim(d, row)
	d.users.EXPECT().GetProfile(gomock.Any(), row.UserID).Return(model.Profile{}, nil)
	d.users.EXPECT().GetAuthEmail(gomock.Any(), row.UserID).Return("", user.ErrUserNotFound)
	d.scheduled.EXPECT().Fail(gomock.Any(), row.ID, gomock.Any()).Return(model.RetryState{RetryCount: 3, MaxRetries: 3, Status: model.StatusFailed}, nil)
	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "failed").Return(nil)
	d.alerter.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Errored)
	assert.Equal(t, 1, summary.Exhausted)
}

func TestRun_RowIsolation(t *testing.T) {
	s, d := newTestService(t)
	bad := dueRow()
	good := dueRow()

	expectClaim(d, bad, good)

	d.users.EXPECT().GetProfile(gomock.Any(), bad.UserID).Return(model.Profile{}, errors.New("connection reset"))
	d.scheduled.EXPECT().Fail(gomock.Any(), bad.ID, gomock.Any()).Return(model.RetryState{RetryCount: 1, MaxRetries: 3, Status: model.StatusPending}, nil)

	expectLookups(d, good)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), good.UserID).Return(model.DefaultPreference(good.UserID), nil)
	d.scheduled.EXPECT().Complete(gomock.Any(), good.ID, gomock.Any(), fixedNow).Return(uuid.New(), nil)
	d.renderer.EXPECT().Notification(gomock.Any()).Return(model.EmailMessage{}, nil)
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Errored)
}

func TestRun_NothingDue(t *testing.T) {
	s, d := newTestService(t)

	expectClaim(d)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DispatchSummary{}, summary)
}

func TestRun_SecondRunProcessesNothing(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()

	gomock.InOrder(
		d.scheduled.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.ScheduledNotification{row}, nil),
		d.scheduled.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil),
	)
	expectLookups(d, row)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), row.UserID).Return(model.NotificationPreference{}, preference.ErrPreferenceNotFound)
	d.scheduled.EXPECT().Complete(gomock.Any(), row.ID, gomock.Any(), fixedNow).Return(uuid.New(), nil)
	d.renderer.EXPECT().Notification(gomock.Any()).Return(model.EmailMessage{}, nil)
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	d.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "done").Return(nil)

	first, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Processed)

	second, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 0, second.Total)
}

func TestRun_ClaimError(t *testing.T) {
	s, d := newTestService(t)

	d.scheduled.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.Run(context.Background())
	assert.Error(t, err)
}

func TestRun_LostClaimIsNotCountedAsExhausted(t *testing.T) {
	s, d := newTestService(t)
	row := dueRow()

	expectClaim(d, row)
	expectLookups(d, row)
	d.preferences.EXPECT().GetByUserID(gomock.Any(), row.UserID).Return(model.DefaultPreference(row.UserID), nil)
	d.scheduled.EXPECT().Complete(gomock.Any(), row.ID, gomock.Any(), fixedNow).Return(uuid.Nil, scheduled.ErrScheduledNotFound)
	d.scheduled.EXPECT().Fail(gomock.Any(), row.ID, gomock.Any()).Return(model.RetryState{}, scheduled.ErrScheduledNotFound)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Errored)
	assert.Equal(t, 0, summary.Exhausted)
}
