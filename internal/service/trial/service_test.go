package trial

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/Nardo758/entity-guardian-pro-sub003/internal/mocks/service/trial"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MocksubscriberRepository, *mocks.Mockrenderer, *mocks.MockemailSender) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMocksubscriberRepository(ctrl)
	r := mocks.NewMockrenderer(ctrl)
	sender := mocks.NewMockemailSender(ctrl)

	s := NewService(repo, r, sender, 14)
	s.now = func() time.Time { return fixedNow }

	return s, repo, r, sender
}

func TestRun_WindowsFollowDaysUntilExpiry(t *testing.T) {
	s, repo, _, _ := newTestService(t)

	repo.EXPECT().
		ListTrialCandidates(gomock.Any(), model.TrialTierOneDay, fixedNow.Add(-14*day), fixedNow.Add(-13*day)).
		Return(nil, nil)
	repo.EXPECT().
		ListTrialCandidates(gomock.Any(), model.TrialTierThreeDays, fixedNow.Add(-13*day), fixedNow.Add(-11*day)).
		Return(nil, nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.TrialSummary{}, summary)
}

func TestRun_SendsAndCounts(t *testing.T) {
	s, repo, r, sender := newTestService(t)

	oneDay := model.Subscriber{ID: uuid.New(), Email: "a@example.com", TrialStart: fixedNow.Add(-13*day - time.Hour)}
	threeDay := model.Subscriber{ID: uuid.New(), Email: "b@example.com", TrialStart: fixedNow.Add(-12 * day)}

	repo.EXPECT().ListTrialCandidates(gomock.Any(), model.TrialTierOneDay, gomock.Any(), gomock.Any()).Return([]model.Subscriber{oneDay}, nil)
	repo.EXPECT().ListTrialCandidates(gomock.Any(), model.TrialTierThreeDays, gomock.Any(), gomock.Any()).Return([]model.Subscriber{threeDay}, nil)

	repo.EXPECT().ClaimReminder(gomock.Any(), oneDay.ID, model.TrialTierOneDay).Return(true, nil)
	repo.EXPECT().ClaimReminder(gomock.Any(), threeDay.ID, model.TrialTierThreeDays).Return(true, nil)

	r.EXPECT().TrialReminder(oneDay, model.TrialTierOneDay, oneDay.TrialStart.Add(14*day)).Return(model.EmailMessage{To: oneDay.Email}, nil)
	r.EXPECT().TrialReminder(threeDay, model.TrialTierThreeDays, threeDay.TrialStart.Add(14*day)).Return(model.EmailMessage{To: threeDay.Email}, nil)

	sender.EXPECT().Send(gomock.Any(), model.EmailMessage{To: oneDay.Email}).Return(nil)
	sender.EXPECT().Send(gomock.Any(), model.EmailMessage{To: threeDay.Email}).Return(nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.OneDaySent)
	assert.Equal(t, 1, summary.ThreeDaySent)
	assert.Empty(t, summary.Errors)
}

func TestRun_SendFailureReleasesFlag(t *testing.T) {
	s, repo, r, sender := newTestService(t)

	sub := model.Subscriber{ID: uuid.New(), Email: "a@example.com", TrialStart: fixedNow.Add(-12 * day)}

	repo.EXPECT().ListTrialCandidates(gomock.Any(), model.TrialTierOneDay, gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListTrialCandidates(gomock.Any(), model.TrialTierThreeDays, gomock.Any(), gomock.Any()).Return([]model.Subscriber{sub}, nil)
	repo.EXPECT().ClaimReminder(gomock.Any(), sub.ID, model.TrialTierThreeDays).Return(true, nil)
	r.EXPECT().TrialReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.EmailMessage{To: sub.Email}, nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("rate limited"))
	repo.EXPECT().ReleaseReminder(gomock.Any(), sub.ID, model.TrialTierThreeDays).Return(nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ThreeDaySent)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "rate limited")
}

func TestRun_AlreadyClaimedIsSkipped(t *testing.T) {
	s, repo, _, _ := newTestService(t)

	sub := model.Subscriber{ID: uuid.New(), Email: "a@example.com"}

	repo.EXPECT().ListTrialCandidates(gomock.Any(), model.TrialTierOneDay, gomock.Any(), gomock.Any()).Return([]model.Subscriber{sub}, nil)
	repo.EXPECT().ListTrialCandidates(gomock.Any(), model.TrialTierThreeDays, gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().ClaimReminder(gomock.Any(), sub.ID, model.TrialTierOneDay).Return(false, nil)

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.OneDaySent)
	assert.Empty(t, summary.Errors)
}

func TestRun_ListError(t *testing.T) {
	s, repo, _, _ := newTestService(t)

	repo.EXPECT().ListTrialCandidates(gomock.Any(), model.TrialTierOneDay, gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.Run(context.Background())
	assert.Error(t, err)
}
