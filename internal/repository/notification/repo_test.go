package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestMarkEmailSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`SET email_sent = true`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkEmailSent(context.Background(), id))

	mock.ExpectExec(regexp.QuoteMeta(`SET email_sent = true`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.MarkEmailSent(context.Background(), id), ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "type", "title", "message", "notification_type", "read", "email_sent", "metadata", "created_at",
	}).
		AddRow(uuid.New().String(), userID.String(), "payment_due", "Due", "Pay", "both", false, true, []byte(`{"amount":"99"}`), now).
		AddRow(uuid.New().String(), userID.String(), "compliance_check", "Check", "Review", "in_app", true, false, nil, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM notifications WHERE user_id = $1`)).
		WithArgs(userID, 20, 0).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, model.DeliveryBoth, list[0].NotificationType)
	assert.Equal(t, "99", list[0].Metadata.String("amount"))
	assert.Equal(t, model.DeliveryInApp, list[1].NotificationType)
	assert.NotNil(t, list[1].Metadata)
	assert.NoError(t, mock.ExpectationsWereMet())
}
