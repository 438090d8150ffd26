package mailer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

func TestNotification_EscapesUserInput(t *testing.T) {
	r, err := NewRenderer("https://app.entityguardian.test")
	require.NoError(t, err)

	id := uuid.New()
	msg, err := r.Notification(model.NotificationEmail{
		NotificationID: id,
		To:             "dana@example.com",
		RecipientName:  "Dana",
		Title:          "Annual report",
		Message:        "Due soon",
		Type:           model.TypePaymentDue,
		EntityName:     `<script>alert("x")</script> Acme`,
		Amount:         "300",
	})
	require.NoError(t, err)

	assert.Equal(t, id, msg.NotificationID)
	assert.Equal(t, "dana@example.com", msg.To)
	assert.Equal(t, "Payment Due: Annual report", msg.Subject)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "$300")
	assert.NotContains(t, msg.HTML, "Due date:")
}

func TestNotification_UnknownTypeAndName(t *testing.T) {
	r, err := NewRenderer("https://app.entityguardian.test")
	require.NoError(t, err)

	msg, err := r.Notification(model.NotificationEmail{Title: "Hello", Type: "custom"})
	require.NoError(t, err)

	assert.Equal(t, "Notification: Hello", msg.Subject)
	assert.Contains(t, msg.HTML, "Hello there,")
}

func TestTrialReminder(t *testing.T) {
	r, err := NewRenderer("https://app.entityguardian.test")
	require.NoError(t, err)

	sub := model.Subscriber{ID: uuid.New(), Email: "a@example.com", FullName: "Sam"}
	end := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	msg, err := r.TrialReminder(sub, model.TrialTierThreeDays, end)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, msg.NotificationID)
	assert.Equal(t, "a@example.com", msg.To)
	assert.Equal(t, "Your Entity Guardian trial ends in 3 days", msg.Subject)
	assert.Contains(t, msg.HTML, "October 18, 2026")
	assert.Contains(t, msg.HTML, "3 days")
	assert.Contains(t, msg.HTML, "https://app.entityguardian.test/billing")

	msg, err = r.TrialReminder(sub, model.TrialTierOneDay, end)
	require.NoError(t, err)
	assert.Equal(t, "Your Entity Guardian trial ends tomorrow", msg.Subject)
	assert.Contains(t, msg.HTML, "1 day<")
}
