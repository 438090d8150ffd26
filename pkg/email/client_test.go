package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "user", "pass", "alerts@entityguardian.test")

	msg := c.newMessage("dana@example.com", "Payment due", "<p>Pay &amp; relax</p>")

	assert.Equal(t, []string{"alerts@entityguardian.test"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"dana@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Payment due"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
}
