package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vistaar/vistaar/internal/store"
)

func TestContactBodyStripsMarkup(t *testing.T) {
	body := ContactBody(store.Contact{
		Name:    "Eve <script>alert(1)</script>",
		Email:   "eve@example.com",
		Message: "line one\n<b>line two</b>",
	})

	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<b>")
	assert.Contains(t, body, "<strong>Name:</strong> Eve")
	assert.Contains(t, body, "<strong>Phone:</strong> N/A")
	assert.Contains(t, body, "line one<br>line two")
}

func TestContactSubjectIsSingleLine(t *testing.T) {
	s := ContactSubject(store.Contact{Name: "Ann\r\nBcc: x@example.com"})
	assert.Equal(t, "New Contact Form Submission from Ann Bcc: x@example.com", s)
}

func TestSMTPConfigEnabled(t *testing.T) {
	assert.False(t, SMTPConfig{Host: "smtp.example.com"}.Enabled())
	assert.True(t, SMTPConfig{Username: "u", Password: "p"}.Enabled())
	assert.NoError(t, Nop{}.NotifyContact(context.Background(), store.Contact{}))
}
