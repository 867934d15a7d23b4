package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMailer_DisabledWithoutHost(t *testing.T) {
	assert.Nil(t, NewMailer(MailConfig{}))
	assert.NotNil(t, NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "587"}))
}

func TestSendMail_InvalidPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "not-a-port"})
	err := m.SendMail("kitchen@example.com", "subject", "body")
	assert.Error(t, err)
}
