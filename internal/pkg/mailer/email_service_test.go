package mailer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

// messageBody renders the message and undoes the quoted-printable encoding so
// assertions can match on the original HTML.
func messageBody(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	body := strings.ReplaceAll(buf.String(), "=\r\n", "")
	return strings.ReplaceAll(body, "=3D", "=")
}

func TestSendReactivationLink(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewEmailServiceWithDialer(dialer, "no-reply@hsms.io", "https://app.hsms.io")

	err := svc.SendReactivationLink("asha@example.com", "Asha", "tok123")
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	m := dialer.sent[0]
	assert.Equal(t, []string{"asha@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"no-reply@hsms.io"}, m.GetHeader("From"))
	assert.Equal(t, []string{"Reactivate Your Account"}, m.GetHeader("Subject"))

	body := messageBody(t, m)
	assert.Contains(t, body, "https://app.hsms.io/reactivate-account?token=tok123")
}

func TestSendReactivationLinkDialFailure(t *testing.T) {
	dialer := &recordingDialer{err: errors.New("smtp down")}
	svc := NewEmailServiceWithDialer(dialer, "no-reply@hsms.io", "https://app.hsms.io")

	err := svc.SendReactivationLink("asha@example.com", "Asha", "tok123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asha@example.com")
}

func TestSendSuspensionNotice(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewEmailServiceWithDialer(dialer, "no-reply@hsms.io", "https://app.hsms.io")

	err := svc.SendSuspensionNotice("pro@example.com", "Ravi", "Repeated no-shows")
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	body := messageBody(t, dialer.sent[0])
	assert.Contains(t, body, "Repeated no-shows")
}

func TestSendSuspensionLifted(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewEmailServiceWithDialer(dialer, "no-reply@hsms.io", "https://app.hsms.io")

	err := svc.SendSuspensionLifted("pro@example.com", "Ravi")
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)
	assert.Equal(t, []string{"Your Account Suspension Has Been Lifted"}, dialer.sent[0].GetHeader("Subject"))
}
