package service

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/pkg/events"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type sentMail struct {
	kind  string
	email string
	name  string
	extra string
}

type fakeEmailService struct {
	calls chan sentMail
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{calls: make(chan sentMail, 8)}
}

func (f *fakeEmailService) SendReactivationLink(toEmail, name, token string) error {
	f.calls <- sentMail{kind: "reactivation", email: toEmail, name: name, extra: token}
	return nil
}

func (f *fakeEmailService) SendSuspensionNotice(toEmail, name, reason string) error {
	f.calls <- sentMail{kind: "suspension", email: toEmail, name: name, extra: reason}
	return nil
}

func (f *fakeEmailService) SendSuspensionLifted(toEmail, name string) error {
	f.calls <- sentMail{kind: "unsuspension", email: toEmail, name: name}
	return nil
}

func (f *fakeEmailService) waitForMail(t *testing.T) sentMail {
	t.Helper()
	select {
	case m := <-f.calls:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatched mail")
		return sentMail{}
	}
}

func TestMailDispatcherSendsReactivationMail(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	emails := newFakeEmailService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := NewMailDispatcherService("mail-test", pubSub, emails, nopLogger{})
	require.NoError(t, dispatcher.Consume(ctx))

	publisher := NewPublisherService("mail-test", pubSub)
	evt := events.NewBaseEvent(events.TypeCustomerDeactivated, map[string]interface{}{
		"email": "asha@example.com",
		"name":  "Asha",
		"token": "tok123",
	})
	require.NoError(t, publisher.Publish(ctx, evt))

	mail := emails.waitForMail(t)
	assert.Equal(t, "reactivation", mail.kind)
	assert.Equal(t, "asha@example.com", mail.email)
	assert.Equal(t, "Asha", mail.name)
	assert.Equal(t, "tok123", mail.extra)
}

func TestMailDispatcherSendsSuspensionMail(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	emails := newFakeEmailService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := NewMailDispatcherService("mail-test", pubSub, emails, nopLogger{})
	require.NoError(t, dispatcher.Consume(ctx))

	publisher := NewPublisherService("mail-test", pubSub)

	require.NoError(t, publisher.Publish(ctx, events.NewBaseEvent(events.TypeProviderSuspended, map[string]interface{}{
		"email":  "ravi@example.com",
		"name":   "Ravi",
		"reason": "Repeated no-shows",
	})))
	mail := emails.waitForMail(t)
	assert.Equal(t, "suspension", mail.kind)
	assert.Equal(t, "Repeated no-shows", mail.extra)

	require.NoError(t, publisher.Publish(ctx, events.NewBaseEvent(events.TypeProviderUnsuspended, map[string]interface{}{
		"email": "ravi@example.com",
		"name":  "Ravi",
	})))
	mail = emails.waitForMail(t)
	assert.Equal(t, "unsuspension", mail.kind)
}

func TestMailDispatcherSkipsLifecycleEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	emails := newFakeEmailService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := NewMailDispatcherService("mail-test", pubSub, emails, nopLogger{})
	require.NoError(t, dispatcher.Consume(ctx))

	publisher := NewPublisherService("mail-test", pubSub)
	require.NoError(t, publisher.Publish(ctx, events.NewBaseEvent(events.TypeRequestCreated, map[string]interface{}{
		"request_id": "abc",
	})))

	select {
	case m := <-emails.calls:
		t.Fatalf("unexpected mail dispatched: %+v", m)
	case <-time.After(200 * time.Millisecond):
	}
}
