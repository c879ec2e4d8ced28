package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"hsms-be/internal/pkg/logger"
	"hsms-be/internal/pkg/mailer"
	"hsms-be/pkg/events"
)

type IMailDispatcherService interface {
	Consume(ctx context.Context) error
}

// mailDispatcherService drains the event channel and turns the mail-bearing
// event types into outbound messages. Email failures are logged and the
// message is Nacked for redelivery; unknown event types are Acked and skipped.
type mailDispatcherService struct {
	pubSub       *gochannel.GoChannel
	topic        string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewMailDispatcherService(
	topic string,
	pubSub *gochannel.GoChannel,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IMailDispatcherService {
	return &mailDispatcherService{
		pubSub:       pubSub,
		topic:        topic,
		emailService: emailService,
		log:          log,
	}
}

func (s *mailDispatcherService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *mailDispatcherService) processMessage(msg *message.Message) {
	var env events.Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		s.log.Error("mail_dispatcher", "Failed to unmarshal event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become valid, drop them
		return
	}

	var sendErr error
	switch env.Type {
	case events.TypeCustomerDeactivated, events.TypeProviderDeactivated:
		sendErr = s.emailService.SendReactivationLink(
			stringField(env.Data, "email"),
			stringField(env.Data, "name"),
			stringField(env.Data, "token"),
		)
	case events.TypeProviderSuspended:
		sendErr = s.emailService.SendSuspensionNotice(
			stringField(env.Data, "email"),
			stringField(env.Data, "name"),
			stringField(env.Data, "reason"),
		)
	case events.TypeProviderUnsuspended:
		sendErr = s.emailService.SendSuspensionLifted(
			stringField(env.Data, "email"),
			stringField(env.Data, "name"),
		)
	default:
		// Lifecycle events carry no mail work.
		msg.Ack()
		return
	}

	if sendErr != nil {
		s.log.Error("mail_dispatcher", "Failed to send email", map[string]interface{}{
			"event": env.Type,
			"error": sendErr.Error(),
		})
		msg.Nack()
		return
	}

	s.log.Info("mail_dispatcher", "Email dispatched", map[string]interface{}{
		"event": env.Type,
	})
	msg.Ack()
}

func stringField(data map[string]interface{}, key string) string {
	v, _ := data[key].(string)
	return v
}
