package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/transpoease/booking-system/internal/api/metrics"
	"github.com/transpoease/booking-system/internal/core/ports"
)

// ContactService queues contact-form messages for SMTP delivery to the
// support inbox. Delivery itself happens asynchronously in the mail
// dispatcher workers.
type ContactService struct {
	mail   ports.MailEnqueuer
	inbox  string
	logger zerolog.Logger
}

func NewContactService(mail ports.MailEnqueuer, inbox string, logger zerolog.Logger) *ContactService {
	return &ContactService{mail: mail, inbox: inbox, logger: logger}
}

// Submit queues a contact message and returns its generated id. Field
// validation happens at the transport layer; the message is accepted as-is.
func (s *ContactService) Submit(ctx context.Context, input ports.ContactInput) (string, error) {
	id := uuid.NewString()

	s.mail.Enqueue(ports.OutboundEmail{
		To:      s.inbox,
		ReplyTo: input.Email,
		Subject: fmt.Sprintf("[contact:%s] %s", id, input.Subject),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", input.Name, input.Email, input.Message),
	})

	metrics.ContactMessagesTotal.Inc()
	s.logger.Info().
		Str("message_id", id).
		Str("from", input.Email).
		Msg("contact message queued")

	return id, nil
}
