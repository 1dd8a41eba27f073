package ports

import "context"

// ContactInput is a message submitted through the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService accepts contact messages and queues them for delivery.
type ContactService interface {
	// Submit queues the message for SMTP delivery and returns its id.
	Submit(ctx context.Context, input ContactInput) (string, error)
}

// OutboundEmail is a single email queued for asynchronous delivery.
type OutboundEmail struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// MailEnqueuer hands an email to the background delivery workers.
type MailEnqueuer interface {
	Enqueue(email OutboundEmail)
}
