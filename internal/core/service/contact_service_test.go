package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/transpoease/booking-system/internal/core/ports"
)

type stubEnqueuer struct {
	sent []ports.OutboundEmail
}

func (e *stubEnqueuer) Enqueue(email ports.OutboundEmail) {
	e.sent = append(e.sent, email)
}

func TestContactSubmit_QueuesMailToInbox(t *testing.T) {
	mail := &stubEnqueuer{}
	svc := NewContactService(mail, "support@transpoease.example", zerolog.Nop())

	id, err := svc.Submit(context.Background(), ports.ContactInput{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Lost parcel",
		Message: "Where is my package?",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id == "" {
		t.Fatalf("empty message id")
	}

	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 queued email, got %d", len(mail.sent))
	}
	sent := mail.sent[0]
	if sent.To != "support@transpoease.example" {
		t.Errorf("To = %q, want support inbox", sent.To)
	}
	if sent.ReplyTo != "bob@example.com" {
		t.Errorf("ReplyTo = %q, want sender address", sent.ReplyTo)
	}
	if !strings.Contains(sent.Subject, "Lost parcel") || !strings.Contains(sent.Subject, id) {
		t.Errorf("subject %q missing original subject or message id", sent.Subject)
	}
	if !strings.Contains(sent.Body, "Where is my package?") {
		t.Errorf("body does not carry the message")
	}
}
