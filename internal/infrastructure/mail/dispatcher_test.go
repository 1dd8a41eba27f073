package mail

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/transpoease/booking-system/internal/core/ports"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []ports.OutboundEmail
	done chan struct{}
	want int
}

func (s *recordingSender) Send(email ports.OutboundEmail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	if len(s.sent) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcherDeliversInOrderPerRecipient(t *testing.T) {
	sender := &recordingSender{done: make(chan struct{}), want: 3}
	d := NewDispatcher(4, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, subject := range []string{"first", "second", "third"} {
		d.Enqueue(ports.OutboundEmail{To: "ops@transpoease.test", Subject: subject})
	}

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for deliveries")
	}

	sender.mu.Lock()
	defer sender.mu.Unlock()
	for i, subject := range []string{"first", "second", "third"} {
		if sender.sent[i].Subject != subject {
			t.Fatalf("delivery %d subject = %q, want %q", i, sender.sent[i].Subject, subject)
		}
	}
}

func TestDispatcherShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingSender{done: make(chan struct{}), want: 1}, zerolog.Nop())

	first := d.shardIndex("someone@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("someone@example.com"); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}

	if n := d.shardIndex("someone@example.com"); n < 0 || n >= len(d.workers) {
		t.Fatalf("shard index %d out of range", n)
	}
}
