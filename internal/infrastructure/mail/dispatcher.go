package mail

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/transpoease/booking-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Sender delivers a single email.
type Sender interface {
	Send(email ports.OutboundEmail) error
}

// Dispatcher routes outbound emails to a fixed set of workers using consistent
// hashing on the recipient, guaranteeing per-recipient delivery ordering.
type Dispatcher struct {
	workers []chan ports.OutboundEmail
	sender  Sender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.OutboundEmail, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.OutboundEmail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an email to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(email ports.OutboundEmail) {
	d.workers[d.shardIndex(email.To)] <- email
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.OutboundEmail) {
	for {
		select {
		case <-ctx.Done():
			return
		case email, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.Send(email); err != nil {
				d.log.Error().Err(err).
					Str("to", email.To).
					Int("worker_id", id).
					Msg("email delivery failed")
			}
		}
	}
}
