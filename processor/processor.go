// Package processor runs the on-board consumption loop: packets are pulled
// from the store in FIFO order and handed to a presenter for display or
// logging. When the store is empty the loop backs off and polls again; there
// is no wake-on-enqueue signal, only eventual draining is required.
package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/callunaspace/obctelemetry/store"
	"github.com/callunaspace/obctelemetry/telemetry"
)

// Presenter consumes one packet for display. It is an external collaborator
// with no failure mode the processor must handle.
type Presenter func(p telemetry.Packet)

// Processor drains the store and dispatches packets to a presenter.
type Processor struct {
	store   *store.Store
	present Presenter
	logger  *slog.Logger

	processed uint32
}

func New(s *store.Store, present Presenter) *Processor {
	return &Processor{
		store:   s,
		present: present,
		logger:  slog.Default().With("task", "processor"),
	}
}

// Run loops forever, draining whenever packets are available and sleeping
// for idleBackoff when the store is empty. Exits when the context is
// cancelled.
func (p *Processor) Run(ctx context.Context, idleBackoff time.Duration) error {

	p.logger.Info("Telemetry processor started", "idle_backoff", idleBackoff)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if p.ProcessOne() {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(idleBackoff):
		}
	}
}

// ProcessOne retrieves and presents a single packet. Returns false when the
// store was empty.
func (p *Processor) ProcessOne() bool {
	packet, ok := p.store.Retrieve()
	if !ok {
		return false
	}

	p.processed++
	p.present(packet)
	p.logger.Debug("Processed packet", "seq", packet.Header.Sequence, "available", p.store.Available())

	return true
}

// Processed returns the number of packets handled so far.
func (p *Processor) Processed() uint32 {
	return p.processed
}
