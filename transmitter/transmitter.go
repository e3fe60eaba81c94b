// Package transmitter runs the downlink loop. It tracks a ground-contact
// gate signal and, whenever a contact window opens, drains the entire store
// in one burst to the downlink sink. Outside a window it idles, polling the
// gate on a fixed interval.
package transmitter

import (
	"context"
	"log/slog"
	"time"

	"github.com/callunaspace/obctelemetry/mission"
	"github.com/callunaspace/obctelemetry/store"
	"github.com/callunaspace/obctelemetry/telemetry"
)

// Sink consumes one transmitted packet together with the running
// transmission count. Once a packet reaches the sink, ownership has left the
// store; delivery accounting is the sink's concern.
type Sink func(count uint32, p telemetry.Packet)

type windowState int

const (
	windowClosed windowState = iota
	windowOpen
)

// Transmitter is the gated consumer of the telemetry store.
type Transmitter struct {
	store  *store.Store
	gate   mission.Gate
	sink   Sink
	pacing time.Duration
	logger *slog.Logger

	state       windowState
	transmitted uint32
}

// New creates a transmitter that drains the store to sink when gate reports
// an open contact window, pausing pacing between packets to emulate
// transmission latency.
func New(s *store.Store, gate mission.Gate, sink Sink, pacing time.Duration) *Transmitter {
	return &Transmitter{
		store:  s,
		gate:   gate,
		sink:   sink,
		pacing: pacing,
		logger: slog.Default().With("task", "transmitter"),
		state:  windowClosed,
	}
}

// Run loops forever, checking the gate every pollInterval while the window
// is closed. Exits when the context is cancelled.
func (t *Transmitter) Run(ctx context.Context, pollInterval time.Duration) error {

	pollTicker := time.NewTicker(pollInterval)
	defer pollTicker.Stop()

	t.logger.Info("Telemetry transmitter started", "poll_interval", pollInterval, "pacing", t.pacing)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-pollTicker.C:
			if t.gate(now) {
				t.openWindow()
			}
		}
	}
}

// openWindow transitions to the open state, performs one burst drain, and
// unconditionally closes the window again even if nothing was sent.
func (t *Transmitter) openWindow() {
	t.state = windowOpen
	t.logger.Info("Ground station contact window open", "available", t.store.Available())

	sent := t.Burst()
	if sent > 0 {
		t.logger.Info("Transmission complete", "sent", sent, "total_sent", t.transmitted)
	}

	t.state = windowClosed
}

// Burst drains the entire store in FIFO order, handing each packet to the
// sink. An empty store yields a zero-packet burst, which is not an error.
// Returns the number of packets transmitted.
func (t *Transmitter) Burst() uint32 {
	var sent uint32

	for {
		packet, ok := t.store.Retrieve()
		if !ok {
			return sent
		}

		t.transmitted++
		sent++
		t.sink(t.transmitted, packet)
		t.logger.Debug("Transmitted packet",
			"n", t.transmitted,
			"type", packet.Header.Type,
			"seq", packet.Header.Sequence,
			"timestamp", packet.Header.Timestamp,
		)

		// small pause between packets to emulate link latency
		if t.pacing > 0 {
			time.Sleep(t.pacing)
		}
	}
}

// Transmitted returns the total number of packets sent since start.
func (t *Transmitter) Transmitted() uint32 {
	return t.transmitted
}
