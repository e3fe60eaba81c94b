package transmitter

import (
	"context"
	"testing"
	"time"

	"github.com/callunaspace/obctelemetry/store"
	"github.com/callunaspace/obctelemetry/telemetry"
)

func seedStore(s *store.Store, n int) {
	for i := 0; i < n; i++ {
		s.Store(telemetry.Packet{
			Header: telemetry.Header{
				Type:     telemetry.TypePowerData,
				Sequence: uint16(i),
			},
			Power: &telemetry.PowerData{},
		})
	}
}

// TestBurstDrainsAll checks a single burst empties a store of 5 packets in
// FIFO order, and that a second burst on the now-empty store is a
// zero-packet no-op.
func TestBurstDrainsAll(t *testing.T) {
	s := store.New(10)
	seedStore(s, 5)

	var sunk []uint16
	var counts []uint32
	sink := func(count uint32, p telemetry.Packet) {
		counts = append(counts, count)
		sunk = append(sunk, p.Header.Sequence)
	}

	alwaysOpen := func(time.Time) bool { return true }
	trans := New(s, alwaysOpen, sink, 0)

	sent := trans.Burst()
	if sent != 5 {
		t.Fatalf("expected 5 packets in the burst, got %d", sent)
	}
	if s.Available() != 0 {
		t.Errorf("store should be empty after the burst, has %d", s.Available())
	}
	for i, seq := range sunk {
		if seq != uint16(i) {
			t.Errorf("packet %d out of order: got sequence %d", i, seq)
		}
	}
	for i, count := range counts {
		if count != uint32(i+1) {
			t.Errorf("running count wrong at packet %d: got %d", i, count)
		}
	}

	// second burst with the gate still open and an empty store
	sent = trans.Burst()
	if sent != 0 {
		t.Errorf("expected a zero-packet burst on an empty store, got %d", sent)
	}
	if trans.Transmitted() != 5 {
		t.Errorf("total transmitted should remain 5, got %d", trans.Transmitted())
	}
}

// TestRunGateClosed runs the loop with a closed gate and checks nothing
// leaves the store.
func TestRunGateClosed(t *testing.T) {
	s := store.New(10)
	seedStore(s, 3)

	sink := func(count uint32, p telemetry.Packet) {
		t.Errorf("sink invoked with a closed gate")
	}

	alwaysClosed := func(time.Time) bool { return false }
	trans := New(s, alwaysClosed, sink, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	trans.Run(ctx, time.Millisecond)

	if s.Available() != 3 {
		t.Errorf("store should be untouched with a closed gate, has %d", s.Available())
	}
}

// TestRunGateOpen runs the loop with an open gate and checks the store is
// drained through the sink.
func TestRunGateOpen(t *testing.T) {
	s := store.New(10)
	seedStore(s, 3)

	sunk := make(chan uint16, 10)
	sink := func(count uint32, p telemetry.Packet) {
		sunk <- p.Header.Sequence
	}

	alwaysOpen := func(time.Time) bool { return true }
	trans := New(s, alwaysOpen, sink, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- trans.Run(ctx, time.Millisecond)
	}()

	deadline := time.After(time.Second)
	for i := 0; i < 3; i++ {
		select {
		case seq := <-sunk:
			if seq != uint16(i) {
				t.Errorf("packet %d out of order: got sequence %d", i, seq)
			}
		case <-deadline:
			t.Fatalf("timed out waiting for packet %d", i)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not exit after cancellation")
	}

	if s.Available() != 0 {
		t.Errorf("store should be drained, has %d", s.Available())
	}
}
