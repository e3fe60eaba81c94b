// Package store provides the fixed-capacity packet buffer shared between the
// collector and the two consumer loops. It is the only shared mutable state
// in the pipeline: all coordination between the loops goes through it.
package store

import (
	"log/slog"
	"sync"

	"github.com/callunaspace/obctelemetry/telemetry"
)

// Store is a concurrency-safe ring buffer of telemetry packets.
//
// Producers are never blocked or failed by a full buffer: storing into a full
// buffer evicts the oldest unconsumed packet (drop-oldest). Consumers are
// never blocked by an empty buffer: Retrieve reports emptiness immediately.
// Losing the oldest telemetry under backlog is expected policy, not an error.
type Store struct {
	mu      sync.Mutex
	packets []telemetry.Packet
	head    int // index of the oldest packet
	tail    int // index of the next free slot
	count   int
	dropped uint64
}

// New creates a store that holds at most capacity packets. Call once at
// startup, before any of the loops are started.
func New(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{
		packets: make([]telemetry.Packet, capacity),
	}
}

// Store inserts p at the logical tail. If the buffer is full the oldest
// packet is evicted to make room, so this never blocks and never fails.
func (s *Store) Store(p telemetry.Packet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == len(s.packets) {
		// full: advance the head past the oldest packet so both head and
		// tail move on this insert
		evicted := s.packets[s.head]
		s.head = (s.head + 1) % len(s.packets)
		s.count--
		s.dropped++
		slog.Debug("Evicted oldest packet", "type", evicted.Header.Type, "seq", evicted.Header.Sequence, "dropped_total", s.dropped)
	}

	s.packets[s.tail] = p
	s.tail = (s.tail + 1) % len(s.packets)
	s.count++
}

// Retrieve removes and returns the oldest packet in strict FIFO order. The
// second return value is false when the buffer is empty; emptiness is a
// normal idle signal for the consumers, not a fault.
func (s *Store) Retrieve() (telemetry.Packet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == 0 {
		return telemetry.Packet{}, false
	}

	p := s.packets[s.head]
	s.packets[s.head] = telemetry.Packet{} // drop payload references with the slot
	s.head = (s.head + 1) % len(s.packets)
	s.count--

	return p, true
}

// Available returns the number of packets currently buffered.
func (s *Store) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Dropped returns the total number of packets evicted by the drop-oldest
// policy since the store was created.
func (s *Store) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Capacity returns the fixed size the store was created with.
func (s *Store) Capacity() int {
	return len(s.packets)
}
