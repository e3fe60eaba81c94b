package telemetry

import "sync/atomic"

// sequenceCounter is the single process-wide packet sequence counter. Every
// packet produced by any generator draws from it, so sequence numbers are
// unique across packet types until the counter wraps at 16 bits.
var sequenceCounter atomic.Uint32

// NextSequence returns the current sequence number and increments the shared
// counter. Safe for concurrent producers. Wrapping past 65535 is well-defined
// and not an error.
func NextSequence() uint16 {
	return uint16(sequenceCounter.Add(1) - 1)
}
