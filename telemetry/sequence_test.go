package telemetry

import (
	"sync"
	"testing"
)

// TestSequenceMonotonicity checks that successive sequence numbers increase
// by one, including across the 16 bit wraparound.
func TestSequenceMonotonicity(t *testing.T) {
	previous := NextSequence()

	// enough calls to cross the wrap at least once
	for i := 0; i < 70000; i++ {
		current := NextSequence()
		if current != previous+1 { // uint16 arithmetic wraps as required
			t.Fatalf("sequence jumped from %d to %d", previous, current)
		}
		previous = current
	}
}

// TestSequenceConcurrentUniqueness draws sequence numbers from many
// goroutines at once. Any window of fewer than 65536 consecutive draws must
// yield distinct values, no matter where the shared counter currently sits.
func TestSequenceConcurrentUniqueness(t *testing.T) {
	const (
		goroutines = 8
		perG       = 1000
	)

	var mu sync.Mutex
	seen := make(map[uint16]int)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				seq := NextSequence()
				mu.Lock()
				seen[seq]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != goroutines*perG {
		t.Fatalf("expected %d distinct sequence numbers, got %d", goroutines*perG, len(seen))
	}
}
