package collector

import (
	"testing"
	"time"

	"github.com/callunaspace/obctelemetry/mission"
	"github.com/callunaspace/obctelemetry/store"
	"github.com/callunaspace/obctelemetry/telemetry"
)

func fixedGenerators() Generators {
	return Generators{
		SystemStatus: func() telemetry.SystemStatus {
			return telemetry.SystemStatus{UptimeSeconds: 10, SystemMode: 1}
		},
		PowerData: func() telemetry.PowerData {
			return telemetry.PowerData{BatteryVoltage: 3.3, BatteryLevel: 85}
		},
		Temperature: func() telemetry.TemperatureData {
			return telemetry.TemperatureData{Obc: 35, External: -15}
		},
		Communication: func() telemetry.CommunicationStatus {
			return telemetry.CommunicationStatus{CommsStatus: 1, CommandSuccessRate: 98}
		},
	}
}

// TestCollectFramesAllTypes runs a single collection cycle and checks that
// the four packet types land in the store in the fixed generation order,
// with consecutive sequence numbers and the per-type priorities.
func TestCollectFramesAllTypes(t *testing.T) {
	s := store.New(10)
	clock := mission.NewClockAt(time.Now())
	c := New(s, clock, fixedGenerators())

	c.Collect()

	if s.Available() != 4 {
		t.Fatalf("expected 4 packets after one cycle, got %d", s.Available())
	}

	expected := []struct {
		packetType telemetry.PacketType
		priority   uint8
	}{
		{telemetry.TypeSystemStatus, 1},
		{telemetry.TypePowerData, 2},
		{telemetry.TypeTemperatureData, 1},
		{telemetry.TypeCommunicationStatus, 1},
	}

	var firstSeq uint16
	for i, want := range expected {
		packet, ok := s.Retrieve()
		if !ok {
			t.Fatalf("store empty after %d packets", i)
		}
		if packet.Header.Type != want.packetType {
			t.Errorf("packet %d: expected type %v, got %v", i, want.packetType, packet.Header.Type)
		}
		if packet.Header.Priority != want.priority {
			t.Errorf("packet %d: expected priority %d, got %d", i, want.priority, packet.Header.Priority)
		}
		if packet.Payload() == nil {
			t.Errorf("packet %d: payload variant not set", i)
		}
		if i == 0 {
			firstSeq = packet.Header.Sequence
		} else if packet.Header.Sequence != firstSeq+uint16(i) {
			t.Errorf("packet %d: expected sequence %d, got %d", i, firstSeq+uint16(i), packet.Header.Sequence)
		}
	}
}

// TestCollectCarriesGeneratorData checks the generator output survives the
// framing untouched.
func TestCollectCarriesGeneratorData(t *testing.T) {
	s := store.New(10)
	clock := mission.NewClockAt(time.Now())
	c := New(s, clock, fixedGenerators())

	c.Collect()

	packet, _ := s.Retrieve() // system status is first
	if packet.System == nil || packet.System.UptimeSeconds != 10 {
		t.Errorf("system status payload lost: %+v", packet.System)
	}

	packet, _ = s.Retrieve()
	if packet.Power == nil || packet.Power.BatteryLevel != 85 {
		t.Errorf("power payload lost: %+v", packet.Power)
	}
}

// TestCollectOverflowKeepsProducing fills a tiny store over several cycles;
// collection must never fail and the store must hold the newest packets.
func TestCollectOverflowKeepsProducing(t *testing.T) {
	s := store.New(4)
	clock := mission.NewClockAt(time.Now())
	c := New(s, clock, fixedGenerators())

	for cycle := 0; cycle < 3; cycle++ {
		c.Collect()
	}

	if s.Available() != 4 {
		t.Fatalf("expected a full store, got %d", s.Available())
	}
	if s.Dropped() != 8 {
		t.Errorf("expected 8 evictions across 3 cycles, got %d", s.Dropped())
	}

	// the survivors are the last full cycle, still in generation order
	packet, _ := s.Retrieve()
	if packet.Header.Type != telemetry.TypeSystemStatus {
		t.Errorf("expected the newest cycle to survive, got first type %v", packet.Header.Type)
	}
}
