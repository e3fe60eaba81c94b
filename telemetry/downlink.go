package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DownlinkRecord is the ground-segment representation of one transmitted
// packet: the header fields flattened alongside the receive metadata, with
// the payload variant carried as JSON so heterogeneous packet types share
// one record shape.
type DownlinkRecord struct {
	ID          uuid.UUID
	Time        time.Time
	SatelliteID uuid.UUID
	Type        PacketType
	Sequence    uint16
	Timestamp   uint32
	Priority    uint8
	Payload     string
}

// NewDownlinkRecord flattens a received packet into a DownlinkRecord stamped
// with a fresh ID and the given receive time.
func NewDownlinkRecord(satelliteID uuid.UUID, receivedAt time.Time, p Packet) (DownlinkRecord, error) {
	payload, err := json.Marshal(p.Payload())
	if err != nil {
		return DownlinkRecord{}, fmt.Errorf("marshal payload: %w", err)
	}

	return DownlinkRecord{
		ID:          uuid.New(),
		Time:        receivedAt,
		SatelliteID: satelliteID,
		Type:        p.Header.Type,
		Sequence:    p.Header.Sequence,
		Timestamp:   p.Header.Timestamp,
		Priority:    p.Header.Priority,
		Payload:     string(payload),
	}, nil
}
