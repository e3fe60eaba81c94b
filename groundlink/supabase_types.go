package groundlink

import (
	"time"

	"github.com/callunaspace/obctelemetry/repository"
	"github.com/google/uuid"
)

const downlinkTableName = "downlinked_packets"

// supabaseDownlinkRecord holds the json encoding schema for a downlinked
// packet in supabase.
type supabaseDownlinkRecord struct {
	ID          uuid.UUID `json:"id"`
	Time        time.Time `json:"time"`
	SatelliteID uuid.UUID `json:"satellite_id"`
	Type        uint8     `json:"packet_type"`
	Sequence    uint16    `json:"sequence"`
	Timestamp   uint32    `json:"timestamp"`
	Priority    uint8     `json:"priority"`
	Payload     string    `json:"payload"`
}

func convertDownlinkRecords(records []repository.StoredDownlinkRecord) []supabaseDownlinkRecord {
	var supabaseRecords []supabaseDownlinkRecord
	for _, record := range records {
		supabaseRecords = append(supabaseRecords, supabaseDownlinkRecord{
			ID:          record.ID,
			Time:        record.Time,
			SatelliteID: record.SatelliteID,
			Type:        uint8(record.Type),
			Sequence:    record.Sequence,
			Timestamp:   record.Timestamp,
			Priority:    record.Priority,
			Payload:     record.Payload,
		})
	}
	return supabaseRecords
}
