package repository

import "github.com/callunaspace/obctelemetry/telemetry"

// StoredDownlinkRecord represents a downlinked packet that is persisted to
// the SQLite database, and includes a count of upload attempts.
type StoredDownlinkRecord struct {
	telemetry.DownlinkRecord
	UploadAttemptCount uint
}

func newStoredDownlinkRecord(record telemetry.DownlinkRecord) StoredDownlinkRecord {
	return StoredDownlinkRecord{
		DownlinkRecord:     record,
		UploadAttemptCount: 0,
	}
}
