// Package groundlink models the ground-segment data platform. Packets
// received from the transmitter are buffered on disk in a SQLite database
// and then uploaded to Supabase in chunks, with per-record retry accounting.
package groundlink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/callunaspace/obctelemetry/repository"
	"github.com/callunaspace/obctelemetry/telemetry"
)

// uploadChunkLimit defines how many records we upload in one supabase HTTP request.
const uploadChunkLimit = 100

// Platform handles the streaming of downlinked telemetry to the data
// platform. Put received packets onto the Downlinked channel; they will be
// buffered on disk before being uploaded.
type Platform struct {
	Downlinked chan telemetry.DownlinkRecord

	repository *repository.Repository
	client     *client
}

func New(supabaseUrl, supabaseKey, schema, bufferRepositoryFilename string) (*Platform, error) {

	repo, err := repository.New(bufferRepositoryFilename)
	if err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}

	return &Platform{
		Downlinked: make(chan telemetry.DownlinkRecord, 25), // a small buffer to allow SQLite to catch up in case the disk is slow
		repository: repo,
		client:     newClient(supabaseUrl, supabaseKey, schema),
	}, nil
}

// Run loops forever persisting downlinked packets as they arrive and
// attempting an upload every uploadInterval. Exits when the context is
// cancelled.
func (p *Platform) Run(ctx context.Context, uploadInterval time.Duration) error {

	uploadTicker := time.NewTicker(uploadInterval)
	defer uploadTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record := <-p.Downlinked:
			err := p.repository.AddDownlinkRecord(record)
			if err != nil {
				slog.Error("failed to persist downlinked packet", "error", err)
				continue
			}
			slog.Debug("Stored downlinked packet", "seq", record.Sequence, "type", record.Type)

		case <-uploadTicker.C:
			p.attemptUpload()
		}
	}
}

// attemptUpload pushes buffered records up to the data platform: records
// that have never failed an upload first, then records that have already
// failed at least once.
func (p *Platform) attemptUpload() {

	freshRecords, err := p.repository.GetDownlinkRecords(uploadChunkLimit, true)
	if err != nil {
		slog.Error("failed to query fresh downlink records", "error", err)
	} else if len(freshRecords) > 0 {
		err = p.handleRecords(freshRecords)
		if err != nil {
			slog.Error("failed to handle fresh downlink records", "error", err)
		}
	}

	oldRecords, err := p.repository.GetDownlinkRecords(uploadChunkLimit, false)
	if err != nil {
		slog.Error("failed to query old downlink records", "error", err)
	} else if len(oldRecords) > 0 {
		err = p.handleRecords(oldRecords)
		if err != nil {
			slog.Error("failed to handle old downlink records", "error", err)
		}
	}
}

// handleRecords attempts to upload the given records. If successful, it
// deletes the records from the database; if unsuccessful, it increments the
// 'upload attempt count' column and leaves them for another time.
func (p *Platform) handleRecords(records []repository.StoredDownlinkRecord) error {

	uploadErr := p.client.upload(downlinkTableName, convertDownlinkRecords(records))
	if uploadErr != nil {
		uploadErr = fmt.Errorf("upload failed: %w", uploadErr)
		errInc := p.repository.IncrementUploadAttemptCount(records)
		if errInc != nil {
			return fmt.Errorf("%w: increment upload attempt count: %w", uploadErr, errInc)
		}
		return uploadErr
	}

	deleteErr := p.repository.DeleteRecords(records)
	if deleteErr != nil {
		return fmt.Errorf("delete downlink records: %w", deleteErr)
	}

	slog.Info("Uploaded downlink records", "db_table", downlinkTableName, "db_records", len(records))

	return nil
}
