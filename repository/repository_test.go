package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/callunaspace/obctelemetry/telemetry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "downlink.sqlite"))
	require.NoError(t, err)
	return repo
}

func testRecord(seq uint16) telemetry.DownlinkRecord {
	return telemetry.DownlinkRecord{
		ID:          uuid.New(),
		Time:        time.Now().UTC(),
		SatelliteID: uuid.New(),
		Type:        telemetry.TypePowerData,
		Sequence:    seq,
		Timestamp:   1000 + uint32(seq),
		Priority:    2,
		Payload:     `{"BatteryVoltage":3.3}`,
	}
}

func TestAddAndGetFresh(t *testing.T) {
	repo := testRepository(t)

	require.NoError(t, repo.AddDownlinkRecord(testRecord(1)))
	require.NoError(t, repo.AddDownlinkRecord(testRecord(2)))

	fresh, err := repo.GetDownlinkRecords(10, true)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)

	old, err := repo.GetDownlinkRecords(10, false)
	require.NoError(t, err)
	assert.Empty(t, old, "no record has failed an upload yet")
}

func TestIncrementMovesToOld(t *testing.T) {
	repo := testRepository(t)

	require.NoError(t, repo.AddDownlinkRecord(testRecord(1)))

	fresh, err := repo.GetDownlinkRecords(10, true)
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	require.NoError(t, repo.IncrementUploadAttemptCount(fresh))

	fresh, err = repo.GetDownlinkRecords(10, true)
	require.NoError(t, err)
	assert.Empty(t, fresh)

	old, err := repo.GetDownlinkRecords(10, false)
	require.NoError(t, err)
	require.Len(t, old, 1)
	assert.Equal(t, uint(1), old[0].UploadAttemptCount)
}

func TestDeleteRecords(t *testing.T) {
	repo := testRepository(t)

	require.NoError(t, repo.AddDownlinkRecord(testRecord(1)))
	require.NoError(t, repo.AddDownlinkRecord(testRecord(2)))

	records, err := repo.GetDownlinkRecords(10, true)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NoError(t, repo.DeleteRecords(records))

	records, err = repo.GetDownlinkRecords(10, true)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetHonoursLimit(t *testing.T) {
	repo := testRepository(t)

	for seq := uint16(0); seq < 5; seq++ {
		require.NoError(t, repo.AddDownlinkRecord(testRecord(seq)))
	}

	records, err := repo.GetDownlinkRecords(3, true)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
