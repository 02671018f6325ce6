package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"race_timing/internal/common"
)

func TestValidateClockTime_Valid(t *testing.T) {
	for _, value := range []string{
		"00:00:00",
		"23:59:59",
		"09:05:30",
		"7:5:9", // unpadded components parse as numbers
		"12:00:00",
	} {
		t.Run(value, func(t *testing.T) {
			assert.NoError(t, ValidateClockTime(value))
		})
	}
}

func TestValidateClockTime_OutOfRange(t *testing.T) {
	for _, value := range []string{
		"24:00:00",
		"10:60:00",
		"10:00:60",
		"99:99:99",
		"-1:00:00",
	} {
		t.Run(value, func(t *testing.T) {
			err := ValidateClockTime(value)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), value)
		})
	}
}

func TestValidateClockTime_Malformed(t *testing.T) {
	// Non-numeric components must be rejected explicitly, not silently
	// accepted because a numeric comparison happens to fail.
	for _, value := range []string{
		"",
		"abc",
		"10:00",
		"10:00:00:00",
		"aa:bb:cc",
		"10:0a:00",
		"10::00",
		"+1:00:00",
	} {
		t.Run(value, func(t *testing.T) {
			assert.ErrorIs(t, ValidateClockTime(value), common.ErrValidation)
		})
	}
}

func TestAddTime_ValidRoundTrips(t *testing.T) {
	repo := newFakeTimeRepo()
	svc := NewTimeService(repo, nil, 0)

	record, err := svc.AddTime(context.Background(), AddTimeRequest{
		ClockTime:    "12:34:56",
		RecordType:   1,
		CompetitorID: 3,
		RecordedBy:   1,
		CheckpointID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "12:34:56", record.ClockTime)
	assert.NotZero(t, record.ID)

	stored, err := repo.FindByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "12:34:56", stored.ClockTime)
}

func TestAddTime_ZeroRecordTypeAccepted(t *testing.T) {
	// record_type is an opaque client-defined tag; zero is a legal value.
	repo := newFakeTimeRepo()
	svc := NewTimeService(repo, nil, 0)

	record, err := svc.AddTime(context.Background(), AddTimeRequest{
		ClockTime:    "08:00:00",
		RecordType:   0,
		CompetitorID: 1,
		RecordedBy:   1,
		CheckpointID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, record.RecordType)
}

func TestAddTime_InvalidCreatesNoRecord(t *testing.T) {
	repo := newFakeTimeRepo()
	svc := NewTimeService(repo, nil, 0)

	for _, value := range []string{"24:00:00", "10:60:00", "garbage"} {
		_, err := svc.AddTime(context.Background(), AddTimeRequest{
			ClockTime:    value,
			RecordType:   1,
			CompetitorID: 3,
			RecordedBy:   1,
			CheckpointID: 2,
		})
		require.Error(t, err, value)
		assert.True(t, errors.Is(err, common.ErrValidation), value)
	}

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAddTime_MissingForeignKeysRejected(t *testing.T) {
	repo := newFakeTimeRepo()
	svc := NewTimeService(repo, nil, 0)

	_, err := svc.AddTime(context.Background(), AddTimeRequest{
		ClockTime:  "10:00:00",
		RecordType: 1,
		// CompetitorID, RecordedBy, CheckpointID absent
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestListByCompetitor_FiltersRecords(t *testing.T) {
	repo := newFakeTimeRepo()
	svc := NewTimeService(repo, nil, 0)
	ctx := context.Background()

	for _, req := range []AddTimeRequest{
		{ClockTime: "10:00:00", RecordType: 1, CompetitorID: 1, RecordedBy: 1, CheckpointID: 1},
		{ClockTime: "10:05:00", RecordType: 1, CompetitorID: 2, RecordedBy: 1, CheckpointID: 1},
		{ClockTime: "10:10:00", RecordType: 2, CompetitorID: 1, RecordedBy: 1, CheckpointID: 2},
	} {
		_, err := svc.AddTime(ctx, req)
		require.NoError(t, err)
	}

	records, err := svc.ListByCompetitor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, 1, r.CompetitorID)
	}
}
