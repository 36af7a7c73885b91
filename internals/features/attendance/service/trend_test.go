package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/constants"
)

func TestTodayOrLatest(t *testing.T) {
	entries := []Entry{
		entri("A", "Aliyah", "2A", "2024-01-01", "Shubuh", "Hadir"),
		entri("A", "Aliyah", "2A", "2024-01-03", "Shubuh", "Hadir"),
	}

	// Tidak ada entri hari ini → tanggal terbaru pada data
	tanggal, isToday := TodayOrLatest(entries, "2024-01-05")
	assert.Equal(t, "2024-01-03", tanggal)
	assert.False(t, isToday)

	// Ada entri tepat hari ini
	tanggal, isToday = TodayOrLatest(entries, "2024-01-03")
	assert.Equal(t, "2024-01-03", tanggal)
	assert.True(t, isToday)

	// Data kosong → hari ini
	tanggal, isToday = TodayOrLatest(nil, "2024-01-05")
	assert.Equal(t, "2024-01-05", tanggal)
	assert.True(t, isToday)
}

func TestWeeklySeriesShape(t *testing.T) {
	today := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		entri("A", "Aliyah", "2A", "2024-01-10", "Shubuh", "Hadir"),
		entri("B", "Aliyah", "2A", "2024-01-08", "Shubuh", "Izin"),
		entri("C", "Aliyah", "2A", "2023-12-01", "Shubuh", "Hadir"), // di luar jendela
	}

	points := WeeklySeries(entries, today)
	require.Len(t, points, 7)

	// Kronologis naik, bucket terakhir = hari ini
	assert.Equal(t, "2024-01-04", points[0].Tanggal)
	assert.Equal(t, "2024-01-10", points[6].Tanggal)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Tanggal, points[i].Tanggal)
	}

	assert.Equal(t, 1, points[6].Hadir)
	assert.Equal(t, 1, points[4].Izin)
	assert.Equal(t, 0, points[0].Total)
}

func TestWeeklySeriesLabels(t *testing.T) {
	// 2024-01-10 adalah Rabu
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	points := WeeklySeries(nil, today)
	require.Len(t, points, 7)
	assert.Equal(t, "Kam", points[0].Label)
	assert.Equal(t, "Rab", points[6].Label)
}

func TestRangeSeriesBucketCount(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	points := RangeSeries(nil, "2024-01-01", "2024-01-10", today)
	require.Len(t, points, 10)
	assert.Equal(t, "2024-01-01", points[0].Tanggal)
	assert.Equal(t, "2024-01-10", points[9].Tanggal)

	// Satu hari → satu bucket
	points = RangeSeries(nil, "2024-01-05", "2024-01-05", today)
	require.Len(t, points, 1)
}

func TestRangeSeriesDefaults(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Tanpa rentang: 30 hari ke belakang dari hari ini, inklusif
	points := RangeSeries(nil, "", "", today)
	require.Len(t, points, 31)
	assert.Equal(t, today.Format(constants.FormatTanggal), points[len(points)-1].Tanggal)

	// Hanya end: jendela 30 hari berakhir di end
	points = RangeSeries(nil, "", "2024-02-10", today)
	require.Len(t, points, 31)
	assert.Equal(t, "2024-02-10", points[len(points)-1].Tanggal)
}

func TestRangeSeriesStartAfterEnd(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := RangeSeries(nil, "2024-02-10", "2024-02-01", today)
	assert.Empty(t, points)
}

func TestRangeSeriesAccumulation(t *testing.T) {
	today := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		entri("A", "Aliyah", "2A", "2024-01-02", "Shubuh", "Hadir"),
		entri("B", "Aliyah", "2A", "2024-01-02", "Shubuh", "Terlambat"),
		entri("C", "Aliyah", "2A", "2024-01-03", "Shubuh", "Sakit"),
	}

	points := RangeSeries(entries, "2024-01-01", "2024-01-03", today)
	require.Len(t, points, 3)
	assert.Equal(t, 0, points[0].Total)
	assert.Equal(t, 1, points[1].Hadir)
	assert.Equal(t, 1, points[1].Terlambat)
	assert.Equal(t, 1, points[2].Sakit)
}
