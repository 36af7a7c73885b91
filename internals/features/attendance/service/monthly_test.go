package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyStatsPrefixMatch(t *testing.T) {
	ahmad := uuid.NewSHA1(uuid.NameSpaceOID, []byte("Ahmad"))
	entries := []Entry{
		entri("Ahmad", "Aliyah", "2A", "2024-01-05", "Shubuh", "Hadir"),
		entri("Ahmad", "Aliyah", "2A", "2024-01-20", "Shubuh", "Izin"),
		entri("Ahmad", "Aliyah", "2A", "2024-02-01", "Shubuh", "Hadir"), // bulan lain
		entri("Budi", "Aliyah", "2A", "2024-01-05", "Shubuh", "Hadir"),  // santri lain
	}

	sc := MonthlyStats(entries, ahmad, "2024-01")
	assert.Equal(t, 1, sc.Hadir)
	assert.Equal(t, 1, sc.Izin)
	assert.Equal(t, 2, sc.Total)
}

func TestMonthlyStatsIgnoresMusammi(t *testing.T) {
	e := entri("Ahmad", "Aliyah", "2A", "2024-01-05", "Shubuh", "Hadir")
	e.Role = "musammi"
	sc := MonthlyStats([]Entry{e}, e.PersonID, "2024-01")
	assert.Equal(t, 0, sc.Total)
}

func TestProblemSantriListing(t *testing.T) {
	entries := []Entry{
		entri("Ahmad", "Aliyah", "2A", "2024-01-02", "Shubuh", "Alpa"),
		entri("Ahmad", "Aliyah", "2A", "2024-01-03", "Shubuh", "Alpa"),
		entri("Ahmad", "Aliyah", "2A", "2024-01-04", "Shubuh", "Izin"),
		entri("Budi", "Aliyah", "2A", "2024-01-02", "Shubuh", "Hadir"),
		entri("Citra", "Aliyah", "2A", "2024-01-02", "Shubuh", "Hadir"),
	}

	rows := ProblemSantri(entries, "Aliyah", "2A", "2024-01-01", "2024-01-31")
	require.Len(t, rows, 1, "santri yang selalu hadir tidak boleh muncul")
	assert.Equal(t, "Ahmad", rows[0].Nama)

	// Item mengikuti urutan taksonomi: Izin sebelum Alpa
	require.Len(t, rows[0].Items, 2)
	assert.Equal(t, ProblemItem{Status: "Izin", Count: 1}, rows[0].Items[0])
	assert.Equal(t, ProblemItem{Status: "Alpa", Count: 2}, rows[0].Items[1])
}

func TestProblemSantriAllPresent(t *testing.T) {
	entries := []Entry{
		entri("Ahmad", "Aliyah", "2A", "2024-01-02", "Shubuh", "Hadir"),
		entri("Budi", "Aliyah", "2A", "2024-01-02", "Shubuh", "Hadir"),
	}
	rows := ProblemSantri(entries, "Aliyah", "2A", "2024-01-01", "2024-01-31")
	assert.Empty(t, rows)
}

func TestProblemSantriScoping(t *testing.T) {
	entries := []Entry{
		entri("Ahmad", "Aliyah", "2A", "2024-01-02", "Shubuh", "Alpa"),
		entri("Dewi", "Aliyah", "3B", "2024-01-02", "Shubuh", "Alpa"),  // kelas lain
		entri("Eko", "Jamiah", "2A", "2024-01-02", "Shubuh", "Alpa"),   // marhalah lain
		entri("Fikri", "Aliyah", "2A", "2023-12-30", "Shubuh", "Alpa"), // di luar rentang
	}
	rows := ProblemSantri(entries, "Aliyah", "2A", "2024-01-01", "2024-01-31")
	require.Len(t, rows, 1)
	assert.Equal(t, "Ahmad", rows[0].Nama)
}

func TestProblemSantriSortedByName(t *testing.T) {
	entries := []Entry{
		entri("citra", "Aliyah", "2A", "2024-01-02", "Shubuh", "Alpa"),
		entri("Ahmad", "Aliyah", "2A", "2024-01-02", "Shubuh", "Alpa"),
		entri("Budi", "Aliyah", "2A", "2024-01-02", "Shubuh", "Izin"),
	}
	rows := ProblemSantri(entries, "Aliyah", "2A", "2024-01-01", "2024-01-31")
	require.Len(t, rows, 3)
	assert.Equal(t, "Ahmad", rows[0].Nama)
	assert.Equal(t, "Budi", rows[1].Nama)
	assert.Equal(t, "citra", rows[2].Nama, "urutan nama tidak peka huruf besar")
}

func TestFormatProblemLine(t *testing.T) {
	line := FormatProblemLine(ProblemRow{
		Nama: "Ahmad",
		Items: []ProblemItem{
			{Status: "Alpa", Count: 2},
			{Status: "Izin", Count: 1},
		},
	})
	assert.Equal(t, "Ahmad: Alpa (2), Izin (1)", line)
}
