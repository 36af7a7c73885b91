package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/constants"
)

func entri(nama, marhalah, kelas, tanggal, waktu, status string) Entry {
	return Entry{
		ID:        uuid.New(),
		Tanggal:   tanggal,
		Waktu:     waktu,
		Role:      constants.RoleSantri,
		PersonID:  uuid.NewSHA1(uuid.NameSpaceOID, []byte(nama)),
		Nama:      nama,
		Marhalah:  marhalah,
		Kelas:     kelas,
		Status:    status,
		HalaqahID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(kelas)),
	}
}

func TestRekapPerPersonCounterConservation(t *testing.T) {
	entries := []Entry{
		entri("Ahmad", "Aliyah", "2A", "2024-01-01", "Shubuh", "Hadir"),
		entri("Ahmad", "Aliyah", "2A", "2024-01-02", "Shubuh", "Sakit"),
		entri("Ahmad", "Aliyah", "2A", "2024-01-03", "Shubuh", "Hadir"),
		entri("Budi", "Aliyah", "2A", "2024-01-01", "Shubuh", "Alpa"),
	}

	rows := RekapPerPerson(entries)
	require.Len(t, rows, 2)

	for _, row := range rows {
		sum := row.Hadir + row.Izin + row.Sakit + row.Alpa + row.Terlambat
		assert.Equal(t, row.Total, sum, "total harus sama dengan jumlah semua counter")
	}
	assert.Equal(t, 3, rows[0].Total)
	assert.Equal(t, 2, rows[0].Hadir)
	assert.Equal(t, 1, rows[0].Sakit)
}

func TestRekapPerPersonDropsUnresolvable(t *testing.T) {
	ok := entri("Ahmad", "Aliyah", "2A", "2024-01-01", "Shubuh", "Hadir")
	tanpaNama := ok
	tanpaNama.Nama = ""
	tanpaHalaqah := ok
	tanpaHalaqah.HalaqahID = uuid.Nil

	rows := RekapPerPerson([]Entry{ok, tanpaNama, tanpaHalaqah})
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Total)
}

func TestRekapPerKelasNaturalSort(t *testing.T) {
	entries := []Entry{
		entri("A", "Aliyah", "10A", "2024-01-01", "Shubuh", "Hadir"),
		entri("B", "Aliyah", "1A", "2024-01-01", "Shubuh", "Hadir"),
		entri("C", "Aliyah", "2A", "2024-01-01", "Shubuh", "Hadir"),
	}

	rows := RekapPerKelas(entries)
	require.Len(t, rows, 3)
	assert.Equal(t, "1A", rows[0].Kelas)
	assert.Equal(t, "2A", rows[1].Kelas)
	assert.Equal(t, "10A", rows[2].Kelas)
}

func TestRekapPerKelasMarhalahOrder(t *testing.T) {
	entries := []Entry{
		entri("A", "Jamiah", "1", "2024-01-01", "Shubuh", "Hadir"),
		entri("B", "Mutawassithah", "1", "2024-01-01", "Shubuh", "Hadir"),
		entri("C", "Aliyah", "1", "2024-01-01", "Shubuh", "Hadir"),
	}

	rows := RekapPerKelas(entries)
	require.Len(t, rows, 3)
	assert.Equal(t, "Mutawassithah", rows[0].Marhalah)
	assert.Equal(t, "Aliyah", rows[1].Marhalah)
	assert.Equal(t, "Jamiah", rows[2].Marhalah)
}

func TestRekapPerKelasPersentase(t *testing.T) {
	entries := []Entry{
		entri("A", "Aliyah", "2A", "2024-01-01", "Shubuh", "Hadir"),
		entri("A", "Aliyah", "2A", "2024-01-02", "Shubuh", "Hadir"),
		entri("B", "Aliyah", "2A", "2024-01-01", "Shubuh", "Alpa"),
	}

	rows := RekapPerKelas(entries)
	require.Len(t, rows, 1)
	assert.Equal(t, "67%", rows[0].Persentase)
}

func TestAttendancePercentageZeroTotal(t *testing.T) {
	assert.Equal(t, "0%", attendancePercentage(0, 0))
	assert.Equal(t, "100%", attendancePercentage(5, 5))
	assert.Equal(t, "0%", attendancePercentage(0, 7))
}

func TestRekapPerWaktuNewestFirst(t *testing.T) {
	entries := []Entry{
		entri("A", "Aliyah", "2A", "2024-01-01", "Isya", "Hadir"),
		entri("A", "Aliyah", "2A", "2024-01-03", "Shubuh", "Hadir"),
		entri("A", "Aliyah", "2A", "2024-01-03", "Ashar", "Izin"),
		entri("A", "Aliyah", "2A", "2024-01-02", "Dhuha", "Hadir"),
	}

	rows := RekapPerWaktu(entries)
	require.Len(t, rows, 4)
	assert.Equal(t, "2024-01-03", rows[0].Tanggal)
	assert.Equal(t, "Shubuh", rows[0].Waktu)
	assert.Equal(t, "Ashar", rows[1].Waktu)
	assert.Equal(t, "2024-01-02", rows[2].Tanggal)
	assert.Equal(t, "2024-01-01", rows[3].Tanggal)
}

func TestRekapDoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		entri("B", "Aliyah", "2A", "2024-01-02", "Shubuh", "Hadir"),
		entri("A", "Aliyah", "1A", "2024-01-01", "Shubuh", "Alpa"),
	}
	snapshot := make([]Entry, len(entries))
	copy(snapshot, entries)

	RekapPerPerson(entries)
	RekapPerKelas(entries)
	RekapPerWaktu(entries)

	assert.Equal(t, snapshot, entries)
}

func TestStatusDiLuarTaksonomiTidakDihitung(t *testing.T) {
	entries := []Entry{
		entri("A", "Aliyah", "2A", "2024-01-01", "Shubuh", "Hadir"),
		entri("A", "Aliyah", "2A", "2024-01-02", "Shubuh", "Bolos"),
	}

	rows := RekapPerPerson(entries)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Total)
}
