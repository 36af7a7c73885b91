package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"madrasahku_backend/internals/features/progress/model"
)

func hafalan(santriID uuid.UUID, bulan, dimensi, nilai string) model.HafalanModel {
	return model.HafalanModel{
		HafalanSantriID: santriID,
		HafalanBulan:    bulan,
		HafalanDimensi:  dimensi,
		HafalanNilai:    nilai,
	}
}

func TestLatestValue(t *testing.T) {
	ahmad := uuid.New()
	budi := uuid.New()
	entries := []model.HafalanModel{
		hafalan(ahmad, "2024-01", "hafalan", "10"),
		hafalan(ahmad, "2024-03", "hafalan", "12"),
		hafalan(ahmad, "2024-02", "hafalan", "11"),
		hafalan(ahmad, "2024-03", "murojaah", "99"), // dimensi lain
		hafalan(budi, "2024-04", "hafalan", "5"),    // santri lain
	}

	assert.Equal(t, "12", LatestValue(entries, ahmad, "hafalan"))
	assert.Equal(t, "99", LatestValue(entries, ahmad, "murojaah"))
	assert.Equal(t, NoData, LatestValue(entries, ahmad, "ziyadah"))
	assert.Equal(t, NoData, LatestValue(nil, ahmad, "hafalan"))
}

func TestAverageValue(t *testing.T) {
	ahmad := uuid.New()
	entries := []model.HafalanModel{
		hafalan(ahmad, "2024-01", "murojaah", "8"),
		hafalan(ahmad, "2024-02", "murojaah", "9"),
		hafalan(ahmad, "2024-03", "murojaah", "10"),
	}

	assert.Equal(t, "9.0", AverageValue(entries, ahmad, "murojaah", "2024-01", "2024-03"))
	assert.Equal(t, "8.5", AverageValue(entries, ahmad, "murojaah", "2024-01", "2024-02"))
	assert.Equal(t, "10.0", AverageValue(entries, ahmad, "murojaah", "2024-03", "2024-03"))
}

func TestAverageValueSkipsNonNumeric(t *testing.T) {
	ahmad := uuid.New()
	entries := []model.HafalanModel{
		hafalan(ahmad, "2024-01", "hafalan", "Juz 30 selesai"),
		hafalan(ahmad, "2024-02", "hafalan", "4.5"),
	}

	assert.Equal(t, "4.5", AverageValue(entries, ahmad, "hafalan", "2024-01", "2024-12"))
}

func TestAverageValueNoData(t *testing.T) {
	ahmad := uuid.New()
	assert.Equal(t, NoData, AverageValue(nil, ahmad, "murojaah", "2024-01", "2024-12"))

	entries := []model.HafalanModel{hafalan(ahmad, "2024-01", "hafalan", "teks bebas")}
	assert.Equal(t, NoData, AverageValue(entries, ahmad, "hafalan", "2024-01", "2024-12"))
}

func TestWithUnit(t *testing.T) {
	assert.Equal(t, "12 Juz", WithUnit("12", "Juz"))
	assert.Equal(t, NoData, WithUnit(NoData, "Juz"))
}
