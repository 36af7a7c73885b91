package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madrasahku_backend/internals/features/evaluation/model"
)

func TestScaleForFallback(t *testing.T) {
	assert.Equal(t, []string{"Mumtaz", "Jayyid Jiddan", "Jayyid", "Maqbul", "Naqis"}, ScaleFor(nil, "tahfizh"))

	// Opsi kategori lain tidak memengaruhi fallback
	opsi := []model.OpsiPenilaianModel{{OpsiKategori: "adab", OpsiLabel: "Baik", OpsiSkor: 1}}
	assert.Equal(t, DefaultScale, ScaleFor(opsi, "tahfizh"))
}

func TestScaleForCustom(t *testing.T) {
	opsi := []model.OpsiPenilaianModel{
		{OpsiKategori: "tahfizh", OpsiLabel: "Cukup", OpsiSkor: 1},
		{OpsiKategori: "tahfizh", OpsiLabel: "Istimewa", OpsiSkor: 3},
		{OpsiKategori: "tahfizh", OpsiLabel: "Baik", OpsiSkor: 2},
		{OpsiKategori: "adab", OpsiLabel: "Sopan", OpsiSkor: 9},
	}

	assert.Equal(t, []string{"Istimewa", "Baik", "Cukup"}, ScaleFor(opsi, "tahfizh"))
	assert.Equal(t, []string{"Sopan"}, ScaleFor(opsi, "adab"))
}

func TestScaleForDoesNotMutateDefault(t *testing.T) {
	got := ScaleFor(nil, "tilawah")
	got[0] = "diubah"
	assert.Equal(t, "Mumtaz", DefaultScale[0])
}

func TestRatingOrDash(t *testing.T) {
	assert.Equal(t, "-", RatingOrDash(nil))
	kosong := ""
	assert.Equal(t, "-", RatingOrDash(&kosong))
	nilai := "Mumtaz"
	assert.Equal(t, "Mumtaz", RatingOrDash(&nilai))
}
