package service

import (
	"sort"

	"madrasahku_backend/internals/features/evaluation/model"
)

// Skala bawaan lima tingkat, dari tertinggi ke terendah.
var DefaultScale = []string{"Mumtaz", "Jayyid Jiddan", "Jayyid", "Maqbul", "Naqis"}

// Kategori penilaian yang dikenal rapor.
var Kategori = []string{"tahfizh", "tilawah", "adab"}

// ScaleFor mengembalikan label skala satu kategori: opsi kustom madrasah
// bila ada (urut skor menurun), selain itu skala bawaan.
func ScaleFor(opsi []model.OpsiPenilaianModel, kategori string) []string {
	var rows []model.OpsiPenilaianModel
	for _, o := range opsi {
		if o.OpsiKategori == kategori {
			rows = append(rows, o)
		}
	}
	if len(rows) == 0 {
		out := make([]string, len(DefaultScale))
		copy(out, DefaultScale)
		return out
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].OpsiSkor > rows[j].OpsiSkor })
	labels := make([]string, 0, len(rows))
	for _, o := range rows {
		labels = append(labels, o.OpsiLabel)
	}
	return labels
}

// RatingOrDash mengubah rating nullable jadi teks laporan.
func RatingOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
