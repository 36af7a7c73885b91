package dto

import (
	"github.com/google/uuid"

	m "madrasahku_backend/internals/features/evaluation/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type UpsertPenilaianRequest struct {
	PenilaianSantriID uuid.UUID `json:"penilaian_santri_id" validate:"required"`
	PenilaianBulan    string    `json:"penilaian_bulan" validate:"required,datetime=2006-01"`

	PenilaianTahfizh *string `json:"penilaian_tahfizh" validate:"omitempty,max=30"`
	PenilaianTilawah *string `json:"penilaian_tilawah" validate:"omitempty,max=30"`
	PenilaianAdab    *string `json:"penilaian_adab" validate:"omitempty,max=30"`

	PenilaianCatatanMusammi   string `json:"penilaian_catatan_musammi" validate:"max=2000"`
	PenilaianCatatanWaliKelas string `json:"penilaian_catatan_wali_kelas" validate:"max=2000"`
	PenilaianCatatanMadrasah  string `json:"penilaian_catatan_madrasah" validate:"max=2000"`
}

type CreateOpsiRequest struct {
	OpsiKategori string `json:"opsi_kategori" validate:"required,oneof=tahfizh tilawah adab"`
	OpsiLabel    string `json:"opsi_label" validate:"required,max=30"`
	OpsiSkor     int    `json:"opsi_skor" validate:"min=0"`
}

func (r UpsertPenilaianRequest) ToModel(madrasahID uuid.UUID) m.PenilaianModel {
	return m.PenilaianModel{
		PenilaianMadrasahID:       madrasahID,
		PenilaianSantriID:         r.PenilaianSantriID,
		PenilaianBulan:            r.PenilaianBulan,
		PenilaianTahfizh:          r.PenilaianTahfizh,
		PenilaianTilawah:          r.PenilaianTilawah,
		PenilaianAdab:             r.PenilaianAdab,
		PenilaianCatatanMusammi:   r.PenilaianCatatanMusammi,
		PenilaianCatatanWaliKelas: r.PenilaianCatatanWaliKelas,
		PenilaianCatatanMadrasah:  r.PenilaianCatatanMadrasah,
	}
}

func (r CreateOpsiRequest) ToModel(madrasahID uuid.UUID) m.OpsiPenilaianModel {
	return m.OpsiPenilaianModel{
		OpsiMadrasahID: madrasahID,
		OpsiKategori:   r.OpsiKategori,
		OpsiLabel:      r.OpsiLabel,
		OpsiSkor:       r.OpsiSkor,
	}
}
