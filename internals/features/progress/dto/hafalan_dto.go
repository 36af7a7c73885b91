package dto

import (
	"github.com/google/uuid"

	m "madrasahku_backend/internals/features/progress/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type UpsertHafalanRequest struct {
	HafalanSantriID uuid.UUID `json:"hafalan_santri_id" validate:"required"`
	HafalanBulan    string    `json:"hafalan_bulan" validate:"required,datetime=2006-01"`
	HafalanDimensi  string    `json:"hafalan_dimensi" validate:"required,oneof=hafalan murojaah ziyadah"`
	HafalanNilai    string    `json:"hafalan_nilai" validate:"required,max=120"`
}

// Hapus seluruh entri satu periode (bulan + dimensi)
type DeleteHafalanPeriodRequest struct {
	HafalanBulan   string `json:"hafalan_bulan" validate:"required,datetime=2006-01"`
	HafalanDimensi string `json:"hafalan_dimensi" validate:"required,oneof=hafalan murojaah ziyadah"`
}

type UpsertTargetKelasRequest struct {
	TargetMarhalah      string  `json:"target_marhalah" validate:"required,oneof=Mutawassithah Aliyah Jamiah"`
	TargetKelas         string  `json:"target_kelas" validate:"required,max=30"`
	TargetHafalanAwal   float64 `json:"target_hafalan_awal" validate:"min=0"`
	TargetHafalanAkhir  float64 `json:"target_hafalan_akhir" validate:"min=0"`
	TargetMurojaahAwal  float64 `json:"target_murojaah_awal" validate:"min=0"`
	TargetMurojaahAkhir float64 `json:"target_murojaah_akhir" validate:"min=0"`
	TargetZiyadahAwal   float64 `json:"target_ziyadah_awal" validate:"min=0"`
	TargetZiyadahAkhir  float64 `json:"target_ziyadah_akhir" validate:"min=0"`
}

func (r UpsertHafalanRequest) ToModel(madrasahID uuid.UUID) m.HafalanModel {
	return m.HafalanModel{
		HafalanMadrasahID: madrasahID,
		HafalanSantriID:   r.HafalanSantriID,
		HafalanBulan:      r.HafalanBulan,
		HafalanDimensi:    r.HafalanDimensi,
		HafalanNilai:      r.HafalanNilai,
	}
}

func (r UpsertTargetKelasRequest) ToModel(madrasahID uuid.UUID) m.TargetKelasModel {
	return m.TargetKelasModel{
		TargetMadrasahID:    madrasahID,
		TargetMarhalah:      r.TargetMarhalah,
		TargetKelas:         r.TargetKelas,
		TargetHafalanAwal:   r.TargetHafalanAwal,
		TargetHafalanAkhir:  r.TargetHafalanAkhir,
		TargetMurojaahAwal:  r.TargetMurojaahAwal,
		TargetMurojaahAkhir: r.TargetMurojaahAkhir,
		TargetZiyadahAwal:   r.TargetZiyadahAwal,
		TargetZiyadahAkhir:  r.TargetZiyadahAkhir,
	}
}
