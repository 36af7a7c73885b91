package dto

import (
	"github.com/google/uuid"

	m "madrasahku_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateAbsensiRequest struct {
	AbsensiTanggal   string     `json:"absensi_tanggal" validate:"required,datetime=2006-01-02"`
	AbsensiWaktu     string     `json:"absensi_waktu" validate:"required,oneof=Shubuh Dhuha Ashar Isya"`
	AbsensiRole      string     `json:"absensi_role" validate:"required,oneof=santri musammi"`
	AbsensiPersonID  uuid.UUID  `json:"absensi_person_id" validate:"required"`
	AbsensiStatus    string     `json:"absensi_status" validate:"required,oneof=Hadir Izin Sakit Alpa Terlambat"`
	AbsensiHalaqahID *uuid.UUID `json:"absensi_halaqah_id" validate:"required"`
}

type UpdateAbsensiRequest struct {
	AbsensiStatus *string `json:"absensi_status" validate:"omitempty,oneof=Hadir Izin Sakit Alpa Terlambat"`
	AbsensiWaktu  *string `json:"absensi_waktu" validate:"omitempty,oneof=Shubuh Dhuha Ashar Isya"`
}

// Hapus massal seluruh entri satu sesi (tanggal + waktu)
type BatchDeleteAbsensiRequest struct {
	AbsensiTanggal string `json:"absensi_tanggal" validate:"required,datetime=2006-01-02"`
	AbsensiWaktu   string `json:"absensi_waktu" validate:"required,oneof=Shubuh Dhuha Ashar Isya"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AbsensiResponse struct {
	AbsensiID        uuid.UUID  `json:"absensi_id"`
	AbsensiTanggal   string     `json:"absensi_tanggal"`
	AbsensiWaktu     string     `json:"absensi_waktu"`
	AbsensiRole      string     `json:"absensi_role"`
	AbsensiPersonID  uuid.UUID  `json:"absensi_person_id"`
	PersonName       string     `json:"person_name,omitempty"`
	PersonMarhalah   string     `json:"person_marhalah,omitempty"`
	PersonKelas      string     `json:"person_kelas,omitempty"`
	AbsensiStatus    string     `json:"absensi_status"`
	AbsensiHalaqahID *uuid.UUID `json:"absensi_halaqah_id,omitempty"`
}

func (r CreateAbsensiRequest) ToModel(madrasahID uuid.UUID) m.AbsensiModel {
	return m.AbsensiModel{
		AbsensiMadrasahID: madrasahID,
		AbsensiTanggal:    r.AbsensiTanggal,
		AbsensiWaktu:      r.AbsensiWaktu,
		AbsensiRole:       r.AbsensiRole,
		AbsensiPersonID:   r.AbsensiPersonID,
		AbsensiStatus:     r.AbsensiStatus,
		AbsensiHalaqahID:  r.AbsensiHalaqahID,
	}
}
