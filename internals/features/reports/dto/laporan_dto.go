package dto

import "github.com/google/uuid"

/* =========================================================
 * REQUESTS
 * ========================================================= */

type LaporanSantriRequest struct {
	SantriID uuid.UUID `json:"santri_id" validate:"required"`
	Bulan    string    `json:"bulan" validate:"required,datetime=2006-01"`
}

// Varian lengkap membawa catatan khusus opsional per santri.
type LaporanSantriLengkapRequest struct {
	SantriID uuid.UUID `json:"santri_id" validate:"required"`
	Bulan    string    `json:"bulan" validate:"required,datetime=2006-01"`
	Catatan  string    `json:"catatan" validate:"max=2000"`
}

type LaporanKelasRequest struct {
	Marhalah     string `json:"marhalah" validate:"required,oneof=Mutawassithah Aliyah Jamiah"`
	Kelas        string `json:"kelas" validate:"required,max=30"`
	StartTanggal string `json:"start_tanggal" validate:"omitempty,datetime=2006-01-02"`
	EndTanggal   string `json:"end_tanggal" validate:"omitempty,datetime=2006-01-02"`
}
