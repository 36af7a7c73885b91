package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "madrasahku_backend/internals/features/halaqah/model"
	santriDTO "madrasahku_backend/internals/features/people/santri/dto"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateHalaqahRequest struct {
	HalaqahName      string    `json:"halaqah_name" validate:"required,min=2,max=120"`
	HalaqahMusammiID uuid.UUID `json:"halaqah_musammi_id" validate:"required"`
	HalaqahMarhalah  string    `json:"halaqah_marhalah" validate:"required,oneof=Mutawassithah Aliyah Jamiah"`
	HalaqahType      string    `json:"halaqah_type" validate:"omitempty,max=60"`
	HalaqahWaktu     []string  `json:"halaqah_waktu" validate:"required,min=1,dive,oneof=Shubuh Dhuha Ashar Isya"`
	HalaqahUrutan    int       `json:"halaqah_urutan" validate:"omitempty,min=0"`
}

type UpdateHalaqahRequest struct {
	HalaqahName      *string    `json:"halaqah_name" validate:"omitempty,min=2,max=120"`
	HalaqahMusammiID *uuid.UUID `json:"halaqah_musammi_id" validate:"omitempty"`
	HalaqahMarhalah  *string    `json:"halaqah_marhalah" validate:"omitempty,oneof=Mutawassithah Aliyah Jamiah"`
	HalaqahType      *string    `json:"halaqah_type" validate:"omitempty,max=60"`
	HalaqahWaktu     []string   `json:"halaqah_waktu" validate:"omitempty,min=1,dive,oneof=Shubuh Dhuha Ashar Isya"`
	HalaqahUrutan    *int       `json:"halaqah_urutan" validate:"omitempty,min=0"`
}

type MemberRequest struct {
	SantriID uuid.UUID `json:"santri_id" validate:"required"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type HalaqahResponse struct {
	HalaqahID        uuid.UUID `json:"halaqah_id"`
	HalaqahName      string    `json:"halaqah_name"`
	HalaqahMusammiID uuid.UUID `json:"halaqah_musammi_id"`
	MusammiName      string    `json:"musammi_name"`
	HalaqahMarhalah  string    `json:"halaqah_marhalah"`
	HalaqahType      string    `json:"halaqah_type"`
	HalaqahWaktu     []string  `json:"halaqah_waktu"`
	HalaqahUrutan    int       `json:"halaqah_urutan"`

	Members []santriDTO.SantriResponse `json:"members"`
}

func (r CreateHalaqahRequest) ToModel(madrasahID uuid.UUID) m.HalaqahModel {
	halaqahType := r.HalaqahType
	if halaqahType == "" {
		halaqahType = "Reguler"
	}
	return m.HalaqahModel{
		HalaqahMadrasahID: madrasahID,
		HalaqahName:       r.HalaqahName,
		HalaqahMusammiID:  r.HalaqahMusammiID,
		HalaqahMarhalah:   r.HalaqahMarhalah,
		HalaqahType:       halaqahType,
		HalaqahWaktu:      pq.StringArray(r.HalaqahWaktu),
		HalaqahUrutan:     r.HalaqahUrutan,
	}
}
