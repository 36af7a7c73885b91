package dto

import (
	"github.com/google/uuid"

	m "madrasahku_backend/internals/features/people/santri/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateSantriRequest struct {
	SantriNIS       *string `json:"santri_nis" validate:"omitempty,max=30"`
	SantriName      string  `json:"santri_name" validate:"required,min=2,max=120"`
	SantriMarhalah  string  `json:"santri_marhalah" validate:"required,oneof=Mutawassithah Aliyah Jamiah"`
	SantriKelas     string  `json:"santri_kelas" validate:"required,max=30"`
	SantriWaliName  *string `json:"santri_wali_name" validate:"omitempty,max=120"`
	SantriWaliPhone *string `json:"santri_wali_phone" validate:"omitempty,max=30"`
}

type UpdateSantriRequest struct {
	SantriNIS       *string `json:"santri_nis" validate:"omitempty,max=30"`
	SantriName      *string `json:"santri_name" validate:"omitempty,min=2,max=120"`
	SantriMarhalah  *string `json:"santri_marhalah" validate:"omitempty,oneof=Mutawassithah Aliyah Jamiah"`
	SantriKelas     *string `json:"santri_kelas" validate:"omitempty,max=30"`
	SantriWaliName  *string `json:"santri_wali_name" validate:"omitempty,max=120"`
	SantriWaliPhone *string `json:"santri_wali_phone" validate:"omitempty,max=30"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type SantriResponse struct {
	SantriID        uuid.UUID `json:"santri_id"`
	SantriNIS       *string   `json:"santri_nis,omitempty"`
	SantriName      string    `json:"santri_name"`
	SantriMarhalah  string    `json:"santri_marhalah"`
	SantriKelas     string    `json:"santri_kelas"`
	SantriWaliName  *string   `json:"santri_wali_name,omitempty"`
	SantriWaliPhone *string   `json:"santri_wali_phone,omitempty"`
}

func (r CreateSantriRequest) ToModel(madrasahID uuid.UUID) m.SantriModel {
	return m.SantriModel{
		SantriMadrasahID: madrasahID,
		SantriNIS:        r.SantriNIS,
		SantriName:       r.SantriName,
		SantriMarhalah:   r.SantriMarhalah,
		SantriKelas:      r.SantriKelas,
		SantriWaliName:   r.SantriWaliName,
		SantriWaliPhone:  r.SantriWaliPhone,
	}
}

func NewSantriResponse(mdl m.SantriModel) SantriResponse {
	return SantriResponse{
		SantriID:        mdl.SantriID,
		SantriNIS:       mdl.SantriNIS,
		SantriName:      mdl.SantriName,
		SantriMarhalah:  mdl.SantriMarhalah,
		SantriKelas:     mdl.SantriKelas,
		SantriWaliName:  mdl.SantriWaliName,
		SantriWaliPhone: mdl.SantriWaliPhone,
	}
}
