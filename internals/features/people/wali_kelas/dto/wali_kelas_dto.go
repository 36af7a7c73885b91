package dto

import (
	"github.com/google/uuid"

	m "madrasahku_backend/internals/features/people/wali_kelas/model"
)

type CreateWaliKelasRequest struct {
	WaliKelasName     string  `json:"wali_kelas_name" validate:"required,min=2,max=120"`
	WaliKelasMarhalah string  `json:"wali_kelas_marhalah" validate:"required,oneof=Mutawassithah Aliyah Jamiah"`
	WaliKelasKelas    string  `json:"wali_kelas_kelas" validate:"required,max=30"`
	WaliKelasPhone    *string `json:"wali_kelas_phone" validate:"omitempty,max=30"`
}

type UpdateWaliKelasRequest struct {
	WaliKelasName     *string `json:"wali_kelas_name" validate:"omitempty,min=2,max=120"`
	WaliKelasMarhalah *string `json:"wali_kelas_marhalah" validate:"omitempty,oneof=Mutawassithah Aliyah Jamiah"`
	WaliKelasKelas    *string `json:"wali_kelas_kelas" validate:"omitempty,max=30"`
	WaliKelasPhone    *string `json:"wali_kelas_phone" validate:"omitempty,max=30"`
}

type WaliKelasResponse struct {
	WaliKelasID       uuid.UUID `json:"wali_kelas_id"`
	WaliKelasName     string    `json:"wali_kelas_name"`
	WaliKelasMarhalah string    `json:"wali_kelas_marhalah"`
	WaliKelasKelas    string    `json:"wali_kelas_kelas"`
	WaliKelasPhone    *string   `json:"wali_kelas_phone,omitempty"`
}

func (r CreateWaliKelasRequest) ToModel(madrasahID uuid.UUID) m.WaliKelasModel {
	return m.WaliKelasModel{
		WaliKelasMadrasahID: madrasahID,
		WaliKelasName:       r.WaliKelasName,
		WaliKelasMarhalah:   r.WaliKelasMarhalah,
		WaliKelasKelas:      r.WaliKelasKelas,
		WaliKelasPhone:      r.WaliKelasPhone,
	}
}

func NewWaliKelasResponse(mdl m.WaliKelasModel) WaliKelasResponse {
	return WaliKelasResponse{
		WaliKelasID:       mdl.WaliKelasID,
		WaliKelasName:     mdl.WaliKelasName,
		WaliKelasMarhalah: mdl.WaliKelasMarhalah,
		WaliKelasKelas:    mdl.WaliKelasKelas,
		WaliKelasPhone:    mdl.WaliKelasPhone,
	}
}
