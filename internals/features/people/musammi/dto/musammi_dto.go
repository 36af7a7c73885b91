package dto

import (
	"github.com/google/uuid"

	m "madrasahku_backend/internals/features/people/musammi/model"
)

type CreateMusammiRequest struct {
	MusammiNIP      *string `json:"musammi_nip" validate:"omitempty,max=30"`
	MusammiName     string  `json:"musammi_name" validate:"required,min=2,max=120"`
	MusammiMarhalah string  `json:"musammi_marhalah" validate:"required,oneof=Mutawassithah Aliyah Jamiah"`
	MusammiKelas    string  `json:"musammi_kelas" validate:"required,max=30"`
	MusammiPhone    *string `json:"musammi_phone" validate:"omitempty,max=30"`
}

type UpdateMusammiRequest struct {
	MusammiNIP      *string `json:"musammi_nip" validate:"omitempty,max=30"`
	MusammiName     *string `json:"musammi_name" validate:"omitempty,min=2,max=120"`
	MusammiMarhalah *string `json:"musammi_marhalah" validate:"omitempty,oneof=Mutawassithah Aliyah Jamiah"`
	MusammiKelas    *string `json:"musammi_kelas" validate:"omitempty,max=30"`
	MusammiPhone    *string `json:"musammi_phone" validate:"omitempty,max=30"`
}

type MusammiResponse struct {
	MusammiID       uuid.UUID `json:"musammi_id"`
	MusammiNIP      *string   `json:"musammi_nip,omitempty"`
	MusammiName     string    `json:"musammi_name"`
	MusammiMarhalah string    `json:"musammi_marhalah"`
	MusammiKelas    string    `json:"musammi_kelas"`
	MusammiPhone    *string   `json:"musammi_phone,omitempty"`
}

func (r CreateMusammiRequest) ToModel(madrasahID uuid.UUID) m.MusammiModel {
	return m.MusammiModel{
		MusammiMadrasahID: madrasahID,
		MusammiNIP:        r.MusammiNIP,
		MusammiName:       r.MusammiName,
		MusammiMarhalah:   r.MusammiMarhalah,
		MusammiKelas:      r.MusammiKelas,
		MusammiPhone:      r.MusammiPhone,
	}
}

func NewMusammiResponse(mdl m.MusammiModel) MusammiResponse {
	return MusammiResponse{
		MusammiID:       mdl.MusammiID,
		MusammiNIP:      mdl.MusammiNIP,
		MusammiName:     mdl.MusammiName,
		MusammiMarhalah: mdl.MusammiMarhalah,
		MusammiKelas:    mdl.MusammiKelas,
		MusammiPhone:    mdl.MusammiPhone,
	}
}
