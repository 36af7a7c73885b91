package dto

import (
	m "madrasahku_backend/internals/features/madrasah/model"

	"github.com/google/uuid"
)

type UpdateMadrasahRequest struct {
	MadrasahName    *string `json:"madrasah_name" validate:"omitempty,min=3,max=120"`
	MadrasahAddress *string `json:"madrasah_address" validate:"omitempty,max=500"`
	MadrasahPhone   *string `json:"madrasah_phone" validate:"omitempty,max=30"`
}

type MadrasahResponse struct {
	MadrasahID      uuid.UUID `json:"madrasah_id"`
	MadrasahName    string    `json:"madrasah_name"`
	MadrasahSlug    string    `json:"madrasah_slug"`
	MadrasahAddress *string   `json:"madrasah_address,omitempty"`
	MadrasahPhone   *string   `json:"madrasah_phone,omitempty"`
}

func NewMadrasahResponse(mdl m.MadrasahModel) MadrasahResponse {
	return MadrasahResponse{
		MadrasahID:      mdl.MadrasahID,
		MadrasahName:    mdl.MadrasahName,
		MadrasahSlug:    mdl.MadrasahSlug,
		MadrasahAddress: mdl.MadrasahAddress,
		MadrasahPhone:   mdl.MadrasahPhone,
	}
}
