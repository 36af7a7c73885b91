package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/madrasah/dto"
	"madrasahku_backend/internals/features/madrasah/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type MadrasahController struct {
	DB *gorm.DB
}

func NewMadrasahController(db *gorm.DB) *MadrasahController {
	return &MadrasahController{DB: db}
}

// GET /profile - profil madrasah milik token
func (ctrl *MadrasahController) GetProfile(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var mdl model.MadrasahModel
	if err := ctrl.DB.First(&mdl, "madrasah_id = ?", madrasahID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Madrasah tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.NewMadrasahResponse(mdl))
}

// PUT /profile
func (ctrl *MadrasahController) UpdateProfile(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMadrasahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.MadrasahName != nil {
		updates["madrasah_name"] = *req.MadrasahName

		// Slug ikut nama, dijaga unik antar madrasah
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, "madrasahs", "madrasah_slug", *req.MadrasahName, "madrasah_id", madrasahID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		updates["madrasah_slug"] = slug
	}
	if req.MadrasahAddress != nil {
		updates["madrasah_address"] = *req.MadrasahAddress
	}
	if req.MadrasahPhone != nil {
		updates["madrasah_phone"] = *req.MadrasahPhone
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&model.MadrasahModel{}).
		Where("madrasah_id = ?", madrasahID).
		Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var mdl model.MadrasahModel
	if err := ctrl.DB.First(&mdl, "madrasah_id = ?", madrasahID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Profil madrasah diperbarui", dto.NewMadrasahResponse(mdl))
}
