package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/people/wali_kelas/dto"
	"madrasahku_backend/internals/features/people/wali_kelas/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type WaliKelasController struct {
	DB *gorm.DB
}

func NewWaliKelasController(db *gorm.DB) *WaliKelasController {
	return &WaliKelasController{DB: db}
}

// GET /wali-kelas?marhalah=&kelas=
func (ctrl *WaliKelasController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.WaliKelasModel{}).
		Where("wali_kelas_madrasah_id = ?", madrasahID)

	if marhalah := strings.TrimSpace(c.Query("marhalah")); marhalah != "" {
		q = q.Where("wali_kelas_marhalah = ?", marhalah)
	}
	if kelas := strings.TrimSpace(c.Query("kelas")); kelas != "" {
		q = q.Where("wali_kelas_kelas = ?", kelas)
	}

	var rows []model.WaliKelasModel
	if err := q.Order("wali_kelas_marhalah ASC, wali_kelas_kelas ASC, wali_kelas_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.WaliKelasResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewWaliKelasResponse(r))
	}
	return helper.Success(c, "OK", resp)
}

// POST /wali-kelas
func (ctrl *WaliKelasController) Create(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateWaliKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel(madrasahID)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Wali kelas berhasil dibuat", dto.NewWaliKelasResponse(mdl))
}

// PUT /wali-kelas/:id
func (ctrl *WaliKelasController) Update(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateWaliKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.WaliKelasName != nil {
		updates["wali_kelas_name"] = *req.WaliKelasName
	}
	if req.WaliKelasMarhalah != nil {
		updates["wali_kelas_marhalah"] = *req.WaliKelasMarhalah
	}
	if req.WaliKelasKelas != nil {
		updates["wali_kelas_kelas"] = *req.WaliKelasKelas
	}
	if req.WaliKelasPhone != nil {
		updates["wali_kelas_phone"] = *req.WaliKelasPhone
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.WaliKelasModel{}).
		Where("wali_kelas_id = ? AND wali_kelas_madrasah_id = ?", id, madrasahID).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Wali kelas tidak ditemukan")
	}

	var mdl model.WaliKelasModel
	if err := ctrl.DB.First(&mdl, "wali_kelas_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Wali kelas diperbarui", dto.NewWaliKelasResponse(mdl))
}

// DELETE /wali-kelas/:id
func (ctrl *WaliKelasController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("wali_kelas_id = ? AND wali_kelas_madrasah_id = ?", id, madrasahID).
		Delete(&model.WaliKelasModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Wali kelas tidak ditemukan")
	}

	return helper.Success(c, "Wali kelas dihapus", nil)
}
