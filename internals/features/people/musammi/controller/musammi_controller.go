package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/people/musammi/dto"
	"madrasahku_backend/internals/features/people/musammi/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type MusammiController struct {
	DB *gorm.DB
}

func NewMusammiController(db *gorm.DB) *MusammiController {
	return &MusammiController{DB: db}
}

// GET /musammi?marhalah=&search=&page=&per_page=
func (ctrl *MusammiController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.MusammiModel{}).
		Where("musammi_madrasah_id = ?", madrasahID)

	if marhalah := strings.TrimSpace(c.Query("marhalah")); marhalah != "" {
		q = q.Where("musammi_marhalah = ?", marhalah)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("musammi_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MusammiModel
	if err := q.Order("musammi_marhalah ASC, musammi_kelas ASC, musammi_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.MusammiResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewMusammiResponse(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"musammi":    resp,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /musammi
func (ctrl *MusammiController) Create(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateMusammiRequest
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

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Musammi berhasil dibuat", dto.NewMusammiResponse(mdl))
}

// PUT /musammi/:id
func (ctrl *MusammiController) Update(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateMusammiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.MusammiNIP != nil {
		updates["musammi_nip"] = *req.MusammiNIP
	}
	if req.MusammiName != nil {
		updates["musammi_name"] = *req.MusammiName
	}
	if req.MusammiMarhalah != nil {
		updates["musammi_marhalah"] = *req.MusammiMarhalah
	}
	if req.MusammiKelas != nil {
		updates["musammi_kelas"] = *req.MusammiKelas
	}
	if req.MusammiPhone != nil {
		updates["musammi_phone"] = *req.MusammiPhone
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.MusammiModel{}).
		Where("musammi_id = ? AND musammi_madrasah_id = ?", id, madrasahID).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Musammi tidak ditemukan")
	}

	var mdl model.MusammiModel
	if err := ctrl.DB.First(&mdl, "musammi_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Musammi diperbarui", dto.NewMusammiResponse(mdl))
}

// DELETE /musammi/:id
func (ctrl *MusammiController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("musammi_id = ? AND musammi_madrasah_id = ?", id, madrasahID).
		Delete(&model.MusammiModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Musammi tidak ditemukan")
	}

	return helper.Success(c, "Musammi dihapus", nil)
}
