package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/people/santri/dto"
	"madrasahku_backend/internals/features/people/santri/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type SantriController struct {
	DB *gorm.DB
}

func NewSantriController(db *gorm.DB) *SantriController {
	return &SantriController{DB: db}
}

/* ===================== LIST ===================== */
// GET /santri?marhalah=&kelas=&search=&page=&per_page=
func (ctrl *SantriController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.SantriModel{}).
		Where("santri_madrasah_id = ?", madrasahID)

	if marhalah := strings.TrimSpace(c.Query("marhalah")); marhalah != "" {
		q = q.Where("santri_marhalah = ?", marhalah)
	}
	if kelas := strings.TrimSpace(c.Query("kelas")); kelas != "" {
		q = q.Where("santri_kelas = ?", kelas)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("santri_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SantriModel
	if err := q.Order("santri_marhalah ASC, santri_kelas ASC, santri_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.SantriResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewSantriResponse(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"santri":     resp,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* ===================== CREATE ===================== */
// POST /santri
func (ctrl *SantriController) Create(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSantriRequest
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

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Santri berhasil dibuat", dto.NewSantriResponse(mdl))
}

/* ===================== BULK CREATE (import) ===================== */
// POST /santri/bulk - payload hasil parse file di sisi klien
func (ctrl *SantriController) BulkCreate(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var reqs []dto.CreateSantriRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(reqs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Daftar santri kosong")
	}

	v := validator.New()
	rows := make([]model.SantriModel, 0, len(reqs))
	for _, req := range reqs {
		if err := v.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
		rows = append(rows, req.ToModel(madrasahID))
	}

	if err := ctrl.DB.Create(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Import santri berhasil", fiber.Map{"count": len(rows)})
}

/* ===================== UPDATE ===================== */
// PUT /santri/:id
func (ctrl *SantriController) Update(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// tenant tidak pernah ikut di-update
	updates := map[string]interface{}{}
	if req.SantriNIS != nil {
		updates["santri_nis"] = *req.SantriNIS
	}
	if req.SantriName != nil {
		updates["santri_name"] = *req.SantriName
	}
	if req.SantriMarhalah != nil {
		updates["santri_marhalah"] = *req.SantriMarhalah
	}
	if req.SantriKelas != nil {
		updates["santri_kelas"] = *req.SantriKelas
	}
	if req.SantriWaliName != nil {
		updates["santri_wali_name"] = *req.SantriWaliName
	}
	if req.SantriWaliPhone != nil {
		updates["santri_wali_phone"] = *req.SantriWaliPhone
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.SantriModel{}).
		Where("santri_id = ? AND santri_madrasah_id = ?", id, madrasahID).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	var mdl model.SantriModel
	if err := ctrl.DB.First(&mdl, "santri_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Santri diperbarui", dto.NewSantriResponse(mdl))
}

/* ===================== DELETE ===================== */
// DELETE /santri/:id
// Riwayat absensi sengaja TIDAK ikut dihapus; referensi yatim akan
// di-drop oleh layer rekap saat join.
func (ctrl *SantriController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("santri_id = ? AND santri_madrasah_id = ?", id, madrasahID).
		Delete(&model.SantriModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	return helper.Success(c, "Santri dihapus", nil)
}
