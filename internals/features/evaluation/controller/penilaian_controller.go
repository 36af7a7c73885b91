package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"madrasahku_backend/internals/features/evaluation/dto"
	"madrasahku_backend/internals/features/evaluation/model"
	"madrasahku_backend/internals/features/evaluation/service"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type PenilaianController struct {
	DB *gorm.DB
}

func NewPenilaianController(db *gorm.DB) *PenilaianController {
	return &PenilaianController{DB: db}
}

/* ===================== RAPOR ===================== */
// GET /penilaian?bulan=&santri_id=
func (ctrl *PenilaianController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("penilaian_madrasah_id = ?", madrasahID)
	if bulan := strings.TrimSpace(c.Query("bulan")); bulan != "" {
		q = q.Where("penilaian_bulan = ?", bulan)
	}
	if sid := strings.TrimSpace(c.Query("santri_id")); sid != "" {
		santriID, err := uuid.Parse(sid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("penilaian_santri_id = ?", santriID)
	}

	var rows []model.PenilaianModel
	if err := q.Order("penilaian_bulan DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// PUT /penilaian - upsert per (santri, bulan)
func (ctrl *PenilaianController) Upsert(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertPenilaianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel(madrasahID)
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "penilaian_santri_id"},
			{Name: "penilaian_bulan"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"penilaian_tahfizh", "penilaian_tilawah", "penilaian_adab",
			"penilaian_catatan_musammi", "penilaian_catatan_wali_kelas", "penilaian_catatan_madrasah",
			"penilaian_updated_at",
		}),
	}).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Penilaian tersimpan", row)
}

// DELETE /penilaian/:id
func (ctrl *PenilaianController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("penilaian_id = ? AND penilaian_madrasah_id = ?", id, madrasahID).
		Delete(&model.PenilaianModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Penilaian tidak ditemukan")
	}
	return helper.Success(c, "Penilaian dihapus", nil)
}

/* ===================== OPSI SKALA ===================== */
// GET /penilaian/opsi - skala efektif per kategori (kustom atau bawaan)
func (ctrl *PenilaianController) ListOpsi(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.OpsiPenilaianModel
	if err := ctrl.DB.Where("opsi_madrasah_id = ?", madrasahID).
		Order("opsi_kategori ASC, opsi_skor DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	scales := fiber.Map{}
	for _, kategori := range service.Kategori {
		scales[kategori] = service.ScaleFor(rows, kategori)
	}

	return helper.Success(c, "OK", fiber.Map{
		"opsi":  rows,
		"skala": scales,
	})
}

// POST /penilaian/opsi
func (ctrl *PenilaianController) CreateOpsi(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateOpsiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := ctrl.DB.Model(&model.OpsiPenilaianModel{}).
		Where("opsi_madrasah_id = ? AND opsi_kategori = ? AND opsi_label = ?",
			madrasahID, req.OpsiKategori, req.OpsiLabel).
		Count(&dup).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Label opsi sudah ada untuk kategori ini")
	}

	row := req.ToModel(madrasahID)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Opsi penilaian ditambahkan", row)
}

// DELETE /penilaian/opsi/:id
func (ctrl *PenilaianController) DeleteOpsi(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("opsi_id = ? AND opsi_madrasah_id = ?", id, madrasahID).
		Delete(&model.OpsiPenilaianModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Opsi tidak ditemukan")
	}
	return helper.Success(c, "Opsi dihapus", nil)
}
