package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/attendance/dto"
	"madrasahku_backend/internals/features/attendance/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type AbsensiController struct {
	DB *gorm.DB
}

func NewAbsensiController(db *gorm.DB) *AbsensiController {
	return &AbsensiController{DB: db}
}

/* ===================== LIST ===================== */
// GET /absensi?tanggal=&waktu=&role=&halaqah_id=&page=&per_page=
func (ctrl *AbsensiController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.AbsensiModel{}).
		Where("absensi_madrasah_id = ?", madrasahID)

	if tanggal := strings.TrimSpace(c.Query("tanggal")); tanggal != "" {
		q = q.Where("absensi_tanggal = ?", tanggal)
	}
	if waktu := strings.TrimSpace(c.Query("waktu")); waktu != "" {
		q = q.Where("absensi_waktu = ?", waktu)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("absensi_role = ?", role)
	}
	if hid := strings.TrimSpace(c.Query("halaqah_id")); hid != "" {
		halaqahID, err := uuid.Parse(hid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "halaqah_id tidak valid")
		}
		q = q.Where("absensi_halaqah_id = ?", halaqahID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AbsensiModel
	if err := q.Order("absensi_tanggal DESC, absensi_waktu ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"absensi":    rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* ===================== CREATE ===================== */
// POST /absensi
func (ctrl *AbsensiController) Create(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAbsensiRequest
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

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Absensi tercatat", mdl)
}

/* ===================== BATCH CREATE ===================== */
// POST /absensi/batch - satu sesi halaqah sekali simpan
func (ctrl *AbsensiController) BatchCreate(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var reqs []dto.CreateAbsensiRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(reqs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Daftar absensi kosong")
	}

	v := validator.New()
	rows := make([]model.AbsensiModel, 0, len(reqs))
	for _, req := range reqs {
		if err := v.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
		rows = append(rows, req.ToModel(madrasahID))
	}

	if err := ctrl.DB.Create(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Absensi sesi tercatat", fiber.Map{"count": len(rows)})
}

/* ===================== UPDATE ===================== */
// PATCH /absensi/:id
func (ctrl *AbsensiController) Update(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAbsensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.AbsensiStatus != nil {
		updates["absensi_status"] = *req.AbsensiStatus
	}
	if req.AbsensiWaktu != nil {
		updates["absensi_waktu"] = *req.AbsensiWaktu
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.AbsensiModel{}).
		Where("absensi_id = ? AND absensi_madrasah_id = ?", id, madrasahID).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}

	return helper.Success(c, "Absensi diperbarui", nil)
}

/* ===================== DELETE ===================== */
// DELETE /absensi/:id
func (ctrl *AbsensiController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("absensi_id = ? AND absensi_madrasah_id = ?", id, madrasahID).
		Delete(&model.AbsensiModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}

	return helper.Success(c, "Absensi dihapus", nil)
}

/* ===================== BATCH DELETE ===================== */
// POST /absensi/batch-delete - hapus satu sesi penuh (tanggal + waktu)
func (ctrl *AbsensiController) BatchDelete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BatchDeleteAbsensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Where(
		"absensi_madrasah_id = ? AND absensi_tanggal = ? AND absensi_waktu = ?",
		madrasahID, req.AbsensiTanggal, req.AbsensiWaktu,
	).Delete(&model.AbsensiModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}

	return helper.Success(c, "Absensi sesi dihapus", fiber.Map{"deleted": res.RowsAffected})
}
