package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"madrasahku_backend/internals/features/progress/dto"
	"madrasahku_backend/internals/features/progress/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type HafalanController struct {
	DB *gorm.DB
}

func NewHafalanController(db *gorm.DB) *HafalanController {
	return &HafalanController{DB: db}
}

/* ===================== LIST ===================== */
// GET /hafalan?santri_id=&bulan=&dimensi=
func (ctrl *HafalanController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("hafalan_madrasah_id = ?", madrasahID)
	if sid := strings.TrimSpace(c.Query("santri_id")); sid != "" {
		santriID, err := uuid.Parse(sid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("hafalan_santri_id = ?", santriID)
	}
	if bulan := strings.TrimSpace(c.Query("bulan")); bulan != "" {
		q = q.Where("hafalan_bulan = ?", bulan)
	}
	if dimensi := strings.TrimSpace(c.Query("dimensi")); dimensi != "" {
		q = q.Where("hafalan_dimensi = ?", dimensi)
	}

	var rows []model.HafalanModel
	if err := q.Order("hafalan_bulan DESC, hafalan_dimensi ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

/* ===================== BATCH UPSERT ===================== */
// POST /hafalan/batch - kunci upsert (santri, bulan, dimensi)
func (ctrl *HafalanController) BatchUpsert(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var reqs []dto.UpsertHafalanRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(reqs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Daftar hafalan kosong")
	}

	v := validator.New()
	rows := make([]model.HafalanModel, 0, len(reqs))
	for _, req := range reqs {
		if err := v.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
		rows = append(rows, req.ToModel(madrasahID))
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "hafalan_santri_id"},
			{Name: "hafalan_bulan"},
			{Name: "hafalan_dimensi"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"hafalan_nilai", "hafalan_updated_at"}),
	}).Create(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Progres hafalan tersimpan", fiber.Map{"count": len(rows)})
}

/* ===================== DELETE ===================== */
// DELETE /hafalan/:id
func (ctrl *HafalanController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("hafalan_id = ? AND hafalan_madrasah_id = ?", id, madrasahID).
		Delete(&model.HafalanModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Entri hafalan tidak ditemukan")
	}
	return helper.Success(c, "Entri hafalan dihapus", nil)
}

// POST /hafalan/delete-period - hapus semua entri (bulan, dimensi)
func (ctrl *HafalanController) DeleteByPeriod(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.DeleteHafalanPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Where(
		"hafalan_madrasah_id = ? AND hafalan_bulan = ? AND hafalan_dimensi = ?",
		madrasahID, req.HafalanBulan, req.HafalanDimensi,
	).Delete(&model.HafalanModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}

	return helper.Success(c, "Entri periode dihapus", fiber.Map{"deleted": res.RowsAffected})
}

/* ===================== TARGET KELAS ===================== */
// GET /hafalan/target
func (ctrl *HafalanController) ListTarget(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.TargetKelasModel
	if err := ctrl.DB.Where("target_madrasah_id = ?", madrasahID).
		Order("target_marhalah ASC, target_kelas ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// PUT /hafalan/target - upsert per (marhalah, kelas)
func (ctrl *HafalanController) UpsertTarget(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertTargetKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel(madrasahID)
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "target_madrasah_id"},
			{Name: "target_marhalah"},
			{Name: "target_kelas"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"target_hafalan_awal", "target_hafalan_akhir",
			"target_murojaah_awal", "target_murojaah_akhir",
			"target_ziyadah_awal", "target_ziyadah_akhir",
			"target_updated_at",
		}),
	}).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Target kelas tersimpan", row)
}
