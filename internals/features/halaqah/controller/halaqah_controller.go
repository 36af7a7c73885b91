package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	absensiModel "madrasahku_backend/internals/features/attendance/model"
	"madrasahku_backend/internals/features/halaqah/dto"
	"madrasahku_backend/internals/features/halaqah/model"
	musammiModel "madrasahku_backend/internals/features/people/musammi/model"
	santriDTO "madrasahku_backend/internals/features/people/santri/dto"
	santriModel "madrasahku_backend/internals/features/people/santri/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type HalaqahController struct {
	DB *gorm.DB
}

func NewHalaqahController(db *gorm.DB) *HalaqahController {
	return &HalaqahController{DB: db}
}

/* ===================== LIST ===================== */
// GET /halaqah?marhalah=&waktu=
// Halaqah yang musammi-nya tidak lagi resolvable tidak ikut dirender.
func (ctrl *HalaqahController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("halaqah_madrasah_id = ?", madrasahID)
	if marhalah := c.Query("marhalah"); marhalah != "" {
		q = q.Where("halaqah_marhalah = ?", marhalah)
	}
	if waktu := c.Query("waktu"); waktu != "" {
		q = q.Where("? = ANY(halaqah_waktu)", waktu)
	}

	var halaqahRows []model.HalaqahModel
	if err := q.Order("halaqah_urutan ASC, halaqah_name ASC").Find(&halaqahRows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	resp, err := ctrl.buildResponses(madrasahID, halaqahRows)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", resp)
}

// buildResponses join musammi + anggota di memori; entri yang referensinya
// tidak resolvable di-skip, bukan error.
func (ctrl *HalaqahController) buildResponses(madrasahID uuid.UUID, halaqahRows []model.HalaqahModel) ([]dto.HalaqahResponse, error) {
	var musammiRows []musammiModel.MusammiModel
	if err := ctrl.DB.Where("musammi_madrasah_id = ?", madrasahID).Find(&musammiRows).Error; err != nil {
		return nil, err
	}
	musammiByID := make(map[uuid.UUID]musammiModel.MusammiModel, len(musammiRows))
	for _, m := range musammiRows {
		musammiByID[m.MusammiID] = m
	}

	var links []model.HalaqahSantriModel
	if err := ctrl.DB.Where("halaqah_santri_madrasah_id = ?", madrasahID).Find(&links).Error; err != nil {
		return nil, err
	}

	var santriRows []santriModel.SantriModel
	if err := ctrl.DB.Where("santri_madrasah_id = ?", madrasahID).Find(&santriRows).Error; err != nil {
		return nil, err
	}
	santriByID := make(map[uuid.UUID]santriModel.SantriModel, len(santriRows))
	for _, s := range santriRows {
		santriByID[s.SantriID] = s
	}

	membersByHalaqah := make(map[uuid.UUID][]santriDTO.SantriResponse)
	for _, link := range links {
		s, ok := santriByID[link.HalaqahSantriSantriID]
		if !ok {
			continue // anggota yatim (santri sudah dihapus)
		}
		membersByHalaqah[link.HalaqahSantriHalaqahID] = append(
			membersByHalaqah[link.HalaqahSantriHalaqahID], santriDTO.NewSantriResponse(s))
	}

	resp := make([]dto.HalaqahResponse, 0, len(halaqahRows))
	for _, h := range halaqahRows {
		mus, ok := musammiByID[h.HalaqahMusammiID]
		if !ok {
			continue // halaqah tanpa musammi dianggap tidak valid untuk listing
		}
		members := membersByHalaqah[h.HalaqahID]
		if members == nil {
			members = []santriDTO.SantriResponse{}
		}
		resp = append(resp, dto.HalaqahResponse{
			HalaqahID:        h.HalaqahID,
			HalaqahName:      h.HalaqahName,
			HalaqahMusammiID: h.HalaqahMusammiID,
			MusammiName:      mus.MusammiName,
			HalaqahMarhalah:  h.HalaqahMarhalah,
			HalaqahType:      h.HalaqahType,
			HalaqahWaktu:     []string(h.HalaqahWaktu),
			HalaqahUrutan:    h.HalaqahUrutan,
			Members:          members,
		})
	}
	return resp, nil
}

/* ===================== CREATE ===================== */
// POST /halaqah
func (ctrl *HalaqahController) Create(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateHalaqahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// musammi wajib ada di tenant yang sama
	var count int64
	if err := ctrl.DB.Model(&musammiModel.MusammiModel{}).
		Where("musammi_id = ? AND musammi_madrasah_id = ?", req.HalaqahMusammiID, madrasahID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Musammi tidak ditemukan")
	}

	mdl := req.ToModel(madrasahID)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Halaqah berhasil dibuat", mdl)
}

/* ===================== UPDATE ===================== */
// PUT /halaqah/:id
func (ctrl *HalaqahController) Update(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateHalaqahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.HalaqahName != nil {
		updates["halaqah_name"] = *req.HalaqahName
	}
	if req.HalaqahMusammiID != nil {
		updates["halaqah_musammi_id"] = *req.HalaqahMusammiID
	}
	if req.HalaqahMarhalah != nil {
		updates["halaqah_marhalah"] = *req.HalaqahMarhalah
	}
	if req.HalaqahType != nil {
		updates["halaqah_type"] = *req.HalaqahType
	}
	if len(req.HalaqahWaktu) > 0 {
		updates["halaqah_waktu"] = pq.StringArray(req.HalaqahWaktu)
	}
	if req.HalaqahUrutan != nil {
		updates["halaqah_urutan"] = *req.HalaqahUrutan
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.HalaqahModel{}).
		Where("halaqah_id = ? AND halaqah_madrasah_id = ?", id, madrasahID).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
	}

	return helper.Success(c, "Halaqah diperbarui", nil)
}

/* ===================== DELETE (cascade) ===================== */
// DELETE /halaqah/:id
// Kontrak cascade: hapus link keanggotaan + seluruh absensi halaqah ini.
func (ctrl *HalaqahController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("halaqah_id = ? AND halaqah_madrasah_id = ?", id, madrasahID).
			Delete(&model.HalaqahModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("halaqah_santri_halaqah_id = ? AND halaqah_santri_madrasah_id = ?", id, madrasahID).
			Delete(&model.HalaqahSantriModel{}).Error; err != nil {
			return err
		}
		return tx.Where("absensi_halaqah_id = ? AND absensi_madrasah_id = ?", id, madrasahID).
			Delete(&absensiModel.AbsensiModel{}).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Halaqah beserta absensinya dihapus", nil)
}

/* ===================== MEMBERSHIP ===================== */
// POST /halaqah/:id/members
func (ctrl *HalaqahController) AddMember(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	halaqahID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var exists int64
	if err := ctrl.DB.Model(&model.HalaqahSantriModel{}).
		Where("halaqah_santri_halaqah_id = ? AND halaqah_santri_santri_id = ?", halaqahID, req.SantriID).
		Count(&exists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists > 0 {
		return helper.Error(c, fiber.StatusConflict, "Santri sudah terdaftar di halaqah ini")
	}

	link := model.HalaqahSantriModel{
		HalaqahSantriMadrasahID: madrasahID,
		HalaqahSantriHalaqahID:  halaqahID,
		HalaqahSantriSantriID:   req.SantriID,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Santri ditambahkan ke halaqah", link)
}

// DELETE /halaqah/:id/members/:santri_id
func (ctrl *HalaqahController) RemoveMember(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	halaqahID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	santriID, err := uuid.Parse(c.Params("santri_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Santri ID tidak valid")
	}

	res := ctrl.DB.Where(
		"halaqah_santri_halaqah_id = ? AND halaqah_santri_santri_id = ? AND halaqah_santri_madrasah_id = ?",
		halaqahID, santriID, madrasahID,
	).Delete(&model.HalaqahSantriModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Keanggotaan tidak ditemukan")
	}

	return helper.Success(c, "Santri dikeluarkan dari halaqah", nil)
}
