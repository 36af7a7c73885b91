package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	attendance "madrasahku_backend/internals/features/attendance/service"
	evaluation "madrasahku_backend/internals/features/evaluation/service"
	"madrasahku_backend/internals/features/progress/model"
	progress "madrasahku_backend/internals/features/progress/service"
	"madrasahku_backend/internals/features/reports/dto"
	"madrasahku_backend/internals/features/reports/service"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type LaporanController struct {
	DB *gorm.DB
}

func NewLaporanController(db *gorm.DB) *LaporanController {
	return &LaporanController{DB: db}
}

func (ctrl *LaporanController) loadDataset(c *fiber.Ctx) (*service.Dataset, error) {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return nil, err
	}
	ds, err := service.NewGateway(ctrl.DB, madrasahID).LoadAll(c.UserContext())
	if err != nil {
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return ds, nil
}

// santriReportInput merakit bahan laporan satu santri satu bulan dari
// dataset: counter absensi, progres hafalan, penilaian, dan catatan.
func santriReportInput(ds *service.Dataset, s santriInfo, bulan string) service.LaporanSantriInput {
	in := service.LaporanSantriInput{
		MadrasahName: ds.MadrasahName,
		SantriName:   s.name,
		WaliName:     s.waliName,
		Bulan:        bulan,
		Absensi:      attendance.MonthlyStats(ds.Absensi, s.id, bulan),
		TotalHafalan: progress.WithUnit(progress.LatestValue(ds.Hafalan, s.id, constants.DimensiHafalan), "Juz"),
		// Rata-rata dihitung atas seluruh entri sampai bulan laporan
		RataMurojaah: progress.WithUnit(progress.AverageValue(ds.Hafalan, s.id, constants.DimensiMurojaah, "", bulan), "Halaman"),
		RataZiyadah:  progress.WithUnit(progress.AverageValue(ds.Hafalan, s.id, constants.DimensiZiyadah, "", bulan), "Halaman"),
		Tahfizh:      progress.NoData,
		Tilawah:      progress.NoData,
		Adab:         progress.NoData,
	}
	for _, p := range ds.Penilaian {
		if p.PenilaianSantriID != s.id || p.PenilaianBulan != bulan {
			continue
		}
		in.Tahfizh = evaluation.RatingOrDash(p.PenilaianTahfizh)
		in.Tilawah = evaluation.RatingOrDash(p.PenilaianTilawah)
		in.Adab = evaluation.RatingOrDash(p.PenilaianAdab)
		in.CatatanMusammi = p.PenilaianCatatanMusammi
		in.CatatanWaliKelas = p.PenilaianCatatanWaliKelas
		in.CatatanMadrasah = p.PenilaianCatatanMadrasah
		break
	}
	return in
}

type santriInfo struct {
	id        uuid.UUID
	name      string
	waliName  string
	waliPhone *string
}

func pickSantri(ds *service.Dataset, id uuid.UUID) (santriInfo, bool) {
	s, ok := ds.FindSantri(id)
	if !ok {
		return santriInfo{}, false
	}
	out := santriInfo{id: s.SantriID, name: s.SantriName, waliPhone: s.SantriWaliPhone}
	if s.SantriWaliName != nil {
		out.waliName = *s.SantriWaliName
	}
	return out, true
}

/* ===================== LAPORAN WALI SANTRI ===================== */
// POST /laporan/santri
func (ctrl *LaporanController) Santri(c *fiber.Ctx) error {
	var req dto.LaporanSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ds, err := ctrl.loadDataset(c)
	if err != nil {
		return err
	}
	s, ok := pickSantri(ds, req.SantriID)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	text := service.FormatLaporanSantri(santriReportInput(ds, s, req.Bulan))
	return helper.Success(c, "OK", service.BuildResult(text, s.waliPhone))
}

// POST /laporan/santri/lengkap - varian dengan catatan khusus
func (ctrl *LaporanController) SantriLengkap(c *fiber.Ctx) error {
	var req dto.LaporanSantriLengkapRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ds, err := ctrl.loadDataset(c)
	if err != nil {
		return err
	}
	s, ok := pickSantri(ds, req.SantriID)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	text := service.FormatLaporanSantriLengkap(service.LaporanSantriLengkapInput{
		LaporanSantriInput: santriReportInput(ds, s, req.Bulan),
		CatatanKhusus:      req.Catatan,
	})
	return helper.Success(c, "OK", service.BuildResult(text, s.waliPhone))
}

/* ===================== LAPORAN KELAS ===================== */
// POST /laporan/kelas - ringkasan untuk wali kelas
func (ctrl *LaporanController) Kelas(c *fiber.Ctx) error {
	var req dto.LaporanKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	end := req.EndTanggal
	if end == "" {
		end = time.Now().Format(constants.FormatTanggal)
	}
	start := req.StartTanggal
	if start == "" {
		start = end
	}

	ds, err := ctrl.loadDataset(c)
	if err != nil {
		return err
	}

	// Counter kelas diambil dari rekap per kelas atas entri dalam rentang
	var total attendance.StatusCount
	scoped := filterByRange(ds.Absensi, start, end)
	for _, row := range attendance.RekapPerKelas(scoped) {
		if row.Marhalah == req.Marhalah && row.Kelas == req.Kelas {
			total = row.StatusCount
			break
		}
	}

	text := service.FormatLaporanKelas(service.LaporanKelasInput{
		MadrasahName: ds.MadrasahName,
		Marhalah:     req.Marhalah,
		Kelas:        req.Kelas,
		StartTanggal: start,
		EndTanggal:   end,
		Absensi:      total,
		Problem:      attendance.ProblemSantri(ds.Absensi, req.Marhalah, req.Kelas, start, end),
	})

	var phone *string
	if w, ok := ds.FindWaliKelas(req.Marhalah, req.Kelas); ok {
		phone = w.WaliKelasPhone
	}
	return helper.Success(c, "OK", service.BuildResult(text, phone))
}

/* ===================== HAFALAN VS TARGET ===================== */

// targetFor mencari target progres satu (marhalah, kelas); dipakai layar
// perbandingan, tidak pernah ditegakkan.
func targetFor(targets []model.TargetKelasModel, marhalah, kelas string) *model.TargetKelasModel {
	for i := range targets {
		if targets[i].TargetMarhalah == marhalah && targets[i].TargetKelas == kelas {
			return &targets[i]
		}
	}
	return nil
}

// GET /laporan/target?marhalah=&kelas= - target untuk satu kelas
func (ctrl *LaporanController) Target(c *fiber.Ctx) error {
	ds, err := ctrl.loadDataset(c)
	if err != nil {
		return err
	}
	t := targetFor(ds.Target, c.Query("marhalah"), c.Query("kelas"))
	if t == nil {
		return helper.Error(c, fiber.StatusNotFound, "Target kelas belum diatur")
	}
	return helper.Success(c, "OK", t)
}
