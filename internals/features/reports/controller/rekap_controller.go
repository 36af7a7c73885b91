package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	attendance "madrasahku_backend/internals/features/attendance/service"
	"madrasahku_backend/internals/features/reports/service"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type RekapController struct {
	DB *gorm.DB
}

func NewRekapController(db *gorm.DB) *RekapController {
	return &RekapController{DB: db}
}

func (ctrl *RekapController) loadEntries(c *fiber.Ctx) ([]attendance.Entry, error) {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return nil, err
	}
	ds, err := service.NewGateway(ctrl.DB, madrasahID).LoadAll(c.UserContext())
	if err != nil {
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return ds.Absensi, nil
}

// filterByRange menyaring entri pada [start..end]; batas kosong berarti
// tak berbatas di sisi itu.
func filterByRange(entries []attendance.Entry, start, end string) []attendance.Entry {
	out := make([]attendance.Entry, 0, len(entries))
	for _, e := range entries {
		if start != "" && e.Tanggal < start {
			continue
		}
		if end != "" && e.Tanggal > end {
			continue
		}
		out = append(out, e)
	}
	return out
}

func rangeQuery(c *fiber.Ctx) (string, string) {
	return strings.TrimSpace(c.Query("start")), strings.TrimSpace(c.Query("end"))
}

/* ===================== REKAP TABEL ===================== */
// GET /rekap/person?start=&end=
func (ctrl *RekapController) PerPerson(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}
	start, end := rangeQuery(c)
	return helper.Success(c, "OK", attendance.RekapPerPerson(filterByRange(entries, start, end)))
}

// GET /rekap/kelas?start=&end=
func (ctrl *RekapController) PerKelas(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}
	start, end := rangeQuery(c)
	return helper.Success(c, "OK", attendance.RekapPerKelas(filterByRange(entries, start, end)))
}

// GET /rekap/waktu?start=&end=
func (ctrl *RekapController) PerWaktu(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}
	start, end := rangeQuery(c)
	return helper.Success(c, "OK", attendance.RekapPerWaktu(filterByRange(entries, start, end)))
}

/* ===================== DASHBOARD ===================== */
// GET /rekap/dashboard - tanggal tampilan (hari ini atau terbaru),
// rekap per waktu tanggal itu, plus tren 7 hari.
func (ctrl *RekapController) Dashboard(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}

	now := time.Now()
	today := now.Format(constants.FormatTanggal)
	tanggal, isToday := attendance.TodayOrLatest(entries, today)

	dayEntries := filterByRange(entries, tanggal, tanggal)
	perWaktu := attendance.RekapPerWaktu(dayEntries)

	var total attendance.StatusCount
	for _, row := range perWaktu {
		total.Hadir += row.Hadir
		total.Izin += row.Izin
		total.Sakit += row.Sakit
		total.Alpa += row.Alpa
		total.Terlambat += row.Terlambat
		total.Total += row.Total
	}

	return helper.Success(c, "OK", fiber.Map{
		"tanggal":    tanggal,
		"is_today":   isToday,
		"total":      total,
		"per_waktu":  perWaktu,
		"tren_7hari": attendance.WeeklySeries(entries, now),
	})
}

// GET /rekap/mingguan - 7 bucket harian berakhir hari ini
func (ctrl *RekapController) Mingguan(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", attendance.WeeklySeries(entries, time.Now()))
}

// GET /rekap/tren?start=&end= - satu bucket per hari kalender
func (ctrl *RekapController) Tren(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}
	start, end := rangeQuery(c)
	return helper.Success(c, "OK", attendance.RangeSeries(entries, start, end, time.Now()))
}
