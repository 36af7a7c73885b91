package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	attendance "madrasahku_backend/internals/features/attendance/service"
	"madrasahku_backend/internals/features/exports/service"
	reports "madrasahku_backend/internals/features/reports/service"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

func (ctrl *ExportController) loadEntries(c *fiber.Ctx) ([]attendance.Entry, error) {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return nil, err
	}
	ds, err := reports.NewGateway(ctrl.DB, madrasahID).LoadAll(c.UserContext())
	if err != nil {
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	entries := ds.Absensi
	if start := strings.TrimSpace(c.Query("start")); start != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.Tanggal >= start {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if end := strings.TrimSpace(c.Query("end")); end != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.Tanggal <= end {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	return entries, nil
}

// buildTable memilih bentuk rekap dari path param :jenis.
func buildTable(jenis string, entries []attendance.Entry) (service.Table, error) {
	switch jenis {
	case "person":
		return service.RekapPersonTable(attendance.RekapPerPerson(entries)), nil
	case "kelas":
		return service.RekapKelasTable(attendance.RekapPerKelas(entries)), nil
	case "waktu":
		return service.RekapWaktuTable(attendance.RekapPerWaktu(entries)), nil
	case "detail":
		return service.DetailTable(entries), nil
	}
	return service.Table{}, fmt.Errorf("jenis ekspor tidak dikenal: %s", jenis)
}

/* ===================== PAYLOAD JSON ===================== */
// GET /export/:jenis?start=&end= - pasangan (headers, rows)
func (ctrl *ExportController) Payload(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}
	table, err := buildTable(c.Params("jenis"), entries)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "OK", table)
}

/* ===================== FILE XLSX ===================== */
// GET /export/:jenis/xlsx?start=&end=
func (ctrl *ExportController) Xlsx(c *fiber.Ctx) error {
	entries, err := ctrl.loadEntries(c)
	if err != nil {
		return err
	}
	jenis := c.Params("jenis")
	table, err := buildTable(jenis, entries)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Rekap"
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	writeRow := func(rowIdx int, values []string) error {
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		return sw.SetRow(cell, cells)
	}
	if err := writeRow(1, table.Headers); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	for i, row := range table.Rows {
		if err := writeRow(i+2, row); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if err := sw.Flush(); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("rekap-%s-%s.xlsx", jenis, time.Now().Format(constants.FormatTanggal))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return f.Write(c.Response().BodyWriter())
}
