package service

import (
	"fmt"

	attendance "madrasahku_backend/internals/features/attendance/service"
)

// Table adalah payload ekspor generik: header + baris string siap tulis.
// Semua builder di file ini murni dan tidak pernah memutasi input.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// kelasCell merender sel komposit "kelas (marhalah)".
func kelasCell(kelas, marhalah string) string {
	return fmt.Sprintf("%s (%s)", dash(kelas), dash(marhalah))
}

/* =========================================================
 * TABEL REKAP
 * ========================================================= */

func RekapPersonTable(rows []attendance.RekapPersonRow) Table {
	t := Table{
		Headers: []string{"No", "Nama", "Kelas", "Peran", "Hadir", "Izin", "Sakit", "Alpa", "Terlambat", "Total"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", i+1),
			dash(r.Nama),
			kelasCell(r.Kelas, r.Marhalah),
			dash(r.Role),
			fmt.Sprintf("%d", r.Hadir),
			fmt.Sprintf("%d", r.Izin),
			fmt.Sprintf("%d", r.Sakit),
			fmt.Sprintf("%d", r.Alpa),
			fmt.Sprintf("%d", r.Terlambat),
			fmt.Sprintf("%d", r.Total),
		})
	}
	return t
}

func RekapKelasTable(rows []attendance.RekapKelasRow) Table {
	t := Table{
		Headers: []string{"No", "Kelas", "Hadir", "Izin", "Sakit", "Alpa", "Terlambat", "Total", "Persentase"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", i+1),
			kelasCell(r.Kelas, r.Marhalah),
			fmt.Sprintf("%d", r.Hadir),
			fmt.Sprintf("%d", r.Izin),
			fmt.Sprintf("%d", r.Sakit),
			fmt.Sprintf("%d", r.Alpa),
			fmt.Sprintf("%d", r.Terlambat),
			fmt.Sprintf("%d", r.Total),
			dash(r.Persentase),
		})
	}
	return t
}

func RekapWaktuTable(rows []attendance.RekapWaktuRow) Table {
	t := Table{
		Headers: []string{"No", "Tanggal", "Waktu", "Hadir", "Izin", "Sakit", "Alpa", "Terlambat", "Total"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", i+1),
			dash(r.Tanggal),
			dash(r.Waktu),
			fmt.Sprintf("%d", r.Hadir),
			fmt.Sprintf("%d", r.Izin),
			fmt.Sprintf("%d", r.Sakit),
			fmt.Sprintf("%d", r.Alpa),
			fmt.Sprintf("%d", r.Terlambat),
			fmt.Sprintf("%d", r.Total),
		})
	}
	return t
}

// DetailTable merender daftar absensi mentah (sudah ter-join identitas).
func DetailTable(entries []attendance.Entry) Table {
	t := Table{
		Headers: []string{"No", "Tanggal", "Waktu", "Nama", "Kelas", "Peran", "Status"},
		Rows:    make([][]string, 0, len(entries)),
	}
	for i, e := range entries {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", i+1),
			dash(e.Tanggal),
			dash(e.Waktu),
			dash(e.Nama),
			kelasCell(e.Kelas, e.Marhalah),
			dash(e.Role),
			dash(e.Status),
		})
	}
	return t
}
