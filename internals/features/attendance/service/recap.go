package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"madrasahku_backend/internals/constants"
)

/* =========================================================
 * REKAP PER PERSON
 * ========================================================= */

type RekapPersonRow struct {
	Role     string    `json:"role"`
	PersonID uuid.UUID `json:"person_id"`
	Nama     string    `json:"nama"`
	Marhalah string    `json:"marhalah"`
	Kelas    string    `json:"kelas"`
	StatusCount
}

// RekapPerPerson mengelompokkan absensi per (role, person) dengan lima
// counter status. Urutan seragam: marhalah → kelas → nama.
func RekapPerPerson(entries []Entry) []RekapPersonRow {
	type key struct {
		role string
		id   uuid.UUID
	}
	byPerson := make(map[key]*RekapPersonRow)
	order := make([]key, 0)

	for _, e := range entries {
		if !Resolvable(e) {
			continue
		}
		k := key{e.Role, e.PersonID}
		row, ok := byPerson[k]
		if !ok {
			row = &RekapPersonRow{
				Role:     e.Role,
				PersonID: e.PersonID,
				Nama:     e.Nama,
				Marhalah: e.Marhalah,
				Kelas:    e.Kelas,
			}
			byPerson[k] = row
			order = append(order, k)
		}
		row.add(e.Status)
	}

	rows := make([]RekapPersonRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *byPerson[k])
	}

	col := newNameCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		return uniformLess(col,
			rows[i].Marhalah, rows[i].Kelas, rows[i].Nama,
			rows[j].Marhalah, rows[j].Kelas, rows[j].Nama)
	})
	return rows
}

/* =========================================================
 * REKAP PER KELAS
 * ========================================================= */

type RekapKelasRow struct {
	Marhalah string `json:"marhalah"`
	Kelas    string `json:"kelas"`
	StatusCount
	Persentase string `json:"persentase"`
}

// RekapPerKelas mengelompokkan per (marhalah, kelas) tanpa memandang role:
// entri musammi yang marhalah/kelasnya sama dengan santri ikut terhitung.
// Persentase kehadiran = round(Hadir/Total*100), "0%" saat Total nol.
func RekapPerKelas(entries []Entry) []RekapKelasRow {
	type key struct{ marhalah, kelas string }
	byKelas := make(map[key]*RekapKelasRow)
	order := make([]key, 0)

	for _, e := range entries {
		if !Resolvable(e) {
			continue
		}
		k := key{e.Marhalah, e.Kelas}
		row, ok := byKelas[k]
		if !ok {
			row = &RekapKelasRow{Marhalah: e.Marhalah, Kelas: e.Kelas}
			byKelas[k] = row
			order = append(order, k)
		}
		row.add(e.Status)
	}

	rows := make([]RekapKelasRow, 0, len(order))
	for _, k := range order {
		row := *byKelas[k]
		row.Persentase = attendancePercentage(row.Hadir, row.Total)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ai, bi := constants.MarhalahIndex(rows[i].Marhalah), constants.MarhalahIndex(rows[j].Marhalah)
		if ai != bi {
			return ai < bi
		}
		return NaturalCompare(rows[i].Kelas, rows[j].Kelas) < 0
	})
	return rows
}

func attendancePercentage(hadir, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(hadir)/float64(total)*100)))
}

/* =========================================================
 * REKAP PER WAKTU
 * ========================================================= */

type RekapWaktuRow struct {
	Tanggal string `json:"tanggal"`
	Waktu   string `json:"waktu"`
	StatusCount
}

// RekapPerWaktu mengelompokkan per (tanggal, waktu), terbaru dulu.
func RekapPerWaktu(entries []Entry) []RekapWaktuRow {
	type key struct{ tanggal, waktu string }
	byWaktu := make(map[key]*RekapWaktuRow)
	order := make([]key, 0)

	for _, e := range entries {
		if !Resolvable(e) {
			continue
		}
		k := key{e.Tanggal, e.Waktu}
		row, ok := byWaktu[k]
		if !ok {
			row = &RekapWaktuRow{Tanggal: e.Tanggal, Waktu: e.Waktu}
			byWaktu[k] = row
			order = append(order, k)
		}
		row.add(e.Status)
	}

	rows := make([]RekapWaktuRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *byWaktu[k])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Tanggal != rows[j].Tanggal {
			return rows[i].Tanggal > rows[j].Tanggal
		}
		return waktuIndex(rows[i].Waktu) < waktuIndex(rows[j].Waktu)
	})
	return rows
}

func waktuIndex(w string) int {
	for i, v := range constants.WaktuOrder {
		if v == w {
			return i
		}
	}
	return len(constants.WaktuOrder)
}
