package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"madrasahku_backend/internals/constants"
)

// MonthlyStats menghitung lima counter untuk satu santri pada satu bulan
// (kunci yyyy-MM, prefix-match pada tanggal).
func MonthlyStats(entries []Entry, santriID uuid.UUID, bulan string) StatusCount {
	var sc StatusCount
	prefix := bulan + "-"
	for _, e := range entries {
		if !Resolvable(e) {
			continue
		}
		if e.Role != constants.RoleSantri || e.PersonID != santriID {
			continue
		}
		if !strings.HasPrefix(e.Tanggal, prefix) {
			continue
		}
		sc.add(e.Status)
	}
	return sc
}

/* =========================================================
 * DAFTAR SANTRI BERMASALAH (laporan WA kelas)
 * ========================================================= */

const SemuaHadirMarker = "Alhamdulillah, semua santri hadir lengkap pada periode ini."

type ProblemItem struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ProblemRow struct {
	Nama  string        `json:"nama"`
	Items []ProblemItem `json:"items"`
}

// ProblemSantri mengumpulkan seluruh entri non-Hadir milik santri sebuah
// kelas pada rentang tanggal, dikelompokkan per nama. Item status mengikuti
// urutan taksonomi; baris diurutkan per nama.
func ProblemSantri(entries []Entry, marhalah, kelas, startTanggal, endTanggal string) []ProblemRow {
	counts := make(map[string]*StatusCount)
	for _, e := range entries {
		if !Resolvable(e) {
			continue
		}
		if e.Role != constants.RoleSantri || e.Marhalah != marhalah || e.Kelas != kelas {
			continue
		}
		if e.Tanggal < startTanggal || e.Tanggal > endTanggal {
			continue
		}
		if e.Status == constants.StatusHadir {
			continue
		}
		sc, ok := counts[e.Nama]
		if !ok {
			sc = &StatusCount{}
			counts[e.Nama] = sc
		}
		sc.add(e.Status)
	}

	rows := make([]ProblemRow, 0, len(counts))
	for nama, sc := range counts {
		items := make([]ProblemItem, 0)
		for _, status := range constants.StatusOrder {
			if status == constants.StatusHadir {
				continue
			}
			if n := sc.Get(status); n > 0 {
				items = append(items, ProblemItem{Status: status, Count: n})
			}
		}
		if len(items) == 0 {
			continue
		}
		rows = append(rows, ProblemRow{Nama: nama, Items: items})
	}

	col := newNameCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].Nama, rows[j].Nama) < 0
	})
	return rows
}

// FormatProblemLine merender satu baris daftar:
// "Nama: Alpa (2), Izin (1)"
func FormatProblemLine(row ProblemRow) string {
	parts := make([]string, 0, len(row.Items))
	for _, item := range row.Items {
		parts = append(parts, fmt.Sprintf("%s (%d)", item.Status, item.Count))
	}
	return fmt.Sprintf("%s: %s", row.Nama, strings.Join(parts, ", "))
}
