package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"madrasahku_backend/internals/features/progress/model"
)

// NoData adalah penanda "belum ada data" pada laporan.
const NoData = "-"

// LatestValue mengambil nilai progres terakhir satu santri untuk satu
// dimensi: entri dengan kunci bulan terbesar secara leksikografis.
func LatestValue(entries []model.HafalanModel, santriID uuid.UUID, dimensi string) string {
	latestBulan := ""
	value := NoData
	for _, e := range entries {
		if e.HafalanSantriID != santriID || e.HafalanDimensi != dimensi {
			continue
		}
		if e.HafalanBulan > latestBulan {
			latestBulan = e.HafalanBulan
			value = e.HafalanNilai
		}
	}
	return value
}

// AverageValue menghitung mean sederhana (tanpa bobot) nilai numerik satu
// dimensi pada rentang bulan [startBulan..endBulan] inklusif, dibulatkan
// satu desimal. Nilai non-numerik di-skip; tanpa kecocokan → NoData.
func AverageValue(entries []model.HafalanModel, santriID uuid.UUID, dimensi, startBulan, endBulan string) string {
	sum := 0.0
	n := 0
	for _, e := range entries {
		if e.HafalanSantriID != santriID || e.HafalanDimensi != dimensi {
			continue
		}
		if e.HafalanBulan < startBulan || e.HafalanBulan > endBulan {
			continue
		}
		v, err := strconv.ParseFloat(e.HafalanNilai, 64)
		if err != nil {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return NoData
	}
	avg := math.Round(sum/float64(n)*10) / 10
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// WithUnit menambahkan satuan pada nilai, kecuali penanda NoData.
func WithUnit(value, unit string) string {
	if value == NoData {
		return NoData
	}
	return fmt.Sprintf("%s %s", value, unit)
}
