package service

import (
	"time"

	"madrasahku_backend/internals/constants"
)

// Label hari pendek (dipakai grafik tren mingguan)
var shortDayNames = map[time.Weekday]string{
	time.Sunday:    "Min",
	time.Monday:    "Sen",
	time.Tuesday:   "Sel",
	time.Wednesday: "Rab",
	time.Thursday:  "Kam",
	time.Friday:    "Jum",
	time.Saturday:  "Sab",
}

type TrendPoint struct {
	Tanggal string `json:"tanggal"`
	Label   string `json:"label"`
	StatusCount
}

// TodayOrLatest menentukan tanggal tampilan dashboard:
// hari ini jika ada entri hari ini; kalau tidak, tanggal terbaru pada data;
// kalau data kosong, hari ini. Perbandingan string valid karena tanggal
// zero-padded ISO.
func TodayOrLatest(entries []Entry, today string) (string, bool) {
	latest := ""
	for _, e := range entries {
		if !Resolvable(e) {
			continue
		}
		if e.Tanggal == today {
			return today, true
		}
		if e.Tanggal > latest {
			latest = e.Tanggal
		}
	}
	if latest == "" {
		return today, true
	}
	return latest, false
}

// WeeklySeries menghasilkan tepat 7 bucket harian yang berakhir di today,
// urut kronologis.
func WeeklySeries(entries []Entry, today time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		points = append(points, TrendPoint{
			Tanggal: day.Format(constants.FormatTanggal),
			Label:   shortDayNames[day.Weekday()],
		})
	}
	fillBuckets(points, entries)
	return points
}

// RangeSeries menghasilkan satu bucket per hari kalender pada rentang
// [start..end] inklusif, urut naik. Default: end = hari ini bila kosong,
// start = end - 30 hari bila kosong.
func RangeSeries(entries []Entry, startTanggal, endTanggal string, today time.Time) []TrendPoint {
	end, err := time.Parse(constants.FormatTanggal, endTanggal)
	if err != nil {
		end = today
	}
	start, err := time.Parse(constants.FormatTanggal, startTanggal)
	if err != nil {
		start = end.AddDate(0, 0, -30)
	}
	if start.After(end) {
		return []TrendPoint{}
	}

	points := make([]TrendPoint, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		points = append(points, TrendPoint{
			Tanggal: day.Format(constants.FormatTanggal),
			Label:   shortDayNames[day.Weekday()],
		})
	}
	fillBuckets(points, entries)
	return points
}

func fillBuckets(points []TrendPoint, entries []Entry) {
	index := make(map[string]*TrendPoint, len(points))
	for i := range points {
		index[points[i].Tanggal] = &points[i]
	}
	for _, e := range entries {
		if !Resolvable(e) {
			continue
		}
		if p, ok := index[e.Tanggal]; ok {
			p.add(e.Status)
		}
	}
}
