package service

import (
	"github.com/google/uuid"

	"madrasahku_backend/internals/constants"
)

// Entry adalah satu baris absensi yang sudah di-join dengan identitas
// person (nama, marhalah, kelas). Semua fungsi rekap bekerja di atas
// slice Entry di memori dan tidak pernah memutasi input.
type Entry struct {
	ID        uuid.UUID
	Tanggal   string // yyyy-MM-dd
	Waktu     string
	Role      string // santri | musammi
	PersonID  uuid.UUID
	Nama      string
	Marhalah  string
	Kelas     string
	Status    string
	HalaqahID uuid.UUID
}

// Resolvable adalah gerbang tunggal "resolve-or-skip": entri yang person
// atau halaqah-nya tidak lagi resolvable di-drop diam-diam dari semua
// tampilan turunan, tidak pernah jadi error.
func Resolvable(e Entry) bool {
	return e.Nama != "" && e.PersonID != uuid.Nil && e.HalaqahID != uuid.Nil
}

// StatusCount menampung lima counter status + total.
type StatusCount struct {
	Hadir     int `json:"hadir"`
	Izin      int `json:"izin"`
	Sakit     int `json:"sakit"`
	Alpa      int `json:"alpa"`
	Terlambat int `json:"terlambat"`
	Total     int `json:"total"`
}

func (s *StatusCount) add(status string) {
	switch status {
	case constants.StatusHadir:
		s.Hadir++
	case constants.StatusIzin:
		s.Izin++
	case constants.StatusSakit:
		s.Sakit++
	case constants.StatusAlpa:
		s.Alpa++
	case constants.StatusTerlambat:
		s.Terlambat++
	default:
		return // status di luar taksonomi tidak dihitung
	}
	s.Total++
}

// Get mengembalikan counter untuk satu status taksonomi.
func (s StatusCount) Get(status string) int {
	switch status {
	case constants.StatusHadir:
		return s.Hadir
	case constants.StatusIzin:
		return s.Izin
	case constants.StatusSakit:
		return s.Sakit
	case constants.StatusAlpa:
		return s.Alpa
	case constants.StatusTerlambat:
		return s.Terlambat
	}
	return 0
}
