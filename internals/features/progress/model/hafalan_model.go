package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu nilai progres per (santri, bulan, dimensi) - ditegakkan sebagai
// kunci upsert, bukan constraint keras.
type HafalanModel struct {
	HafalanID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:hafalan_id" json:"hafalan_id"`

	HafalanMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:hafalan_madrasah_id" json:"hafalan_madrasah_id"`
	HafalanSantriID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hafalan_upsert,priority:1;column:hafalan_santri_id" json:"hafalan_santri_id"`

	HafalanBulan   string `gorm:"type:varchar(7);not null;uniqueIndex:idx_hafalan_upsert,priority:2;column:hafalan_bulan" json:"hafalan_bulan"`
	HafalanDimensi string `gorm:"type:varchar(12);not null;uniqueIndex:idx_hafalan_upsert,priority:3;column:hafalan_dimensi" json:"hafalan_dimensi"`

	// Nilai string: kadang angka ("12.5"), kadang teks bebas ("Juz 30 selesai")
	HafalanNilai string `gorm:"type:varchar(120);not null;column:hafalan_nilai" json:"hafalan_nilai"`

	HafalanCreatedAt time.Time  `gorm:"column:hafalan_created_at;autoCreateTime" json:"hafalan_created_at"`
	HafalanUpdatedAt *time.Time `gorm:"column:hafalan_updated_at;autoUpdateTime" json:"hafalan_updated_at,omitempty"`
}

func (HafalanModel) TableName() string { return "hafalan_bulanan" }
