package model

import (
	"time"

	"github.com/google/uuid"
)

// Target progres per (marhalah, kelas); hanya untuk pembanding tampilan,
// tidak pernah ditegakkan.
type TargetKelasModel struct {
	TargetID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:target_id" json:"target_id"`

	TargetMadrasahID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_target_upsert,priority:1;column:target_madrasah_id" json:"target_madrasah_id"`

	TargetMarhalah string `gorm:"type:varchar(30);not null;uniqueIndex:idx_target_upsert,priority:2;column:target_marhalah" json:"target_marhalah"`
	TargetKelas    string `gorm:"type:varchar(30);not null;uniqueIndex:idx_target_upsert,priority:3;column:target_kelas" json:"target_kelas"`

	TargetHafalanAwal   float64 `gorm:"not null;default:0;column:target_hafalan_awal" json:"target_hafalan_awal"`
	TargetHafalanAkhir  float64 `gorm:"not null;default:0;column:target_hafalan_akhir" json:"target_hafalan_akhir"`
	TargetMurojaahAwal  float64 `gorm:"not null;default:0;column:target_murojaah_awal" json:"target_murojaah_awal"`
	TargetMurojaahAkhir float64 `gorm:"not null;default:0;column:target_murojaah_akhir" json:"target_murojaah_akhir"`
	TargetZiyadahAwal   float64 `gorm:"not null;default:0;column:target_ziyadah_awal" json:"target_ziyadah_awal"`
	TargetZiyadahAkhir  float64 `gorm:"not null;default:0;column:target_ziyadah_akhir" json:"target_ziyadah_akhir"`

	TargetCreatedAt time.Time  `gorm:"column:target_created_at;autoCreateTime" json:"target_created_at"`
	TargetUpdatedAt *time.Time `gorm:"column:target_updated_at;autoUpdateTime" json:"target_updated_at,omitempty"`
}

func (TargetKelasModel) TableName() string { return "target_kelas" }
