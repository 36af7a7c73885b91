package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SantriModel struct {
	SantriID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_id" json:"santri_id"`

	SantriMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:santri_madrasah_id" json:"santri_madrasah_id"`

	SantriNIS      *string `gorm:"type:varchar(30);column:santri_nis" json:"santri_nis,omitempty"`
	SantriName     string  `gorm:"type:varchar(120);not null;column:santri_name" json:"santri_name"`
	SantriMarhalah string  `gorm:"type:varchar(30);not null;column:santri_marhalah" json:"santri_marhalah"`
	SantriKelas    string  `gorm:"type:varchar(30);not null;column:santri_kelas" json:"santri_kelas"`

	// Wali santri (untuk laporan WA)
	SantriWaliName  *string `gorm:"type:varchar(120);column:santri_wali_name" json:"santri_wali_name,omitempty"`
	SantriWaliPhone *string `gorm:"type:varchar(30);column:santri_wali_phone" json:"santri_wali_phone,omitempty"`

	SantriCreatedAt time.Time      `gorm:"column:santri_created_at;autoCreateTime" json:"santri_created_at"`
	SantriUpdatedAt *time.Time     `gorm:"column:santri_updated_at;autoUpdateTime" json:"santri_updated_at,omitempty"`
	SantriDeletedAt gorm.DeletedAt `gorm:"column:santri_deleted_at;index" json:"santri_deleted_at,omitempty"`
}

func (SantriModel) TableName() string { return "santri" }
