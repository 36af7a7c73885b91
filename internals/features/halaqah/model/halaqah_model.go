package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type HalaqahModel struct {
	HalaqahID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:halaqah_id" json:"halaqah_id"`

	HalaqahMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:halaqah_madrasah_id" json:"halaqah_madrasah_id"`

	HalaqahName     string    `gorm:"type:varchar(120);not null;column:halaqah_name" json:"halaqah_name"`
	HalaqahMusammiID uuid.UUID `gorm:"type:uuid;not null;column:halaqah_musammi_id" json:"halaqah_musammi_id"`
	HalaqahMarhalah string    `gorm:"type:varchar(30);not null;column:halaqah_marhalah" json:"halaqah_marhalah"`

	// Label bebas; admin boleh menambah jenis baru saat create
	HalaqahType string `gorm:"type:varchar(60);not null;default:'Reguler';column:halaqah_type" json:"halaqah_type"`

	// Subset dari empat waktu tetap (Shubuh, Dhuha, Ashar, Isya)
	HalaqahWaktu pq.StringArray `gorm:"type:text[];not null;column:halaqah_waktu" json:"halaqah_waktu"`

	HalaqahUrutan int `gorm:"not null;default:0;column:halaqah_urutan" json:"halaqah_urutan"`

	HalaqahCreatedAt time.Time      `gorm:"column:halaqah_created_at;autoCreateTime" json:"halaqah_created_at"`
	HalaqahUpdatedAt *time.Time     `gorm:"column:halaqah_updated_at;autoUpdateTime" json:"halaqah_updated_at,omitempty"`
	HalaqahDeletedAt gorm.DeletedAt `gorm:"column:halaqah_deleted_at;index" json:"halaqah_deleted_at,omitempty"`
}

func (HalaqahModel) TableName() string { return "halaqah" }

// Link keanggotaan santri ↔ halaqah (many-to-many)
type HalaqahSantriModel struct {
	HalaqahSantriID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:halaqah_santri_id" json:"halaqah_santri_id"`

	HalaqahSantriMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:halaqah_santri_madrasah_id" json:"halaqah_santri_madrasah_id"`
	HalaqahSantriHalaqahID  uuid.UUID `gorm:"type:uuid;not null;index;column:halaqah_santri_halaqah_id" json:"halaqah_santri_halaqah_id"`
	HalaqahSantriSantriID   uuid.UUID `gorm:"type:uuid;not null;index;column:halaqah_santri_santri_id" json:"halaqah_santri_santri_id"`

	HalaqahSantriCreatedAt time.Time `gorm:"column:halaqah_santri_created_at;autoCreateTime" json:"halaqah_santri_created_at"`
}

func (HalaqahSantriModel) TableName() string { return "halaqah_santri" }
