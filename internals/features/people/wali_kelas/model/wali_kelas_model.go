package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaliKelas berdiri sendiri, bukan turunan Musammi.
type WaliKelasModel struct {
	WaliKelasID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:wali_kelas_id" json:"wali_kelas_id"`

	WaliKelasMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:wali_kelas_madrasah_id" json:"wali_kelas_madrasah_id"`

	WaliKelasName     string  `gorm:"type:varchar(120);not null;column:wali_kelas_name" json:"wali_kelas_name"`
	WaliKelasMarhalah string  `gorm:"type:varchar(30);not null;column:wali_kelas_marhalah" json:"wali_kelas_marhalah"`
	WaliKelasKelas    string  `gorm:"type:varchar(30);not null;column:wali_kelas_kelas" json:"wali_kelas_kelas"`
	WaliKelasPhone    *string `gorm:"type:varchar(30);column:wali_kelas_phone" json:"wali_kelas_phone,omitempty"`

	WaliKelasCreatedAt time.Time      `gorm:"column:wali_kelas_created_at;autoCreateTime" json:"wali_kelas_created_at"`
	WaliKelasUpdatedAt *time.Time     `gorm:"column:wali_kelas_updated_at;autoUpdateTime" json:"wali_kelas_updated_at,omitempty"`
	WaliKelasDeletedAt gorm.DeletedAt `gorm:"column:wali_kelas_deleted_at;index" json:"wali_kelas_deleted_at,omitempty"`
}

func (WaliKelasModel) TableName() string { return "wali_kelas" }
