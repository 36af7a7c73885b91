package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tanggal & bulan disimpan sebagai string zero-padded (yyyy-MM-dd) supaya
// perbandingan leksikografis dan prefix-match bulan tetap valid.
type AbsensiModel struct {
	AbsensiID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absensi_id" json:"absensi_id"`

	AbsensiMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:absensi_madrasah_id" json:"absensi_madrasah_id"`

	AbsensiTanggal string `gorm:"type:varchar(10);not null;index;column:absensi_tanggal" json:"absensi_tanggal"`
	AbsensiWaktu   string `gorm:"type:varchar(10);not null;column:absensi_waktu" json:"absensi_waktu"`

	// Person: santri atau musammi, dibedakan lewat role
	AbsensiRole     string    `gorm:"type:varchar(10);not null;column:absensi_role" json:"absensi_role"`
	AbsensiPersonID uuid.UUID `gorm:"type:uuid;not null;index;column:absensi_person_id" json:"absensi_person_id"`

	AbsensiStatus string `gorm:"type:varchar(12);not null;column:absensi_status" json:"absensi_status"`

	AbsensiHalaqahID *uuid.UUID `gorm:"type:uuid;index;column:absensi_halaqah_id" json:"absensi_halaqah_id,omitempty"`

	AbsensiCreatedAt time.Time      `gorm:"column:absensi_created_at;autoCreateTime" json:"absensi_created_at"`
	AbsensiUpdatedAt *time.Time     `gorm:"column:absensi_updated_at;autoUpdateTime" json:"absensi_updated_at,omitempty"`
	AbsensiDeletedAt gorm.DeletedAt `gorm:"column:absensi_deleted_at;index" json:"absensi_deleted_at,omitempty"`
}

func (AbsensiModel) TableName() string { return "absensi" }
