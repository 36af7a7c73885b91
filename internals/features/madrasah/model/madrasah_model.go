package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MadrasahModel struct {
	MadrasahID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:madrasah_id" json:"madrasah_id"`

	MadrasahName    string  `gorm:"type:varchar(120);not null;column:madrasah_name" json:"madrasah_name"`
	MadrasahSlug    string  `gorm:"type:varchar(120);not null;uniqueIndex;column:madrasah_slug" json:"madrasah_slug"`
	MadrasahAddress *string `gorm:"type:text;column:madrasah_address" json:"madrasah_address,omitempty"`
	MadrasahPhone   *string `gorm:"type:varchar(30);column:madrasah_phone" json:"madrasah_phone,omitempty"`

	MadrasahCreatedAt time.Time      `gorm:"column:madrasah_created_at;autoCreateTime" json:"madrasah_created_at"`
	MadrasahUpdatedAt *time.Time     `gorm:"column:madrasah_updated_at;autoUpdateTime" json:"madrasah_updated_at,omitempty"`
	MadrasahDeletedAt gorm.DeletedAt `gorm:"column:madrasah_deleted_at;index" json:"madrasah_deleted_at,omitempty"`
}

func (MadrasahModel) TableName() string { return "madrasahs" }
