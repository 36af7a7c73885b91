package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MusammiModel struct {
	MusammiID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:musammi_id" json:"musammi_id"`

	MusammiMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:musammi_madrasah_id" json:"musammi_madrasah_id"`

	MusammiNIP      *string `gorm:"type:varchar(30);column:musammi_nip" json:"musammi_nip,omitempty"`
	MusammiName     string  `gorm:"type:varchar(120);not null;column:musammi_name" json:"musammi_name"`
	MusammiMarhalah string  `gorm:"type:varchar(30);not null;column:musammi_marhalah" json:"musammi_marhalah"`
	MusammiKelas    string  `gorm:"type:varchar(30);not null;column:musammi_kelas" json:"musammi_kelas"`
	MusammiPhone    *string `gorm:"type:varchar(30);column:musammi_phone" json:"musammi_phone,omitempty"`

	MusammiCreatedAt time.Time      `gorm:"column:musammi_created_at;autoCreateTime" json:"musammi_created_at"`
	MusammiUpdatedAt *time.Time     `gorm:"column:musammi_updated_at;autoUpdateTime" json:"musammi_updated_at,omitempty"`
	MusammiDeletedAt gorm.DeletedAt `gorm:"column:musammi_deleted_at;index" json:"musammi_deleted_at,omitempty"`
}

func (MusammiModel) TableName() string { return "musammi" }
