package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Tenant scope (nullable: akun owner global belum tentu terikat madrasah)
	UserMadrasahID *uuid.UUID `gorm:"type:uuid;column:user_madrasah_id;index" json:"user_madrasah_id,omitempty"`

	UserName     string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(120);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`
	UserRole     string `gorm:"type:varchar(20);not null;default:'user';column:user_role" json:"user_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
