package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Pesan ruang obrolan madrasah. Balasan disimpan sebagai snapshot JSON
// denormalisasi {id, name, content} agar tetap terbaca walau pesan
// aslinya dihapus.
type ChatMessageModel struct {
	ChatID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:chat_id" json:"chat_id"`

	ChatMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:chat_madrasah_id" json:"chat_madrasah_id"`

	ChatSenderID   uuid.UUID `gorm:"type:uuid;not null;index;column:chat_sender_id" json:"chat_sender_id"`
	ChatSenderName string    `gorm:"type:varchar(100);not null;column:chat_sender_name" json:"chat_sender_name"`

	ChatContent string `gorm:"type:text;not null;column:chat_content" json:"chat_content"`

	ChatReplyTo datatypes.JSON `gorm:"column:chat_reply_to" json:"chat_reply_to,omitempty"`

	ChatCreatedAt time.Time      `gorm:"column:chat_created_at;autoCreateTime;index" json:"chat_created_at"`
	ChatDeletedAt gorm.DeletedAt `gorm:"column:chat_deleted_at;index" json:"-"`
}

func (ChatMessageModel) TableName() string { return "chat_messages" }
