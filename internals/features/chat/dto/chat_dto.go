package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Snapshot pesan yang dibalas, disalin apa adanya saat kirim.
type ReplySnapshot struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Name    string    `json:"name" validate:"required,max=100"`
	Content string    `json:"content" validate:"required,max=2000"`
}

type CreateChatMessageRequest struct {
	ChatContent string         `json:"chat_content" validate:"required,max=2000"`
	ChatReplyTo *ReplySnapshot `json:"chat_reply_to" validate:"omitempty"`
}
