package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID         uuid.UUID  `json:"user_id"`
	UserMadrasahID *uuid.UUID `json:"user_madrasah_id,omitempty"`
	UserName       string     `json:"user_name"`
	UserEmail      string     `json:"user_email"`
	UserRole       string     `json:"user_role"`
}
