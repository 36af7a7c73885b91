package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"madrasahku_backend/internals/constants"
)

/* ============================================
   Locals Keys (diisi oleh middleware AuthJWT)
   ============================================ */

const (
	LocUserID     = "user_id"     // string UUID
	LocUserName   = "user_name"   // string
	LocUserEmail  = "user_email"  // string
	LocRole       = "role"        // string
	LocMadrasahID = "madrasah_id" // string UUID (tenant)
)

// GetUserIDFromToken mengambil user_id dari locals.
// 401 jika token tidak membawa user id yang valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User id tidak valid")
	}
	return id, nil
}

// GetMadrasahIDFromToken mengambil tenant id dari locals.
// Kontrak tenant-scoping: setiap read difilter dan setiap insert distempel
// dengan id ini. 401 jika token tidak membawa madrasah_id (NoTenantAssigned).
func GetMadrasahIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocMadrasahID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Akun belum terhubung ke madrasah manapun")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Madrasah id tidak valid")
	}
	return id, nil
}

// GetUserEmailFromToken - dipakai chat untuk stempel pengirim.
func GetUserEmailFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserEmail).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// GetUserNameFromToken - nama tampilan pengirim chat.
func GetUserNameFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserName).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// IsAdmin memeriksa role dari locals.
func IsAdmin(c *fiber.Ctx) bool {
	s, _ := c.Locals(LocRole).(string)
	return s == constants.RoleAdmin || s == constants.RoleOwner
}
