package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absensiRoute "madrasahku_backend/internals/features/attendance/route"
	chatRoute "madrasahku_backend/internals/features/chat/route"
	penilaianRoute "madrasahku_backend/internals/features/evaluation/route"
	exportRoute "madrasahku_backend/internals/features/exports/route"
	halaqahRoute "madrasahku_backend/internals/features/halaqah/route"
	madrasahRoute "madrasahku_backend/internals/features/madrasah/route"
	musammiRoute "madrasahku_backend/internals/features/people/musammi/route"
	santriRoute "madrasahku_backend/internals/features/people/santri/route"
	waliKelasRoute "madrasahku_backend/internals/features/people/wali_kelas/route"
	hafalanRoute "madrasahku_backend/internals/features/progress/route"
	reportsRoute "madrasahku_backend/internals/features/reports/route"
	authRoute "madrasahku_backend/internals/features/users/auth/route"
	authMW "madrasahku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	jwt := authMW.AuthJWT(authMW.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// ===================== USER (login apa pun) =====================
	log.Println("[INFO] Setting up /api/u group...")
	user := app.Group("/api/u", jwt)
	chatRoute.ChatUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up /api/a group...")
	admin := app.Group("/api/a", jwt, authMW.RequireAdmin())

	madrasahRoute.MadrasahAdminRoutes(admin, db)
	santriRoute.SantriAdminRoutes(admin, db)
	musammiRoute.MusammiAdminRoutes(admin, db)
	waliKelasRoute.WaliKelasAdminRoutes(admin, db)
	halaqahRoute.HalaqahAdminRoutes(admin, db)
	absensiRoute.AbsensiAdminRoutes(admin, db)
	hafalanRoute.HafalanAdminRoutes(admin, db)
	penilaianRoute.PenilaianAdminRoutes(admin, db)
	reportsRoute.ReportsAdminRoutes(admin, db)
	exportRoute.ExportAdminRoutes(admin, db)

	log.Println("✅ Semua route terpasang")
}
