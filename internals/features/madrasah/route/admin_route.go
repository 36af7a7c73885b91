package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mCtrl "madrasahku_backend/internals/features/madrasah/controller"
)

func MadrasahAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := mCtrl.NewMadrasahController(db)

	g := r.Group("/madrasah")
	g.Get("/profile", ctrl.GetProfile)
	g.Put("/profile", ctrl.UpdateProfile)
}
