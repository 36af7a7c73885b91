package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "madrasahku_backend/internals/features/attendance/controller"
)

func AbsensiAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := aCtrl.NewAbsensiController(db)

	g := r.Group("/absensi")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Post("/batch", ctrl.BatchCreate)
	g.Post("/batch-delete", ctrl.BatchDelete)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
