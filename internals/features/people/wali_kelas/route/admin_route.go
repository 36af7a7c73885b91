package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wkCtrl "madrasahku_backend/internals/features/people/wali_kelas/controller"
)

func WaliKelasAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := wkCtrl.NewWaliKelasController(db)

	g := r.Group("/wali-kelas")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
