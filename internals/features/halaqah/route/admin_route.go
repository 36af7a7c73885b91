package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hCtrl "madrasahku_backend/internals/features/halaqah/controller"
)

func HalaqahAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := hCtrl.NewHalaqahController(db)

	g := r.Group("/halaqah")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)

	g.Post("/:id/members", ctrl.AddMember)
	g.Delete("/:id/members/:santri_id", ctrl.RemoveMember)
}
