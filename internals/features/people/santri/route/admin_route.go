package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sCtrl "madrasahku_backend/internals/features/people/santri/controller"
)

func SantriAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sCtrl.NewSantriController(db)

	g := r.Group("/santri")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Post("/bulk", ctrl.BulkCreate)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
