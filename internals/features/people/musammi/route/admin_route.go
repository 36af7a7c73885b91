package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mCtrl "madrasahku_backend/internals/features/people/musammi/controller"
)

func MusammiAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := mCtrl.NewMusammiController(db)

	g := r.Group("/musammi")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
