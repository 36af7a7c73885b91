package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pCtrl "madrasahku_backend/internals/features/progress/controller"
)

func HafalanAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := pCtrl.NewHafalanController(db)

	g := r.Group("/hafalan")
	g.Get("/", ctrl.List)
	g.Post("/batch", ctrl.BatchUpsert)
	g.Post("/delete-period", ctrl.DeleteByPeriod)
	g.Delete("/:id", ctrl.Delete)

	g.Get("/target", ctrl.ListTarget)
	g.Put("/target", ctrl.UpsertTarget)
}
