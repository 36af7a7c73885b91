package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eCtrl "madrasahku_backend/internals/features/evaluation/controller"
)

func PenilaianAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eCtrl.NewPenilaianController(db)

	g := r.Group("/penilaian")
	g.Get("/", ctrl.List)
	g.Put("/", ctrl.Upsert)
	g.Delete("/:id", ctrl.Delete)

	g.Get("/opsi", ctrl.ListOpsi)
	g.Post("/opsi", ctrl.CreateOpsi)
	g.Delete("/opsi/:id", ctrl.DeleteOpsi)
}
