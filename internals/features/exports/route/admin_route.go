package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	xCtrl "madrasahku_backend/internals/features/exports/controller"
)

func ExportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := xCtrl.NewExportController(db)

	g := r.Group("/export")
	g.Get("/:jenis", ctrl.Payload)
	g.Get("/:jenis/xlsx", ctrl.Xlsx)
}
