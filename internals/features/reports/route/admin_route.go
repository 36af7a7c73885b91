package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rCtrl "madrasahku_backend/internals/features/reports/controller"
)

func ReportsAdminRoutes(r fiber.Router, db *gorm.DB) {
	rekap := rCtrl.NewRekapController(db)
	laporan := rCtrl.NewLaporanController(db)

	rg := r.Group("/rekap")
	rg.Get("/person", rekap.PerPerson)
	rg.Get("/kelas", rekap.PerKelas)
	rg.Get("/waktu", rekap.PerWaktu)
	rg.Get("/dashboard", rekap.Dashboard)
	rg.Get("/mingguan", rekap.Mingguan)
	rg.Get("/tren", rekap.Tren)

	lg := r.Group("/laporan")
	lg.Post("/santri", laporan.Santri)
	lg.Post("/santri/lengkap", laporan.SantriLengkap)
	lg.Post("/kelas", laporan.Kelas)
	lg.Get("/target", laporan.Target)
}
