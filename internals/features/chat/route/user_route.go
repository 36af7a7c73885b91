package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cCtrl "madrasahku_backend/internals/features/chat/controller"
)

func ChatUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := cCtrl.NewChatController(db)

	g := r.Group("/chat")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Delete("/:id", ctrl.Delete)
}
