package route

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "madrasahku_backend/internals/features/users/auth/controller"
	middlewares "madrasahku_backend/internals/middlewares"
	authMW "madrasahku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	app.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)

	private := app.Group("/auth",
		authMW.AuthJWT(authMW.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	private.Get("/me", ctrl.Me)
	private.Post("/change-password", ctrl.ChangePassword)
}
