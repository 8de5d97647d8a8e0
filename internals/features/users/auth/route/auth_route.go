package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/users/auth/controller"
	rateLimiter "virgimotor_backend/internals/middlewares"
	authAdmin "virgimotor_backend/internals/middlewares/auth_admin"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", rateLimiter.LoginRateLimiter(), authCtrl.Login) // 🔐 Login admin
	auth.Post("/logout", authCtrl.Logout)                               // 🚪 Logout
	auth.Get("/me", authAdmin.AdminOnly(), authCtrl.Me)                 // 👤 Sesi aktif
}
