package authRoutes

import (
	authControllers "eduapi/controllers/auth"
	authValidators "eduapi/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/google", authValidators.GoogleLogin(), authControllers.GoogleLogin)
}
