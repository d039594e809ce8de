package answerRoutes

import (
	answerControllers "eduapi/controllers/answer"
	"eduapi/middleware"
	answerValidators "eduapi/validators/answer"

	"github.com/gofiber/fiber/v2"
)

func SetupAnswerRoutes(app *fiber.App) {
	answerGroup := app.Group("/api/answers")

	answerGroup.Post("/:discussionId", middleware.JWTMiddleware, answerValidators.AddAnswer(), answerControllers.AddAnswer)
	answerGroup.Put("/:id/like", middleware.JWTMiddleware, answerControllers.ToggleLike)
}
