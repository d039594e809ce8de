package discussionRoutes

import (
	discussionControllers "eduapi/controllers/discussion"
	"eduapi/middleware"
	discussionValidators "eduapi/validators/discussion"

	"github.com/gofiber/fiber/v2"
)

func SetupDiscussionRoutes(app *fiber.App) {
	discussionGroup := app.Group("/api/discussions")

	discussionGroup.Post("/", middleware.JWTMiddleware, discussionValidators.CreateDiscussion(), discussionControllers.CreateDiscussion)
	discussionGroup.Get("/", discussionControllers.GetAllDiscussions)
	// Historical path kept for client compatibility.
	discussionGroup.Get("/discussions/me", middleware.JWTMiddleware, discussionControllers.GetMyDiscussions)
	discussionGroup.Get("/:id", discussionControllers.GetDiscussionById)
}
