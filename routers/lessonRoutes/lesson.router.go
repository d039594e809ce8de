package lessonRoutes

import (
	lessonControllers "eduapi/controllers/lesson"
	lessonValidators "eduapi/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/api/lessons")

	lessonGroup.Get("/:id", lessonControllers.GetLessonById)
	lessonGroup.Get("/:id/preview", lessonControllers.GetLessonPreview)
	lessonGroup.Put("/:id", lessonValidators.UpdateLesson(), lessonControllers.UpdateLesson)
	lessonGroup.Delete("/:id", lessonControllers.DeleteLesson)
}
