package subjectRoutes

import (
	lessonControllers "eduapi/controllers/lesson"
	subjectControllers "eduapi/controllers/subject"
	lessonValidators "eduapi/validators/lesson"
	subjectValidators "eduapi/validators/subject"

	"github.com/gofiber/fiber/v2"
)

// SetupSubjectRoutes mounts the subject resource and the nested lesson
// collection routes.
func SetupSubjectRoutes(app *fiber.App) {
	subjectGroup := app.Group("/api/subjects")

	subjectGroup.Get("/", subjectControllers.GetAllSubjects)
	subjectGroup.Get("/:id", subjectControllers.GetSubjectById)
	subjectGroup.Post("/", subjectValidators.CreateSubject(), subjectControllers.CreateSubject)
	subjectGroup.Put("/:id", subjectControllers.UpdateSubject)

	subjectGroup.Get("/:id/lessons", lessonControllers.GetLessonsBySubject)
	subjectGroup.Post("/:id/lessons", lessonValidators.CreateLesson(), lessonControllers.AddLesson)
}
