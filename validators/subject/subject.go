package subjectValidator

import (
	"strings"

	"eduapi/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string
			Description string
		})
		reqData.Title = strings.TrimSpace(c.FormValue("title"))
		reqData.Description = strings.TrimSpace(c.FormValue("description"))

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubject", reqData)
		return c.Next()
	}
}
