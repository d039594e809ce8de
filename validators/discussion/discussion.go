package discussionValidator

import (
	"strings"

	"eduapi/middleware"
	"eduapi/models"

	"github.com/gofiber/fiber/v2"
)

func CreateDiscussion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			PostType string `json:"postType"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}
		if !models.ValidPostType(reqData.PostType) {
			errors["postType"] = "Post type must be one of esp32, stm32, lpc, arduino, general!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDiscussion", reqData)
		return c.Next()
	}
}
