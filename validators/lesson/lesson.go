package lessonValidator

import (
	"strings"

	"eduapi/middleware"
	"eduapi/models/blocks"

	"github.com/gofiber/fiber/v2"
)

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string          `json:"title"`
			ContentBlocks blocks.Sequence `json:"contentBlocks"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 100 {
			errors["title"] = "Title cannot be more than 100 characters!"
		}

		if reqData.ContentBlocks == nil {
			reqData.ContentBlocks = blocks.Sequence{}
		}
		if err := reqData.ContentBlocks.Validate(); err != nil {
			errors["contentBlocks"] = err.Error()
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         *string          `json:"title"`
			ContentBlocks *blocks.Sequence `json:"contentBlocks"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil {
			if strings.TrimSpace(*reqData.Title) == "" {
				errors["title"] = "Title cannot be empty!"
			} else if len(*reqData.Title) > 100 {
				errors["title"] = "Title cannot be more than 100 characters!"
			}
		}
		if reqData.ContentBlocks != nil {
			if err := reqData.ContentBlocks.Validate(); err != nil {
				errors["contentBlocks"] = err.Error()
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
