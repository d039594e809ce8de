package authValidator

import (
	"strings"

	"eduapi/middleware"

	"github.com/gofiber/fiber/v2"
)

func GoogleLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Token string `json:"token"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Token) == "" {
			errors["token"] = "Google ID token is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGoogleLogin", reqData)
		return c.Next()
	}
}
