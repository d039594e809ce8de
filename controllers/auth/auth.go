package controllers

import (
	"errors"

	"eduapi/config"
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// tokenInfo is the verified identity Google's tokeninfo endpoint returns
// for a valid ID token.
type tokenInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Aud     string `json:"aud"`
}

// GoogleLogin exchanges a Google ID token for a session token. The user is
// created on first login, keyed by their Google subject id.
func GoogleLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGoogleLogin").(*struct {
		Token string `json:"token"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	info := new(tokenInfo)
	client := resty.New()
	resp, err := client.R().
		SetQueryParam("id_token", reqData.Token).
		SetResult(info).
		Get(config.AppConfig.GoogleTokenInfoURL)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token verification failed!", nil)
	}
	if resp.StatusCode() != fiber.StatusOK || info.Sub == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Google token!", nil)
	}
	if aud := config.AppConfig.GoogleClientID; aud != "" && info.Aud != aud {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Google token!", nil)
	}

	// Find or create the user keyed by google id
	var user models.User
	err = database.Database.Db.Where("google_id = ?", info.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			GoogleID: info.Sub,
			Email:    info.Email,
			Name:     info.Name,
			Picture:  info.Picture,
		}
		if err := database.Database.Db.Create(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
		}
	} else if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
