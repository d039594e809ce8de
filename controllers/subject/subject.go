package controllers

import (
	"eduapi/config"
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	"eduapi/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllSubjects returns every subject, unfiltered.
func GetAllSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := database.Database.Db.Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", fiber.Map{
		"subjects": subjects,
	})
}

// GetSubjectById returns one subject with its lessons resolved.
func GetSubjectById(c *fiber.Ctx) error {
	subjectId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var subject models.Subject
	if err := database.Database.Db.First(&subject, subjectId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var lessons []models.Lesson
	if err := database.Database.Db.Where("subject_id = ?", subject.ID).
		Order("created_at asc, id asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject fetched successfully!", fiber.Map{
		"subject": subject,
		"lessons": lessons,
	})
}

// CreateSubject creates a subject from a multipart form, storing the
// uploaded image if one was sent.
func CreateSubject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubject").(*struct {
		Title       string
		Description string
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	imageUrl := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		filename, err := utils.SaveUploadedImage(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		imageUrl = utils.GetFileURL(filename)
	}

	subject := models.Subject{
		Title:       reqData.Title,
		Description: reqData.Description,
		ImageURL:    imageUrl,
	}

	if err := database.Database.Db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

// UpdateSubject applies a partial update; the image is replaced only when a
// new one was uploaded.
func UpdateSubject(c *fiber.Ctx) error {
	subjectId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var subject models.Subject
	if err := database.Database.Db.First(&subject, subjectId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	if title := c.FormValue("title"); title != "" {
		subject.Title = title
	}
	if description := c.FormValue("description"); description != "" {
		subject.Description = description
	}
	if file, err := c.FormFile("image"); err == nil && file != nil {
		filename, err := utils.SaveUploadedImage(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		subject.ImageURL = utils.GetFileURL(filename)
	}

	if err := database.Database.Db.Save(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject updated successfully!", subject)
}
