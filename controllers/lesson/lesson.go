package controllers

import (
	"errors"

	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	"eduapi/models/blocks"
	"eduapi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetLessonsBySubject returns the lesson summaries of one subject. The block
// content is included by design; lesson bodies are small.
func GetLessonsBySubject(c *fiber.Ctx) error {
	subjectId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var lessons []models.Lesson
	if err := database.Database.Db.
		Select("id", "title", "slug", "subject_id", "created_at", "content_blocks").
		Where("subject_id = ?", subjectId).
		Order("created_at asc, id asc").
		Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

// GetLessonById returns the full lesson.
func GetLessonById(c *fiber.Ctx) error {
	lessonId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// GetLessonPreview renders the persisted block sequence as HTML.
func GetLessonPreview(c *fiber.Ctx) error {
	lessonId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(blocks.RenderHTML(lesson.ContentBlocks.Data()))
}

// AddLesson creates a lesson under a subject, deriving the slug from the
// title. A slug collision fails the write instead of overwriting.
func AddLesson(c *fiber.Ctx) error {
	subjectId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var subject models.Subject
	if err := database.Database.Db.First(&subject, subjectId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title         string          `json:"title"`
		ContentBlocks blocks.Sequence `json:"contentBlocks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := models.Lesson{
		Title:         reqData.Title,
		SubjectID:     subject.ID,
		ContentBlocks: datatypes.NewJSONType(reqData.ContentBlocks),
		Slug:          utils.Slugify(reqData.Title),
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A lesson with this slug already exists!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson applies a partial update: a new title regenerates the slug,
// and a supplied block sequence replaces the previous one wholesale.
func UpdateLesson(c *fiber.Ctx) error {
	lessonId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title         *string          `json:"title"`
		ContentBlocks *blocks.Sequence `json:"contentBlocks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
		lesson.Slug = utils.Slugify(*reqData.Title)
	}
	if reqData.ContentBlocks != nil {
		lesson.ContentBlocks = datatypes.NewJSONType(*reqData.ContentBlocks)
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A lesson with this slug already exists!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes the lesson.
func DeleteLesson(c *fiber.Ctx) error {
	lessonId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, lessonId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// Hard delete so the slug is immediately free for reuse.
	if err := database.Database.Db.Unscoped().Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
