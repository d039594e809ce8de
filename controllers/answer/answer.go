package controllers

import (
	"errors"

	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddAnswer appends an answer to a discussion. The author is taken from the
// session token.
func AddAnswer(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	discussionId, err := c.ParamsInt("discussionId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discussion not found!", nil)
	}

	var discussion models.Discussion
	if err := database.Database.Db.First(&discussion, discussionId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discussion not found!", nil)
	}

	reqData, ok := c.Locals("validatedAnswer").(*struct {
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	answer := models.Answer{
		Content:      reqData.Content,
		AuthorID:     user.ID,
		Author:       user,
		DiscussionID: discussion.ID,
	}

	if err := database.Database.Db.Create(&answer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Answer added successfully!", fiber.Map{
		"id":         answer.ID,
		"content":    answer.Content,
		"discussion": answer.DiscussionID,
		"author":     user.Public(),
		"likes":      []uint{},
		"createdAt":  answer.CreatedAt,
	})
}

// ToggleLike flips the caller's like on an answer: present removes it,
// absent adds it. The delete-else-insert against the unique index keeps the
// flip atomic under concurrent requests.
func ToggleLike(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	answerId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Answer not found!", nil)
	}

	var answer models.Answer
	if err := database.Database.Db.First(&answer, answerId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Answer not found!", nil)
	}

	res := database.Database.Db.
		Where("answer_id = ? AND user_id = ?", answer.ID, userId).
		Delete(&models.AnswerLike{})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to toggle like!", nil)
	}
	if res.RowsAffected == 0 {
		like := models.AnswerLike{AnswerID: answer.ID, UserID: userId}
		if err := database.Database.Db.Create(&like).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to toggle like!", nil)
		}
	}

	var likes []models.AnswerLike
	if err := database.Database.Db.Where("answer_id = ?", answer.ID).
		Order("created_at asc, id asc").Find(&likes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch likes!", nil)
	}

	ids := make([]uint, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.UserID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Like toggled successfully!", fiber.Map{
		"likes": ids,
	})
}
