package controllers

import (
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"

	"github.com/gofiber/fiber/v2"
)

func discussionResponse(d models.Discussion) fiber.Map {
	return fiber.Map{
		"id":        d.ID,
		"title":     d.Title,
		"content":   d.Content,
		"postType":  d.PostType,
		"author":    d.Author.Public(),
		"createdAt": d.CreatedAt,
	}
}

func answerResponse(a models.Answer) fiber.Map {
	return fiber.Map{
		"id":         a.ID,
		"content":    a.Content,
		"discussion": a.DiscussionID,
		"author":     a.Author.Public(),
		"likes":      a.LikeUserIDs(),
		"createdAt":  a.CreatedAt,
	}
}

// CreateDiscussion posts a new question. The author is taken from the
// session token, never from the request body.
func CreateDiscussion(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedDiscussion").(*struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		PostType string `json:"postType"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	discussion := models.Discussion{
		Title:    reqData.Title,
		Content:  reqData.Content,
		PostType: reqData.PostType,
		AuthorID: user.ID,
		Author:   user,
	}

	if err := database.Database.Db.Create(&discussion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create discussion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Discussion created successfully!", discussionResponse(discussion))
}

// GetAllDiscussions returns every discussion, newest first, with author
// identity resolved.
func GetAllDiscussions(c *fiber.Ctx) error {
	var discussions []models.Discussion
	if err := database.Database.Db.Preload("Author").
		Order("created_at desc, id desc").Find(&discussions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discussions!", nil)
	}

	out := make([]fiber.Map, 0, len(discussions))
	for _, d := range discussions {
		out = append(out, discussionResponse(d))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discussions fetched successfully!", fiber.Map{
		"discussions": out,
	})
}

// GetMyDiscussions returns the caller's own discussions, newest first.
func GetMyDiscussions(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var discussions []models.Discussion
	if err := database.Database.Db.Preload("Author").
		Where("author_id = ?", userId).
		Order("created_at desc, id desc").Find(&discussions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discussions!", nil)
	}

	out := make([]fiber.Map, 0, len(discussions))
	for _, d := range discussions {
		out = append(out, discussionResponse(d))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discussions fetched successfully!", fiber.Map{
		"discussions": out,
	})
}

// GetDiscussionById returns one discussion plus its answers in creation
// order, authors resolved on each.
func GetDiscussionById(c *fiber.Ctx) error {
	discussionId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discussion not found!", nil)
	}

	var discussion models.Discussion
	if err := database.Database.Db.Preload("Author").
		First(&discussion, discussionId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discussion not found!", nil)
	}

	var answers []models.Answer
	if err := database.Database.Db.Preload("Author").Preload("Likes").
		Where("discussion_id = ?", discussion.ID).
		Order("created_at asc, id asc").Find(&answers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch answers!", nil)
	}

	outAnswers := make([]fiber.Map, 0, len(answers))
	for _, a := range answers {
		outAnswers = append(outAnswers, answerResponse(a))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discussion fetched successfully!", fiber.Map{
		"discussion": discussionResponse(discussion),
		"answers":    outAnswers,
	})
}
