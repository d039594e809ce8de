package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eduapi/config"
	"eduapi/database"
	"eduapi/models"
	lessonRoutes "eduapi/routers/lessonRoutes"
	subjectRoutes "eduapi/routers/subjectRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()
	database.ResetTestDb()

	app := fiber.New()
	subjectRoutes.SetupSubjectRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	return app
}

func seedSubject(t *testing.T) models.Subject {
	t.Helper()
	subject := models.Subject{Title: "JS", Description: "desc"}
	require.NoError(t, database.Database.Db.Create(&subject).Error)
	return subject
}

func jsonRequest(method, path string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func createLesson(t *testing.T, app *fiber.App, subjectID uint, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	return doJSON(t, app, jsonRequest(http.MethodPost, fmt.Sprintf("/api/subjects/%d/lessons", subjectID), payload))
}

func TestCreateAndGetLesson(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	status, body := createLesson(t, app, subject.ID, fiber.Map{
		"title": "Intro",
		"contentBlocks": []fiber.Map{
			{"type": "heading", "text": "Hi", "level": 2},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	status, body = doJSON(t, app, jsonRequest(http.MethodGet, fmt.Sprintf("/api/lessons/%d", lessonID), nil))
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "intro", data["slug"])
	assert.Equal(t, float64(subject.ID), data["subject"])

	contentBlocks := data["contentBlocks"].([]interface{})
	require.Len(t, contentBlocks, 1)
	block := contentBlocks[0].(map[string]interface{})
	assert.Equal(t, "heading", block["type"])
	assert.Equal(t, "Hi", block["text"])
	assert.Equal(t, float64(2), block["level"])
}

func TestCreateLessonSubjectNotFound(t *testing.T) {
	app := setupApp(t)

	status, _ := createLesson(t, app, 999, fiber.Map{"title": "Intro", "contentBlocks": []fiber.Map{}})
	assert.Equal(t, http.StatusNotFound, status)

	// No write happened
	var count int64
	database.Database.Db.Model(&models.Lesson{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateLessonSlugConflict(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	status, _ := createLesson(t, app, subject.ID, fiber.Map{"title": "Intro", "contentBlocks": []fiber.Map{}})
	require.Equal(t, http.StatusCreated, status)

	status, _ = createLesson(t, app, subject.ID, fiber.Map{"title": "Intro", "contentBlocks": []fiber.Map{}})
	assert.Equal(t, http.StatusConflict, status)
}

func TestCreateLessonInvalidBlock(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	// heading without text
	status, _ := createLesson(t, app, subject.ID, fiber.Map{
		"title":         "Intro",
		"contentBlocks": []fiber.Map{{"type": "heading", "level": 2}},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// unknown block type
	status, _ = createLesson(t, app, subject.ID, fiber.Map{
		"title":         "Intro",
		"contentBlocks": []fiber.Map{{"type": "video", "url": "x"}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListLessonsBySubject(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	for _, title := range []string{"First", "Second"} {
		status, _ := createLesson(t, app, subject.ID, fiber.Map{"title": title, "contentBlocks": []fiber.Map{}})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := doJSON(t, app, jsonRequest(http.MethodGet, fmt.Sprintf("/api/subjects/%d/lessons", subject.ID), nil))
	require.Equal(t, http.StatusOK, status)
	lessons := body["data"].(map[string]interface{})["lessons"].([]interface{})
	require.Len(t, lessons, 2)
	assert.Equal(t, "first", lessons[0].(map[string]interface{})["slug"])
	assert.Equal(t, "second", lessons[1].(map[string]interface{})["slug"])
}

func TestUpdateLessonTitleRegeneratesSlug(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	status, body := createLesson(t, app, subject.ID, fiber.Map{
		"title":         "Intro",
		"contentBlocks": []fiber.Map{{"type": "paragraph", "text": "p"}},
	})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	status, body = doJSON(t, app, jsonRequest(http.MethodPut, fmt.Sprintf("/api/lessons/%d", lessonID), fiber.Map{
		"title": "New Title",
	}))
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "new-title", data["slug"])

	// Blocks were left untouched by the title-only update
	contentBlocks := data["contentBlocks"].([]interface{})
	require.Len(t, contentBlocks, 1)
	assert.Equal(t, "paragraph", contentBlocks[0].(map[string]interface{})["type"])
}

func TestUpdateLessonReplacesBlocksWholesale(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	status, body := createLesson(t, app, subject.ID, fiber.Map{
		"title": "Intro",
		"contentBlocks": []fiber.Map{
			{"type": "paragraph", "text": "one"},
			{"type": "paragraph", "text": "two"},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	status, body = doJSON(t, app, jsonRequest(http.MethodPut, fmt.Sprintf("/api/lessons/%d", lessonID), fiber.Map{
		"contentBlocks": []fiber.Map{{"type": "code", "code": "x = 1", "language": "python"}},
	}))
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Intro", data["title"])

	contentBlocks := data["contentBlocks"].([]interface{})
	require.Len(t, contentBlocks, 1)
	assert.Equal(t, "code", contentBlocks[0].(map[string]interface{})["type"])
}

func TestUpdateLessonNotFound(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, jsonRequest(http.MethodPut, "/api/lessons/999", fiber.Map{"title": "x"}))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteLessonTwice(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	status, body := createLesson(t, app, subject.ID, fiber.Map{"title": "Intro", "contentBlocks": []fiber.Map{}})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	status, _ = doJSON(t, app, jsonRequest(http.MethodDelete, fmt.Sprintf("/api/lessons/%d", lessonID), nil))
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, jsonRequest(http.MethodDelete, fmt.Sprintf("/api/lessons/%d", lessonID), nil))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteLessonFreesSlugForReuse(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	status, body := createLesson(t, app, subject.ID, fiber.Map{"title": "Intro", "contentBlocks": []fiber.Map{}})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	status, _ = doJSON(t, app, jsonRequest(http.MethodDelete, fmt.Sprintf("/api/lessons/%d", lessonID), nil))
	require.Equal(t, http.StatusOK, status)

	// The slug of a deleted lesson is free again
	status, body = createLesson(t, app, subject.ID, fiber.Map{"title": "Intro", "contentBlocks": []fiber.Map{}})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "intro", body["data"].(map[string]interface{})["slug"])
}

func TestLessonPreview(t *testing.T) {
	app := setupApp(t)
	subject := seedSubject(t)

	status, body := createLesson(t, app, subject.ID, fiber.Map{
		"title": "Intro",
		"contentBlocks": []fiber.Map{
			{"type": "heading", "text": "Hi", "level": 2},
			{"type": "paragraph", "text": "Welcome"},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/lessons/%d/preview", lessonID), nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(html), "<h2>Hi</h2>"))
	assert.True(t, strings.Contains(string(html), "<p>Welcome</p>"))
}
