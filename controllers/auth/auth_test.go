package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eduapi/config"
	"eduapi/database"
	"eduapi/models"
	authRoutes "eduapi/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenInfo stands in for Google's tokeninfo endpoint. It accepts the
// token "good-token" and rejects everything else.
func fakeTokenInfo(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("id_token") {
		case "good-token":
			json.NewEncoder(w).Encode(map[string]string{
				"sub":     "google-sub-1",
				"email":   "student@example.com",
				"name":    "Student One",
				"picture": "https://example.com/avatar.png",
				"aud":     "client-id-under-test",
			})
		case "wrong-audience":
			json.NewEncoder(w).Encode(map[string]string{
				"sub":   "google-sub-2",
				"email": "other@example.com",
				"name":  "Other",
				"aud":   "someone-elses-client",
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
		}
	}))
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()
	database.ResetTestDb()

	ts := fakeTokenInfo(t)
	t.Cleanup(ts.Close)
	config.AppConfig.GoogleTokenInfoURL = ts.URL
	config.AppConfig.GoogleClientID = "client-id-under-test"

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func login(t *testing.T, app *fiber.App, token string) (int, map[string]interface{}) {
	t.Helper()
	payload, _ := json.Marshal(fiber.Map{"token": token})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/google", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestGoogleLoginCreatesUser(t *testing.T) {
	app := setupApp(t)

	status, body := login(t, app, "good-token")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "student@example.com", user["email"])
	assert.Equal(t, "Student One", user["name"])

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGoogleLoginFindsExistingUser(t *testing.T) {
	app := setupApp(t)

	status, first := login(t, app, "good-token")
	require.Equal(t, http.StatusOK, status)
	status, second := login(t, app, "good-token")
	require.Equal(t, http.StatusOK, status)

	firstID := first["data"].(map[string]interface{})["user"].(map[string]interface{})["ID"]
	secondID := second["data"].(map[string]interface{})["user"].(map[string]interface{})["ID"]
	assert.Equal(t, firstID, secondID)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGoogleLoginInvalidToken(t *testing.T) {
	app := setupApp(t)

	status, _ := login(t, app, "garbage")
	assert.Equal(t, http.StatusBadRequest, status)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestGoogleLoginAudienceMismatch(t *testing.T) {
	app := setupApp(t)

	status, _ := login(t, app, "wrong-audience")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGoogleLoginMissingToken(t *testing.T) {
	app := setupApp(t)

	status, _ := login(t, app, "")
	assert.Equal(t, http.StatusBadRequest, status)
}
