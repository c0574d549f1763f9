// File: /controllers/auth_controller_test.go
package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventure-api/config"
	"eventure-api/models"
	"eventure-api/routes"
	"eventure-api/services"
)

var controllerDBCounter int64

// newTestServer wires the full HTTP stack over an in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:eventure_http_%d?mode=memory&cache=shared", atomic.AddInt64(&controllerDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Category{},
		&models.Event{},
	))

	require.NoError(t, db.Create(&models.Location{Name: "Budapest", Latitude: 47.4979, Longitude: 19.0402}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Concert"}).Error)

	cfg := &config.Config{JWTSecret: "test-secret"}
	r := gin.New()
	routes.SetupRoutes(r, db, cfg, services.NewEmailService(cfg))

	return r, db
}

func doJSON(r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/signup",
		`{"username":"bela","name":"Bela","email":"bela@example.com","password":"hunter22"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func login(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/login",
		`{"username":"bela","password":"hunter22"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r)

	w := doJSON(r, http.MethodPost, "/api/login",
		`{"username":"bela","password":"hunter22"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var token *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			token = c
		}
	}
	require.NotNil(t, token, "login must set the token cookie")
	assert.NotEmpty(t, token.Value)
	assert.True(t, token.HttpOnly)
	assert.True(t, token.Secure)
	assert.Equal(t, http.SameSiteNoneMode, token.SameSite)
	assert.Equal(t, int(14*24*3600), token.MaxAge)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bela", body.UserName)
	assert.Equal(t, []string{"User"}, body.Roles)
}

func TestLogin_BadCredentials_Unauthorized(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r)

	w := doJSON(r, http.MethodPost, "/api/login",
		`{"username":"bela","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong username or password.")
}

func TestLogin_InvalidInput_BadRequest(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/login", `{"username":"bela"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid inputs")
}

func TestLogout_AlwaysOk(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/logout", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully logged out")
}

func TestSignup_InvalidEmail_FieldErrors(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/signup",
		`{"username":"bela","name":"Bela","email":"not-an-email","password":"hunter22"}`, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors []map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "Email", body.Errors[0]["field"])
}

func TestSignup_EchoesUserWithoutPassword(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/signup",
		`{"username":"bela","name":"Bela","email":"bela@example.com","password":"hunter22"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful")
	assert.Contains(t, w.Body.String(), `"username":"bela"`)
	assert.NotContains(t, w.Body.String(), "hunter22")
}

func TestCreateEvent_RequiresAuthentication(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/event", `{}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEvent_WithSessionCookie(t *testing.T) {
	r, db := newTestServer(t)
	signup(t, r)
	cookies := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/event", `{
		"event_name": "Test Event",
		"description": "Test event description",
		"starting_date": "2030-08-24 18:00:00+02",
		"ending_date": "2030-08-24 19:00:00+02",
		"head_count": 100,
		"recommended_age": 18,
		"price": 20,
		"location": "Budapest",
		"category": "Concert"
	}`, cookies)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Event created")

	var count int64
	require.NoError(t, db.Model(&models.Event{}).Where("event_name = ?", "Test Event").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The creator sees it under their own events
	mine := doJSON(r, http.MethodGet, "/api/events/mine", "", cookies)
	require.Equal(t, http.StatusOK, mine.Code)
	assert.Contains(t, mine.Body.String(), "Test Event")
}

func TestCreateEvent_UnknownLocation_BadRequest(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r)
	cookies := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/event", `{
		"event_name": "Test Event",
		"description": "Test event description",
		"starting_date": "2030-08-24 18:00:00+02",
		"ending_date": "2030-08-24 19:00:00+02",
		"location": "Atlantis",
		"category": "Concert"
	}`, cookies)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Couldn't find location.")
}
