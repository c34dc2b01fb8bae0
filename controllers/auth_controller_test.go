package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/services"
)

func TestRegister(t *testing.T) {
	db := setupControllerTest(t)
	createTestUser(t, db, "taken", false)

	router := newTestRouter()
	router.POST("/api/v1/auth/register", Register)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"username":  "naujas",
				"email":     "naujas@example.com",
				"password":  "password123",
				"password2": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "password shorter than eight characters",
			requestBody: map[string]interface{}{
				"username":  "short",
				"email":     "short@example.com",
				"password":  "1234567",
				"password2": "1234567",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "PASSWORD_TOO_SHORT",
		},
		{
			name: "passwords do not match",
			requestBody: map[string]interface{}{
				"username":  "mismatch",
				"email":     "mismatch@example.com",
				"password":  "password123",
				"password2": "password124",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "PASSWORD_MISMATCH",
		},
		{
			name: "duplicate username",
			requestBody: map[string]interface{}{
				"username":  "taken",
				"email":     "fresh@example.com",
				"password":  "password123",
				"password2": "password123",
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "USERNAME_EXISTS",
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"username":  "fresh",
				"email":     "taken@example.com",
				"password":  "password123",
				"password2": "password123",
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "EMAIL_EXISTS",
		},
		{
			name: "invalid email",
			requestBody: map[string]interface{}{
				"username":  "bademail",
				"email":     "not-an-email",
				"password":  "password123",
				"password2": "password123",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "missing username",
			requestBody: map[string]interface{}{
				"email":     "nouser@example.com",
				"password":  "password123",
				"password2": "password123",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before int64
			db.Model(&models.User{}).Count(&before)

			w := performJSON(router, http.MethodPost, "/api/v1/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(t, w))

				// A rejected registration leaves no partial state
				var after int64
				db.Model(&models.User{}).Count(&after)
				assert.Equal(t, before, after)
			}
		})
	}
}

func TestRegisterCreatesProfile(t *testing.T) {
	db := setupControllerTest(t)

	router := newTestRouter()
	router.POST("/api/v1/auth/register", Register)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":  "ruta",
		"email":     "ruta@example.com",
		"password":  "password123",
		"password2": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.Preload("Profile").Where("username = ?", "ruta").First(&user).Error)
	assert.NotNil(t, user.Profile, "registration should create a profile")
	assert.Equal(t, models.DefaultProfilePicture, user.Profile.Picture)
	assert.False(t, user.IsStaff, "self-registered users are never staff")

	// The hash is stored, never the plaintext
	assert.NotEqual(t, "password123", user.Password)
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestLogin(t *testing.T) {
	db := setupControllerTest(t)
	createTestUser(t, db, "egle", false)

	router := newTestRouter()
	router.POST("/api/v1/auth/login", Login)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"username": "egle",
				"password": "password123",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"username": "egle",
				"password": "wrong-password",
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "INVALID_CREDENTIALS",
		},
		{
			name: "unknown username",
			requestBody: map[string]interface{}{
				"username": "nobody",
				"password": "password123",
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "INVALID_CREDENTIALS",
		},
		{
			name:           "missing credentials",
			requestBody:    map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/api/v1/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(t, w))
				assert.Empty(t, w.Result().Cookies(), "failed logins must not set a session cookie")
			} else {
				cookies := w.Result().Cookies()
				assert.NotEmpty(t, cookies, "login should set the session cookie")
				assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
			}
		})
	}
}

func TestLoginThenAuthenticatedRequest(t *testing.T) {
	db := setupControllerTest(t)
	services.NewMockImageService().SetAsMockForTesting()
	createTestUser(t, db, "mantas", false)

	router := newTestRouter()
	router.POST("/api/v1/auth/login", Login)
	router.GET("/api/v1/users/me", middleware.RequireAuth(), GetMyProfile)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "mantas",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := w.Result().Cookies()[0]

	w = performJSON(router, http.MethodGet, "/api/v1/users/me", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "mantas", user["username"])
}

func TestLogout(t *testing.T) {
	db := setupControllerTest(t)
	user := createTestUser(t, db, "laura", false)
	cookie := sessionFor(t, user)

	router := newTestRouter()
	router.POST("/api/v1/auth/logout", Logout)
	router.GET("/api/v1/users/me", middleware.RequireAuth(), GetMyProfile)

	w := performJSON(router, http.MethodPost, "/api/v1/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// The old session no longer authenticates
	w = performJSON(router, http.MethodGet, "/api/v1/users/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, w))
}
