package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/services"
	"github.com/aurelita66/autoshop-api/utils"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// setupControllerTest wires an in-memory database (with foreign keys on, so
// cascades behave like production) and a fresh session store
func setupControllerTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := config.MigrateDatabase(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)
	services.SetSessionStore(services.NewSessionStore(time.Hour))
	return db
}

// newTestRouter returns a bare router with only the session middleware, so
// each test registers exactly the routes it exercises
func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.Session())
	return router
}

func performJSON(router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response is not valid JSON: %v\nbody: %s", err, w.Body.String())
	}
	return response
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	response := parseResponse(t, w)
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %s", w.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// createTestUser inserts a user with a known password and a default profile
func createTestUser(t *testing.T, db *gorm.DB, username string, staff bool) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		IsStaff:  staff,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	if err := db.Create(&models.Profile{UserID: user.ID}).Error; err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}
	return &user
}

// sessionFor logs the user in directly at the store level and returns the
// cookie a browser would carry
func sessionFor(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	sess, err := services.GetSessionStore().Create()
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	sess.UserID = user.ID
	services.GetSessionStore().Save(sess)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: sess.ID}
}

// seedVehicleChain creates the manufacturer-model-client-vehicle chain used
// by most listing and order tests
func seedVehicleChain(t *testing.T, db *gorm.DB, i int) models.Vehicle {
	t.Helper()

	manufacturer := models.Manufacturer{Name: "BMW"}
	if err := db.FirstOrCreate(&manufacturer, models.Manufacturer{Name: "BMW"}).Error; err != nil {
		t.Fatalf("Failed to seed manufacturer: %v", err)
	}

	carModel := models.CarModel{Name: fmt.Sprintf("M%d", i), ManufacturerID: &manufacturer.ID}
	if err := db.Create(&carModel).Error; err != nil {
		t.Fatalf("Failed to seed car model: %v", err)
	}

	client := models.Client{FirstName: "Jonas", LastName: fmt.Sprintf("Kazlauskas%d", i)}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}

	vehicle := models.Vehicle{
		RegistrationNo: fmt.Sprintf("AB%04d", i),
		VIN:            fmt.Sprintf("VIN%014d", i),
		CarModelID:     carModel.ID,
		ClientID:       client.ID,
	}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}
	return vehicle
}
