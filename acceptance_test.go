package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/utils"
)

// TestCustomerJourneyAcceptance walks the whole flow a customer and a staff
// member go through: registration, login, catalog setup, an order with lines,
// the customer's order listing with derived totals, and a review.
func TestCustomerJourneyAcceptance(t *testing.T) {
	router, db := setupTestApp(t)

	// Seed a staff account directly; staff are never self-registered
	hash, err := utils.HashPassword("staff-password")
	assert.NoError(t, err)
	staff := models.User{Username: "meistras", Email: "meistras@example.com", Password: hash, IsStaff: true}
	assert.NoError(t, db.Create(&staff).Error)

	// Customer registers and logs in
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":  "klientas",
		"email":     "klientas@example.com",
		"password":  "password123",
		"password2": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "klientas",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	customerCookie := w.Result().Cookies()[0]

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "meistras",
		"password": "staff-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	staffCookie := w.Result().Cookies()[0]

	// Staff sets up the catalog
	w = doJSON(router, http.MethodPost, "/api/v1/manufacturers",
		map[string]interface{}{"name": "Volvo"}, staffCookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	manufacturerID := jsonID(t, w)

	w = doJSON(router, http.MethodPost, "/api/v1/car-models",
		map[string]interface{}{"name": "XC60", "manufacturer_id": manufacturerID}, staffCookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	carModelID := jsonID(t, w)

	w = doJSON(router, http.MethodPost, "/api/v1/clients",
		map[string]interface{}{"first_name": "Jonas", "last_name": "Vilkas", "phone": "861234567"}, staffCookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	clientID := jsonID(t, w)

	w = doJSON(router, http.MethodPost, "/api/v1/vehicles", map[string]interface{}{
		"registration_no": "VLK001",
		"vin":             "YV1DZ8256C2123456",
		"car_model_id":    carModelID,
		"client_id":       clientID,
	}, staffCookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	vehicleID := jsonID(t, w)

	w = doJSON(router, http.MethodPost, "/api/v1/services",
		map[string]interface{}{"name": "Oil change", "price": "45.50"}, staffCookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	serviceID := jsonID(t, w)

	// Staff opens an order for the customer and adds two oil changes
	var customer models.User
	assert.NoError(t, db.Where("username = ?", "klientas").First(&customer).Error)

	w = doJSON(router, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"vehicle_id": vehicleID,
		"user_id":    customer.ID,
	}, staffCookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := jsonID(t, w)

	w = doJSON(router, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/lines", orderID),
		map[string]interface{}{"service_id": serviceID, "quantity": 2}, staffCookie)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The customer sees exactly their order, with the live total
	w = doJSON(router, http.MethodGet, "/api/v1/orders/my", nil, customerCookie)
	assert.Equal(t, http.StatusOK, w.Code)

	data := jsonData(t, w)
	orders := data["orders"].([]interface{})
	assert.Len(t, orders, 1)
	order := orders[0].(map[string]interface{})
	assert.Equal(t, "91", order["total_price"], "2 x 45.50")
	assert.Equal(t, "accepted", order["status"])

	// Staff marks the order done; the customer reviews it
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/v1/orders/%d", orderID),
		map[string]interface{}{"status": "done"}, staffCookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/reviews", orderID),
		map[string]interface{}{"content": "Greita ir kokybiska"}, customerCookie)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", orderID), nil)
	data = jsonData(t, w)
	assert.Equal(t, "done", data["status"])
	reviews := data["reviews"].([]interface{})
	assert.Len(t, reviews, 1)

	// After logout the customer's surface closes again
	w = doJSON(router, http.MethodPost, "/api/v1/auth/logout", nil, customerCookie)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodGet, "/api/v1/orders/my", nil, customerCookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestDashboardAcceptance covers the anonymous visitor path: browsing the
// dashboard repeatedly bumps the per-session visit counter.
func TestDashboardAcceptance(t *testing.T) {
	router, _ := setupTestApp(t)

	w := doJSON(router, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := w.Result().Cookies()[0]
	assert.Equal(t, float64(1), jsonData(t, w)["visits"])

	w = doJSON(router, http.MethodGet, "/api/v1/dashboard", nil, cookie)
	assert.Equal(t, float64(2), jsonData(t, w)["visits"])
}
