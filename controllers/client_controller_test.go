package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
)

func TestClientCRUD(t *testing.T) {
	db := setupControllerTest(t)
	staff := createTestUser(t, db, "staff", true)
	cookie := sessionFor(t, staff)

	router := newTestRouter()
	staffGroup := router.Group("", middleware.RequireStaff())
	staffGroup.GET("/api/v1/clients", GetClients)
	staffGroup.GET("/api/v1/clients/:id", GetClient)
	staffGroup.POST("/api/v1/clients", CreateClient)
	staffGroup.PUT("/api/v1/clients/:id", UpdateClient)
	staffGroup.DELETE("/api/v1/clients/:id", DeleteClient)

	// Client data is staff-only in both directions
	w := performJSON(router, http.MethodGet, "/api/v1/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Create
	w = performJSON(router, http.MethodPost, "/api/v1/clients",
		map[string]interface{}{"first_name": "Ruta", "last_name": "Adomaityte", "phone": "861111111"}, cookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	id := int(data["id"].(float64))

	w = performJSON(router, http.MethodPost, "/api/v1/clients",
		map[string]interface{}{"first_name": "Aldona", "last_name": "Adomaityte"}, cookie)
	assert.Equal(t, http.StatusCreated, w.Code)

	// List is ordered by last name, then first name
	w = performJSON(router, http.MethodGet, "/api/v1/clients", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	listData := parseResponse(t, w)["data"].(map[string]interface{})
	clients := listData["clients"].([]interface{})
	assert.Len(t, clients, 2)
	assert.Equal(t, "Aldona", clients[0].(map[string]interface{})["first_name"])
	assert.Equal(t, "Ruta", clients[1].(map[string]interface{})["first_name"])

	// Update
	w = performJSON(router, http.MethodPut, fmt.Sprintf("/api/v1/clients/%d", id),
		map[string]interface{}{"first_name": "Ruta", "last_name": "Kairiene", "phone": "862222222"}, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Client
	assert.NoError(t, db.First(&reloaded, id).Error)
	assert.Equal(t, "Kairiene", reloaded.LastName)

	// Delete
	w = performJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/clients/%d", id), nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%d", id), nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CLIENT_NOT_FOUND", errorCode(t, w))
}

func TestGetClientWithVehicles(t *testing.T) {
	db := setupControllerTest(t)
	staff := createTestUser(t, db, "staff", true)
	vehicle := seedVehicleChain(t, db, 1)

	router := newTestRouter()
	router.GET("/api/v1/clients/:id", middleware.RequireStaff(), GetClient)

	w := performJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%d", vehicle.ClientID),
		nil, sessionFor(t, staff))
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	vehicles := data["vehicles"].([]interface{})
	assert.Len(t, vehicles, 1)
	assert.Equal(t, vehicle.RegistrationNo, vehicles[0].(map[string]interface{})["registration_no"])
}
