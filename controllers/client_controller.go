package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/models"
)

// ClientRequest represents the request body for a client record
type ClientRequest struct {
	FirstName string `json:"first_name" binding:"required,max=20"`
	LastName  string `json:"last_name" binding:"required,max=20"`
	Phone     string `json:"phone" binding:"max=9"`
}

// GetClients handles GET /api/v1/clients (staff only), sorted by name
func GetClients(c *gin.Context) {
	db := config.GetDB()

	var clients []models.Client
	if err := db.Scopes(models.ClientsByName).Find(&clients).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch clients")
		return
	}

	respondData(c, http.StatusOK, gin.H{"clients": clients})
}

// GetClient handles GET /api/v1/clients/:id (staff only), with the client's
// vehicles
func GetClient(c *gin.Context) {
	db := config.GetDB()

	var client models.Client
	err := db.Preload("Vehicles.CarModel.Manufacturer").
		First(&client, "id = ?", c.Param("id")).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		return
	}

	respondData(c, http.StatusOK, client)
}

// CreateClient handles POST /api/v1/clients (staff only)
func CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	if err := config.GetDB().Create(&client).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create client")
		return
	}

	respondData(c, http.StatusCreated, client)
}

// UpdateClient handles PUT /api/v1/clients/:id (staff only)
func UpdateClient(c *gin.Context) {
	db := config.GetDB()

	var client models.Client
	if err := db.First(&client, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Phone = req.Phone

	if err := db.Save(&client).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update client")
		return
	}

	respondData(c, http.StatusOK, client)
}

// DeleteClient handles DELETE /api/v1/clients/:id (staff only). The client's
// vehicles, and through them their orders, cascade away.
func DeleteClient(c *gin.Context) {
	db := config.GetDB()

	var client models.Client
	if err := db.First(&client, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		return
	}

	if err := db.Delete(&client).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete client")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Client deleted"})
}
