package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/models"
)

// ServiceRequest represents the request body for a shop service.
// Price is decimal, accepted as a JSON number or string.
type ServiceRequest struct {
	Name  string          `json:"name" binding:"required,max=50"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// maxServicePrice matches the decimal(7,2) column: five integer digits
var maxServicePrice = decimal.RequireFromString("99999.99")

func validServicePrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(maxServicePrice)
}

// GetServices handles GET /api/v1/services - the full service price list
func GetServices(c *gin.Context) {
	db := config.GetDB()

	var shopServices []models.Service
	if err := db.Order("name").Find(&shopServices).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch services")
		return
	}

	respondData(c, http.StatusOK, gin.H{"services": shopServices})
}

// CreateService handles POST /api/v1/services (staff only)
func CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !validServicePrice(req.Price) {
		respondError(c, http.StatusBadRequest, "INVALID_PRICE", "Price must be between 0 and 99999.99")
		return
	}

	service := models.Service{Name: req.Name, Price: req.Price}
	if err := config.GetDB().Create(&service).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create service")
		return
	}

	respondData(c, http.StatusCreated, service)
}

// UpdateService handles PUT /api/v1/services/:id (staff only). Totals are
// never snapshotted, so a price change is reflected in every order that
// references the service, past or present.
func UpdateService(c *gin.Context) {
	db := config.GetDB()

	var service models.Service
	if err := db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !validServicePrice(req.Price) {
		respondError(c, http.StatusBadRequest, "INVALID_PRICE", "Price must be between 0 and 99999.99")
		return
	}

	service.Name = req.Name
	service.Price = req.Price
	if err := db.Save(&service).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update service")
		return
	}

	respondData(c, http.StatusOK, service)
}

// DeleteService handles DELETE /api/v1/services/:id (staff only). Order lines
// referencing the service cascade with it.
func DeleteService(c *gin.Context) {
	db := config.GetDB()

	var service models.Service
	if err := db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		return
	}

	if err := db.Delete(&service).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete service")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Service deleted"})
}
