package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/models"
)

// ManufacturerRequest represents the request body for a manufacturer
type ManufacturerRequest struct {
	Name string `json:"name" binding:"required,max=20"`
}

// CarModelRequest represents the request body for a car model. The
// manufacturer is optional and may be detached later.
type CarModelRequest struct {
	Name           string `json:"name" binding:"required,max=20"`
	ManufacturerID *uint  `json:"manufacturer_id"`
}

// GetManufacturers handles GET /api/v1/manufacturers
func GetManufacturers(c *gin.Context) {
	db := config.GetDB()

	var manufacturers []models.Manufacturer
	if err := db.Order("name").Find(&manufacturers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch manufacturers")
		return
	}

	respondData(c, http.StatusOK, gin.H{"manufacturers": manufacturers})
}

// CreateManufacturer handles POST /api/v1/manufacturers (staff only)
func CreateManufacturer(c *gin.Context) {
	var req ManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	manufacturer := models.Manufacturer{Name: req.Name}
	if err := config.GetDB().Create(&manufacturer).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create manufacturer")
		return
	}

	respondData(c, http.StatusCreated, manufacturer)
}

// UpdateManufacturer handles PUT /api/v1/manufacturers/:id (staff only)
func UpdateManufacturer(c *gin.Context) {
	db := config.GetDB()

	var manufacturer models.Manufacturer
	if err := db.First(&manufacturer, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "MANUFACTURER_NOT_FOUND", "Manufacturer not found")
		return
	}

	var req ManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	manufacturer.Name = req.Name
	if err := db.Save(&manufacturer).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update manufacturer")
		return
	}

	respondData(c, http.StatusOK, manufacturer)
}

// DeleteManufacturer handles DELETE /api/v1/manufacturers/:id (staff only).
// Car models keep existing with the manufacturer reference cleared.
func DeleteManufacturer(c *gin.Context) {
	db := config.GetDB()

	var manufacturer models.Manufacturer
	if err := db.First(&manufacturer, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "MANUFACTURER_NOT_FOUND", "Manufacturer not found")
		return
	}

	if err := db.Delete(&manufacturer).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete manufacturer")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Manufacturer deleted"})
}

// GetCarModels handles GET /api/v1/car-models
func GetCarModels(c *gin.Context) {
	db := config.GetDB()

	var carModels []models.CarModel
	if err := db.Preload("Manufacturer").Order("name").Find(&carModels).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch car models")
		return
	}

	respondData(c, http.StatusOK, gin.H{"car_models": carModels})
}

// CreateCarModel handles POST /api/v1/car-models (staff only)
func CreateCarModel(c *gin.Context) {
	var req CarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()

	if req.ManufacturerID != nil {
		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, *req.ManufacturerID).Error; err != nil {
			respondError(c, http.StatusNotFound, "MANUFACTURER_NOT_FOUND", "Manufacturer not found")
			return
		}
	}

	carModel := models.CarModel{Name: req.Name, ManufacturerID: req.ManufacturerID}
	if err := db.Create(&carModel).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create car model")
		return
	}

	db.Preload("Manufacturer").First(&carModel, carModel.ID)
	respondData(c, http.StatusCreated, carModel)
}

// UpdateCarModel handles PUT /api/v1/car-models/:id (staff only)
func UpdateCarModel(c *gin.Context) {
	db := config.GetDB()

	var carModel models.CarModel
	if err := db.First(&carModel, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "CAR_MODEL_NOT_FOUND", "Car model not found")
		return
	}

	var req CarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if req.ManufacturerID != nil {
		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, *req.ManufacturerID).Error; err != nil {
			respondError(c, http.StatusNotFound, "MANUFACTURER_NOT_FOUND", "Manufacturer not found")
			return
		}
	}

	carModel.Name = req.Name
	carModel.ManufacturerID = req.ManufacturerID

	// Save skips nil associations, Updates with a map does not
	err := db.Model(&carModel).Updates(map[string]any{
		"name":            carModel.Name,
		"manufacturer_id": carModel.ManufacturerID,
	}).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update car model")
		return
	}

	db.Preload("Manufacturer").First(&carModel, carModel.ID)
	respondData(c, http.StatusOK, carModel)
}

// DeleteCarModel handles DELETE /api/v1/car-models/:id (staff only)
func DeleteCarModel(c *gin.Context) {
	db := config.GetDB()

	var carModel models.CarModel
	if err := db.First(&carModel, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "CAR_MODEL_NOT_FOUND", "Car model not found")
		return
	}

	if err := db.Delete(&carModel).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete car model")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Car model deleted"})
}
