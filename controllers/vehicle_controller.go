package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/utils"
)

// VehiclePageSize is the number of vehicles per listing page
const VehiclePageSize = 8

// VehicleRequest represents the request body for creating or updating a vehicle
type VehicleRequest struct {
	RegistrationNo string `json:"registration_no" binding:"required,max=6"`
	VIN            string `json:"vin" binding:"required,max=17"`
	CarModelID     uint   `json:"car_model_id" binding:"required"`
	ClientID       uint   `json:"client_id" binding:"required"`
	Description    string `json:"description"`
}

// GetVehicles handles GET /api/v1/vehicles - paginated vehicle listing.
// Out-of-range pages are clamped rather than rejected.
func GetVehicles(c *gin.Context) {
	db := config.GetDB()

	var total int64
	if err := db.Model(&models.Vehicle{}).Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count vehicles")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	p := utils.Paginate(page, VehiclePageSize, total)

	var vehicles []models.Vehicle
	err := db.Preload("CarModel.Manufacturer").Preload("Client").
		Order("id").
		Limit(p.PageSize).Offset(p.Offset()).
		Find(&vehicles).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch vehicles")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"vehicles":   vehicles,
		"pagination": p,
	})
}

// GetVehicle handles GET /api/v1/vehicles/:id - single vehicle with its model,
// manufacturer and owner
func GetVehicle(c *gin.Context) {
	db := config.GetDB()

	var vehicle models.Vehicle
	err := db.Preload("CarModel.Manufacturer").Preload("Client").
		First(&vehicle, "id = ?", c.Param("id")).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
		return
	}

	respondData(c, http.StatusOK, vehicle)
}

// SearchVehicles handles GET /api/v1/vehicles/search?q= - case-insensitive
// substring search across owner names, model, manufacturer, registration
// number and VIN. A single term must match at least one field; a blank term
// matches nothing.
func SearchVehicles(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondData(c, http.StatusOK, gin.H{
			"query":    query,
			"vehicles": []models.Vehicle{},
		})
		return
	}

	db := config.GetDB()
	like := "%" + strings.ToLower(query) + "%"

	var vehicles []models.Vehicle
	// Manufacturer joins via LEFT JOIN so models without one stay searchable
	err := db.
		Joins("JOIN clients ON clients.id = vehicles.client_id").
		Joins("JOIN car_models ON car_models.id = vehicles.car_model_id").
		Joins("LEFT JOIN manufacturers ON manufacturers.id = car_models.manufacturer_id").
		Where(`LOWER(clients.first_name) LIKE ? OR LOWER(clients.last_name) LIKE ?
			OR LOWER(car_models.name) LIKE ? OR LOWER(manufacturers.name) LIKE ?
			OR LOWER(vehicles.registration_no) LIKE ? OR LOWER(vehicles.vin) LIKE ?`,
			like, like, like, like, like, like).
		Preload("CarModel.Manufacturer").Preload("Client").
		Order("vehicles.id").
		Find(&vehicles).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to search vehicles")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"query":    query,
		"vehicles": vehicles,
	})
}

// CreateVehicle handles POST /api/v1/vehicles (staff only)
func CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()

	var carModel models.CarModel
	if err := db.First(&carModel, req.CarModelID).Error; err != nil {
		respondError(c, http.StatusNotFound, "CAR_MODEL_NOT_FOUND", "Car model not found")
		return
	}
	var client models.Client
	if err := db.First(&client, req.ClientID).Error; err != nil {
		respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		return
	}

	vehicle := models.Vehicle{
		RegistrationNo: req.RegistrationNo,
		VIN:            req.VIN,
		CarModelID:     req.CarModelID,
		ClientID:       req.ClientID,
		Description:    req.Description,
	}

	if err := db.Create(&vehicle).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_VEHICLE",
				"A vehicle with this registration number or VIN already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create vehicle")
		return
	}

	db.Preload("CarModel.Manufacturer").Preload("Client").First(&vehicle, vehicle.ID)
	respondData(c, http.StatusCreated, vehicle)
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id (staff only)
func UpdateVehicle(c *gin.Context) {
	db := config.GetDB()

	var vehicle models.Vehicle
	if err := db.First(&vehicle, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	vehicle.RegistrationNo = req.RegistrationNo
	vehicle.VIN = req.VIN
	vehicle.CarModelID = req.CarModelID
	vehicle.ClientID = req.ClientID
	vehicle.Description = req.Description

	if err := db.Save(&vehicle).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_VEHICLE",
				"A vehicle with this registration number or VIN already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update vehicle")
		return
	}

	db.Preload("CarModel.Manufacturer").Preload("Client").First(&vehicle, vehicle.ID)
	respondData(c, http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id (staff only).
// Orders for the vehicle, with their lines and reviews, go with it.
func DeleteVehicle(c *gin.Context) {
	db := config.GetDB()

	var vehicle models.Vehicle
	if err := db.First(&vehicle, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
		return
	}

	if err := db.Delete(&vehicle).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete vehicle")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
