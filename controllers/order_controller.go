package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/utils"
)

// OrderPageSize is the number of orders per listing page
const OrderPageSize = 5

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	VehicleID      uint       `json:"vehicle_id" binding:"required"`
	UserID         *uint      `json:"user_id"`
	ReturnDeadline *time.Time `json:"return_deadline"`
	Status         string     `json:"status"`
}

// UpdateOrderRequest represents the request body for updating an order.
// The acceptance date is write-once and cannot be changed here.
type UpdateOrderRequest struct {
	UserID         *uint      `json:"user_id"`
	ReturnDeadline *time.Time `json:"return_deadline"`
	Status         string     `json:"status"`
}

// OrderLineRequest represents the request body for adding a service line
type OrderLineRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  uint `json:"quantity" binding:"required,gt=0"`
}

// GetOrders handles GET /api/v1/orders - paginated order listing with
// derived totals and overdue flags
func GetOrders(c *gin.Context) {
	db := config.GetDB()

	var total int64
	if err := db.Model(&models.Order{}).Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count orders")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	p := utils.Paginate(page, OrderPageSize, total)

	var orders []models.Order
	err := db.Preload("Vehicle.CarModel.Manufacturer").Preload("Vehicle.Client").
		Preload("Lines.Service").
		Order("id").
		Limit(p.PageSize).Offset(p.Offset()).
		Find(&orders).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch orders")
		return
	}

	now := time.Now()
	for i := range orders {
		orders[i].Derive(now)
	}

	respondData(c, http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": p,
	})
}

// GetOrder handles GET /api/v1/orders/:id - single order with lines, reviews,
// vehicle and derived totals
func GetOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	err := db.Preload("Vehicle.CarModel.Manufacturer").Preload("Vehicle.Client").
		Preload("Lines.Service").Preload("Reviews").Preload("User").
		First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	order.Derive(time.Now())
	respondData(c, http.StatusOK, order)
}

// GetMyOrders handles GET /api/v1/orders/my - orders attached to the
// authenticated user, never anyone else's
func GetMyOrders(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required. Please log in.")
		return
	}

	db := config.GetDB()

	var orders []models.Order
	err := db.Preload("Vehicle.CarModel.Manufacturer").Preload("Lines.Service").
		Where("user_id = ?", user.ID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch orders")
		return
	}

	now := time.Now()
	for i := range orders {
		orders[i].Derive(now)
	}

	respondData(c, http.StatusOK, gin.H{"orders": orders})
}

// CreateOrder handles POST /api/v1/orders (staff only)
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if req.Status != "" && !models.OrderStatus(req.Status).Valid() {
		respondError(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
		return
	}

	db := config.GetDB()

	var vehicle models.Vehicle
	if err := db.First(&vehicle, req.VehicleID).Error; err != nil {
		respondError(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
		return
	}

	if req.UserID != nil {
		var user models.User
		if err := db.First(&user, *req.UserID).Error; err != nil {
			respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
	}

	order := models.Order{
		VehicleID:      req.VehicleID,
		UserID:         req.UserID,
		ReturnDeadline: req.ReturnDeadline,
		Status:         models.OrderStatus(req.Status),
	}

	if err := db.Create(&order).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create order")
		return
	}

	db.Preload("Vehicle.CarModel.Manufacturer").Preload("Vehicle.Client").First(&order, order.ID)
	order.Derive(time.Now())
	respondData(c, http.StatusCreated, order)
}

// UpdateOrder handles PUT /api/v1/orders/:id (staff only). Status may move
// between any two known states in either direction.
func UpdateOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if req.Status != "" {
		if !models.OrderStatus(req.Status).Valid() {
			respondError(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
			return
		}
		order.Status = models.OrderStatus(req.Status)
	}

	if req.UserID != nil {
		var user models.User
		if err := db.First(&user, *req.UserID).Error; err != nil {
			respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		order.UserID = req.UserID
	}

	if req.ReturnDeadline != nil {
		order.ReturnDeadline = req.ReturnDeadline
	}

	if err := db.Save(&order).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order")
		return
	}

	db.Preload("Vehicle.CarModel.Manufacturer").Preload("Vehicle.Client").
		Preload("Lines.Service").First(&order, order.ID)
	order.Derive(time.Now())
	respondData(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/v1/orders/:id (staff only). Lines and
// reviews cascade with the order.
func DeleteOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	if err := db.Delete(&order).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete order")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Order deleted"})
}

// AddOrderLine handles POST /api/v1/orders/:id/lines (staff only).
// The line stores only service and quantity, so the order total always
// reflects the service's current price.
func AddOrderLine(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	var req OrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	var service models.Service
	if err := db.First(&service, req.ServiceID).Error; err != nil {
		respondError(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		return
	}

	line := models.OrderLine{
		OrderID:   order.ID,
		ServiceID: req.ServiceID,
		Quantity:  req.Quantity,
	}

	if err := db.Create(&line).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to add order line")
		return
	}

	db.Preload("Service").First(&line, line.ID)
	respondData(c, http.StatusCreated, line)
}

// RemoveOrderLine handles DELETE /api/v1/orders/:id/lines/:lineID (staff only)
func RemoveOrderLine(c *gin.Context) {
	db := config.GetDB()

	var line models.OrderLine
	err := db.First(&line, "id = ? AND order_id = ?", c.Param("lineID"), c.Param("id")).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "ORDER_LINE_NOT_FOUND", "Order line not found")
		return
	}

	if err := db.Delete(&line).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to remove order line")
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Order line removed"})
}
