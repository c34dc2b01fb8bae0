package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
)

// CreateReviewRequest represents the request body for posting a review
type CreateReviewRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// CreateReview handles POST /api/v1/orders/:id/reviews - attaches a review by
// the authenticated user to an order. Reviews outlive their author but not
// their order.
func CreateReview(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required. Please log in.")
		return
	}

	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	userID := user.ID
	review := models.Review{
		OrderID: order.ID,
		UserID:  &userID,
		Content: req.Content,
	}

	if err := db.Create(&review).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create review")
		return
	}

	respondData(c, http.StatusCreated, review)
}
