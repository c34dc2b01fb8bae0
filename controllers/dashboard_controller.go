package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/services"
)

// Dashboard handles GET /api/v1/dashboard - entity counts plus the visit
// counter for the caller's session. The counter is session-scoped, not
// process-wide, and works for anonymous visitors too.
func Dashboard(c *gin.Context) {
	db := config.GetDB()

	var serviceCount, orderCount, doneOrderCount, vehicleCount int64
	db.Model(&models.Service{}).Count(&serviceCount)
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.Order{}).Where("status = ?", models.StatusDone).Count(&doneOrderCount)
	db.Model(&models.Vehicle{}).Count(&vehicleCount)

	visits := 0
	if sess, err := middleware.EnsureSession(c); err == nil {
		sess.Visits++
		services.GetSessionStore().Save(sess)
		visits = sess.Visits
	}

	respondData(c, http.StatusOK, gin.H{
		"services":    serviceCount,
		"orders":      orderCount,
		"orders_done": doneOrderCount,
		"vehicles":    vehicleCount,
		"visits":      visits,
	})
}
