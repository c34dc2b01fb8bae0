package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/services"
	"github.com/aurelita66/autoshop-api/utils"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/v1/auth/register - creates a new user account.
// Every rejection leaves no partial state behind: the user and their profile
// are inserted in one transaction or not at all.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !utils.ValidPasswordLength(req.Password) {
		respondError(c, http.StatusBadRequest, "PASSWORD_TOO_SHORT",
			fmt.Sprintf("Password must be at least %d characters long", utils.MinPasswordLength))
		return
	}

	if req.Password != req.Password2 {
		respondError(c, http.StatusBadRequest, "PASSWORD_MISMATCH", "Passwords do not match")
		return
	}

	db := config.GetDB()

	var count int64
	db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "USERNAME_EXISTS",
			fmt.Sprintf("Username %s already exists", req.Username))
		return
	}

	db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "EMAIL_EXISTS",
			fmt.Sprintf("Email %s already exists", req.Email))
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process password")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
	if err != nil {
		// A concurrent registration can still hit the unique index
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "USERNAME_EXISTS",
				"A user with this username or email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create user")
		return
	}

	respondData(c, http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login - verifies credentials and binds the
// user to the request's session
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
		return
	}

	sess, err := middleware.EnsureSession(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to create session")
		return
	}

	sess.UserID = user.ID
	services.GetSessionStore().Save(sess)

	respondData(c, http.StatusOK, user)
}

// Logout handles POST /api/v1/auth/logout - revokes the session
func Logout(c *gin.Context) {
	if sess, exists := middleware.CurrentSession(c); exists {
		services.GetSessionStore().Delete(sess.ID)
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	respondData(c, http.StatusOK, gin.H{"message": "Logged out"})
}
