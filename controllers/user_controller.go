package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/services"
	"github.com/aurelita66/autoshop-api/utils"
)

// UpdateProfileRequest represents the request body for profile updates
type UpdateProfileRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetMyProfile handles GET /api/v1/users/me - the authenticated user with
// their profile and a resolvable picture URL
func GetMyProfile(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required. Please log in.")
		return
	}

	pictureURL := ""
	if user.Profile != nil {
		if url, err := services.GetImageService().GetImageURL(user.Profile.Picture); err == nil {
			pictureURL = url
		}
	}

	respondData(c, http.StatusOK, gin.H{
		"user":        user,
		"picture_url": pictureURL,
	})
}

// UpdateMyProfile handles PUT /api/v1/users/me - currently only the email
// address can change
func UpdateMyProfile(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required. Please log in.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()

	var count int64
	db.Model(&models.User{}).Where("email = ? AND id <> ?", req.Email, user.ID).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "EMAIL_EXISTS", "Email already in use")
		return
	}

	user.Email = req.Email
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("email", req.Email).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "EMAIL_EXISTS", "Email already in use")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update profile")
		return
	}

	respondData(c, http.StatusOK, user)
}

// UpdateMyPicture handles PUT /api/v1/users/me/picture - multipart upload of
// a new profile picture. The image is scaled to a square thumbnail before it
// is stored; the previous picture is removed unless it is the placeholder.
func UpdateMyPicture(c *gin.Context) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required. Please log in.")
		return
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "No picture file provided")
		return
	}

	imageService := services.GetImageService()
	filename, err := imageService.SavePicture(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store picture")
		return
	}

	db := config.GetDB()

	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		profile = models.Profile{UserID: user.ID}
	}

	oldPicture := profile.Picture
	profile.Picture = filename
	if err := db.Save(&profile).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update profile")
		return
	}

	if oldPicture != "" && oldPicture != filename {
		// Best effort, the new picture is already in place
		_ = imageService.DeleteImage(oldPicture)
	}

	pictureURL, _ := imageService.GetImageURL(profile.Picture)
	respondData(c, http.StatusOK, gin.H{
		"profile":     profile,
		"picture_url": pictureURL,
	})
}
