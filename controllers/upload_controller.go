package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aurelita66/autoshop-api/utils"
)

// GetUploadedImage handles GET /api/v1/uploads/:filename - serves locally
// stored images. Only bare filenames with a known image extension are
// accepted, so the handler cannot be walked out of the upload directory.
func GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")

	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		respondError(c, http.StatusBadRequest, "INVALID_FILENAME", "Invalid filename")
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range utils.AllowedImageFormats {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		respondError(c, http.StatusBadRequest, "INVALID_FILENAME", "Unsupported image type")
		return
	}

	path := filepath.Join(utils.UploadDir, filename)

	switch ext {
	case ".png":
		c.Header("Content-Type", "image/png")
	default:
		c.Header("Content-Type", "image/jpeg")
	}

	c.File(path)
}
