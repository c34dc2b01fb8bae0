package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxFileSize caps picture uploads at 10MB.
const MaxFileSize = 10 * 1024 * 1024

// AllowedImageFormats are the accepted picture file extensions.
var AllowedImageFormats = []string{".png", ".jpg", ".jpeg"}

// UploadDir is where locally stored pictures live. Set from configuration
// at startup and overridden in tests.
var UploadDir = "./uploads"

// FileUploadError is a validation failure with an API error code attached,
// so handlers can forward it straight into the response envelope.
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string { return e.Message }

// ValidateImageFile checks an upload's size and extension before anything
// is written to storage.
func ValidateImageFile(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxFileSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range AllowedImageFormats {
		if ext == allowed {
			return nil
		}
	}
	return &FileUploadError{
		Code:    "INVALID_FILE_FORMAT",
		Message: fmt.Sprintf("Only %s files are allowed", strings.Join(AllowedImageFormats, ", ")),
	}
}

// SaveUploadedFile writes the upload into uploadDir under a unique name and
// returns that name. The original base name is kept for readability; any
// path components in the client-supplied name are discarded.
func SaveUploadedFile(fileHeader *multipart.FileHeader, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename))

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", filename, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", filename, err)
	}
	return filename, nil
}

// GetImageURL maps a stored filename to its serving path.
func GetImageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/api/v1/uploads/" + filename
}
