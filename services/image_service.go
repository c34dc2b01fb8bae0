package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/aurelita66/autoshop-api/models"
	"github.com/aurelita66/autoshop-api/utils"
)

// ImageService handles profile and vehicle picture storage: validation,
// saving, resizing to the fixed thumbnail size, and deletion
type ImageService interface {
	// SavePicture validates, stores and resizes an image file, returning the storage key
	SavePicture(fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL generates a URL for accessing a stored image
	GetImageURL(imageKey string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(imageKey string) error
}

var imageServiceInstance ImageService

// InitLocalImageService initializes the image service with local-disk storage
func InitLocalImageService(uploadDir string) ImageService {
	imageServiceInstance = &LocalImageService{uploadDir: uploadDir}
	return imageServiceInstance
}

// InitS3ImageService initializes the image service with S3 storage
func InitS3ImageService(s3Service S3Interface) ImageService {
	imageServiceInstance = &S3ImageService{s3Service: s3Service}
	return imageServiceInstance
}

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

// LocalImageService stores images on the local filesystem
type LocalImageService struct {
	uploadDir string
}

// SavePicture saves the upload to disk, then resizes the stored file to
// 150x150 in place. The two steps are sequential, not atomic.
func (s *LocalImageService) SavePicture(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SaveUploadedFile(fileHeader, s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	if err := ResizeFileInPlace(filepath.Join(s.uploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to resize image: %w", err)
	}

	return filename, nil
}

// GetImageURL returns the serving path for a locally stored image
func (s *LocalImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return utils.GetImageURL(imageKey), nil
}

// DeleteImage removes a locally stored image. The shared placeholder is
// never deleted.
func (s *LocalImageService) DeleteImage(imageKey string) error {
	if imageKey == "" || imageKey == models.DefaultProfilePicture {
		return nil
	}
	if err := os.Remove(filepath.Join(s.uploadDir, imageKey)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// S3ImageService stores images in AWS S3
type S3ImageService struct {
	s3Service S3Interface
}

// SavePicture validates the upload, resizes it to 150x150 in memory and
// uploads the thumbnail to S3.
func (s *S3ImageService) SavePicture(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close file: %v", closeErr)
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	resized, err := ResizeBytes(content, filepath.Ext(fileHeader.Filename))
	if err != nil {
		return "", fmt.Errorf("failed to resize image: %w", err)
	}

	s3Key, err := s.s3Service.UploadBytes(fileHeader.Filename, resized)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s3Key, nil
}

// GetImageURL generates a presigned URL for accessing an image
func (s *S3ImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}

	return url, nil
}

// DeleteImage deletes an image from S3
func (s *S3ImageService) DeleteImage(imageKey string) error {
	if imageKey == "" || imageKey == models.DefaultProfilePicture {
		return nil
	}

	if err := s.s3Service.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
