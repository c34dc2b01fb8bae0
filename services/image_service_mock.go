package services

import (
	"io"
	"mime/multipart"
	"sync"

	"github.com/aurelita66/autoshop-api/utils"
)

// MockImageService stands in for the real image pipeline in handler tests.
// It validates uploads like the real implementations but skips resizing
// and disk writes.
type MockImageService struct {
	mu       sync.RWMutex
	pictures map[string][]byte
}

func NewMockImageService() *MockImageService {
	return &MockImageService{pictures: make(map[string][]byte)}
}

// SetAsMockForTesting installs this mock as the process-wide image service.
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// SavePicture validates the upload and stores it under a deterministic name.
func (m *MockImageService) SavePicture(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	filename := "mock_" + fileHeader.Filename
	m.mu.Lock()
	m.pictures[filename] = content
	m.mu.Unlock()
	return filename, nil
}

func (m *MockImageService) GetImageURL(filename string) (string, error) {
	return utils.GetImageURL(filename), nil
}

func (m *MockImageService) DeleteImage(filename string) error {
	m.mu.Lock()
	delete(m.pictures, filename)
	m.mu.Unlock()
	return nil
}

// ImageExists reports whether a picture was saved and not yet deleted.
func (m *MockImageService) ImageExists(filename string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.pictures[filename]
	return ok
}
