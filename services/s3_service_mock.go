package services

import (
	"fmt"
	"path/filepath"
	"sync"
)

// MockS3Service keeps uploaded objects in memory so the S3 image flow can
// run in tests without a bucket.
type MockS3Service struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMockS3Service() *MockS3Service {
	return &MockS3Service{objects: make(map[string][]byte)}
}

// UploadBytes stores the bytes under a deterministic key so tests can
// assert on it.
func (m *MockS3Service) UploadBytes(filename string, data []byte) (string, error) {
	key := "uploads/mock_" + filepath.Base(filename)

	m.mu.Lock()
	m.objects[key] = data
	m.mu.Unlock()
	return key, nil
}

func (m *MockS3Service) GetPresignedURL(s3Key string) (string, error) {
	if s3Key == "" {
		return "", nil
	}
	if !m.FileExists(s3Key) {
		return "", fmt.Errorf("no such object: %s", s3Key)
	}
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", s3Key), nil
}

func (m *MockS3Service) DeleteFile(s3Key string) error {
	m.mu.Lock()
	delete(m.objects, s3Key)
	m.mu.Unlock()
	return nil
}

// FileExists reports whether a key was uploaded and not yet deleted.
func (m *MockS3Service) FileExists(s3Key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[s3Key]
	return ok
}
