package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aurelita66/autoshop-api/config"
)

// presignTTL bounds how long a picture URL handed out to a client stays valid.
const presignTTL = time.Hour

// S3Interface is the subset of bucket operations the image pipeline needs.
type S3Interface interface {
	UploadBytes(filename string, data []byte) (string, error)
	GetPresignedURL(s3Key string) (string, error)
	DeleteFile(s3Key string) error
}

// S3Service stores profile pictures in a private S3 bucket.
type S3Service struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// InitS3Service builds an S3 client from the application configuration.
func InitS3Service() (S3Interface, error) {
	cfg := config.GetConfig()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Service{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.AWSS3Bucket,
	}, nil
}

// UploadBytes writes already-resized picture bytes under uploads/ and
// returns the object key.
func (s *S3Service) UploadBytes(filename string, data []byte) (string, error) {
	key := fmt.Sprintf("uploads/%d_%s", time.Now().UnixNano(), filepath.Base(filename))

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(pictureContentType(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}

// GetPresignedURL returns a time-limited URL for a stored picture. The
// bucket stays private; clients only ever see presigned links.
func (s *S3Service) GetPresignedURL(s3Key string) (string, error) {
	if s3Key == "" {
		return "", nil
	}

	req, err := s.presign.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3Key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignTTL
	})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", s3Key, err)
	}
	return req.URL, nil
}

// DeleteFile removes a stored picture from the bucket.
func (s *S3Service) DeleteFile(s3Key string) error {
	if s3Key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s3Key, err)
	}
	return nil
}

func pictureContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}
