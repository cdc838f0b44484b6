// Package photos stores meal photos in S3 so meal records can keep an opaque
// reference instead of the bytes. With no bucket configured uploads are
// skipped and records carry no photo key.
package photos

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// New initializes the S3 client. An empty bucket name yields a disabled
// store whose Upload is a no-op.
func New(ctx context.Context, region, bucket string) (*Store, error) {
	if bucket == "" {
		return &Store{}, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// Upload stores the photo and returns its object key, or "" when disabled.
func (s *Store) Upload(ctx context.Context, userID int64, data []byte) (string, error) {
	if !s.Enabled() {
		return "", nil
	}
	key := fmt.Sprintf("meals/%d/%s.jpg", userID, uuid.NewString())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return key, nil
}

// PresignedURL generates a one-hour download URL for a stored photo.
func (s *Store) PresignedURL(ctx context.Context, key string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("photo store disabled")
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}
	return req.URL, nil
}
