package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"strings"

	"esuka/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrNotConfigured = errors.New("file storage is not configured")

// ObjectStore uploads attachments and returns the public URL recorded in
// file_url/avatar_url.
type ObjectStore interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	cfg      config.StorageConfig
}

func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	log.Println("Initializing AWS S3 Client...")

	// LoadDefaultConfig reads credentials from env locally or the IAM role in production.
	awsCfg, err := aws_config.LoadDefaultConfig(ctx, aws_config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Println("✅ AWS S3 Client initialized. Bucket:", cfg.Bucket)
	return &S3Store{client: client, uploader: manager.NewUploader(client), cfg: cfg}, nil
}

// Upload stores the file under key with a public-read ACL.
func (s *S3Store) Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return PublicURL(s.cfg, key), nil
}

// Delete removes the object behind fileURL. URLs that do not point into the
// bucket are ignored.
func (s *S3Store) Delete(ctx context.Context, fileURL string) error {
	key, ok := KeyFromURL(s.cfg, fileURL)
	if !ok {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete S3 object %s: %w", key, err)
	}
	return nil
}

// PublicURL joins the public base URL and the object key. Without a base URL
// the virtual-hosted S3 address is used.
func PublicURL(cfg config.StorageConfig, key string) string {
	base := cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return base + "/" + escapeKey(key)
}

func KeyFromURL(cfg config.StorageConfig, fileURL string) (string, bool) {
	prefix := PublicURL(cfg, "")
	if fileURL == "" || !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimPrefix(fileURL, prefix))
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Disabled is used when no bucket is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, *multipart.FileHeader, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) error { return nil }
