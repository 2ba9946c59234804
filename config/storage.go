package config

import (
	"os"
	"strings"
)

type StorageConfig struct {
	Region   string
	Bucket   string
	Endpoint string
	// PublicBaseURL prefixes object keys to form the stored file_url.
	PublicBaseURL string
}

func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Region:        os.Getenv("AWS_REGION"),
		Bucket:        os.Getenv("AWS_S3_BUCKET"),
		Endpoint:      os.Getenv("S3_ENDPOINT_URL"),
		PublicBaseURL: strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
	}
}

type NotificationConfig struct {
	FCMProjectID string
}

func LoadNotificationConfig() NotificationConfig {
	return NotificationConfig{FCMProjectID: os.Getenv("FCM_PROJECT_ID")}
}
