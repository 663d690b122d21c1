package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"url"`
	ETag     string `json:"etag,omitempty"`
}

// FileUploader stores objects and reports where they can be fetched.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	GetPublicURL(key string) string
}
