package storage

import (
	"context"
	"path"
	"strings"
	"time"
)

// ObjectInfo represents metadata for a remote file/object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStorage captures the S3-compatible operations report publishing needs.
type ObjectStorage interface {
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	DownloadObject(ctx context.Context, key string, destPath string) error
	UploadObject(ctx context.Context, key string, data []byte, contentType string) error
}

// ObjectKey joins a configured prefix and a file name into an object key without a leading slash.
func ObjectKey(prefix, name string) string {
	return strings.TrimPrefix(path.Join(strings.Trim(prefix, "/"), name), "/")
}
