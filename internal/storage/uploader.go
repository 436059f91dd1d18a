package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/legalease/legalease-backend/pkg/logger"
)

// ObjectStore is the subset of MinIOStorage the uploader depends on.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	ObjectURL(key string) string
}

// Uploader stores original files best-effort: any failure is logged and an
// empty URL is returned, never an error. Document ingestion must succeed even
// when object storage is unavailable or unconfigured.
type Uploader struct {
	store ObjectStore
}

func NewUploader(store ObjectStore) *Uploader {
	return &Uploader{store: store}
}

// Upload writes the file under a collision-resistant key and returns its
// public URL, or "" when storage is missing or the upload failed.
func (u *Uploader) Upload(ctx context.Context, data []byte, fileName string) string {
	if u == nil || u.store == nil {
		return ""
	}
	key := ObjectKey(fileName)
	if err := u.store.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), "application/pdf"); err != nil {
		logger.Warnf("storage upload failed for %q: %v", fileName, err)
		return ""
	}
	return u.store.ObjectURL(key)
}

// ObjectKey derives a per-upload object key from the file name plus a UUID so
// repeated uploads of same-named files never overwrite each other.
func ObjectKey(fileName string) string {
	base := strings.TrimSuffix(path.Base(fileName), ".pdf")
	if base == "" || base == "." || base == "/" {
		base = "document"
	}
	return fmt.Sprintf("legalease/%s_%s.pdf", base, uuid.NewString())
}
