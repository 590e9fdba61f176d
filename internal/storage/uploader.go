package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnsupportedImage = apperror.Validation("Image must be a JPEG, PNG, GIF or WebP file")

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

//go:generate mockgen -source=uploader.go -destination=mock/uploader_mock.go -package=mock
type Uploader interface {
	// Upload stores data and returns its public URL.
	Upload(ctx context.Context, folder string, data []byte) (string, error)
}

// LocalUploader writes files under Dir and serves them from BaseURL.
type LocalUploader struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

func NewLocalUploader(dir, baseURL string, logger ...*zap.Logger) *LocalUploader {
	l := zap.L().Named("storage.local")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.local")
	}
	return &LocalUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), logger: l}
}

func (u *LocalUploader) Upload(ctx context.Context, folder string, data []byte) (string, error) {
	ext, ok := imageExtensions[http.DetectContentType(data)]
	if !ok {
		return "", ErrUnsupportedImage
	}
	if err := ctx.Err(); err != nil {
		return "", apperror.IO("Image upload cancelled", err)
	}

	target := filepath.Join(u.dir, filepath.Clean("/"+folder))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", apperror.IO("Failed to store image", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(target, name), data, 0o644); err != nil {
		return "", apperror.IO("Failed to store image", err)
	}

	u.logger.Debug("image stored", zap.String("folder", folder), zap.String("name", name), zap.Int("bytes", len(data)))
	return fmt.Sprintf("%s/%s/%s", u.baseURL, strings.Trim(filepath.ToSlash(filepath.Clean("/"+folder)), "/"), name), nil
}
