// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
)

// MaxImageBytes is the largest accepted image. A file of exactly this size is accepted.
const MaxImageBytes int64 = 5 << 20

// AllowedExtensions lists the accepted image types, lower-case.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Stored describes an accepted upload.
type Stored struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// Service validates and stores images.
type Service struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(backend Backend, logger *slog.Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

/*
StoreImage validates and persists one image.

Parameters:
  - original: The client-side file name; only its extension is used
  - body: The file content, read at most one byte past the ceiling

Returns:
  - *Stored: URL, generated file name and size
  - error: UNSUPPORTED_FILE_TYPE, FILE_TOO_LARGE or STORAGE_FAILURE
*/
func (service *Service) StoreImage(context context.Context, original string, body io.Reader) (*Stored, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !slices.Contains(AllowedExtensions, ext) {
		return nil, apperr.UnsupportedFileType(ext, AllowedExtensions)
	}

	content, err := io.ReadAll(io.LimitReader(body, MaxImageBytes+1))
	if err != nil {
		return nil, apperr.ValidationError("Could not read the uploaded file").WithCause(err)
	}
	size := int64(len(content))
	if size > MaxImageBytes {
		return nil, apperr.FileTooLarge(MaxImageBytes)
	}

	filename := service.filename(ext)
	url, err := service.backend.Put(context, filename, bytes.NewReader(content), size, mime.TypeByExtension(ext))
	if err != nil {
		return nil, apperr.StorageFailure(fmt.Errorf("upload_service_store_failed: %w", err))
	}

	service.logger.InfoContext(context, "upload_stored",
		slog.String("filename", filename),
		slog.Int64("size", size),
	)

	return &Stored{URL: url, Filename: filename, Size: size}, nil
}

// filename returns {unix seconds}_{8 hex chars}{ext}.
func (service *Service) filename(ext string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d_%s%s", service.now().Unix(), id[:8], ext)
}
