// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package upload_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/ctxutil"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/internal/upload"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type brokenBackend struct{}

func (brokenBackend) Put(context.Context, string, io.Reader, int64, string) (string, error) {
	return "", errors.New("disk full")
}

func (brokenBackend) Ping(context.Context) error { return errors.New("disk full") }

func newLocalService(t *testing.T) (*upload.Service, string) {
	t.Helper()

	dir := t.TempDir()
	backend, err := upload.NewLocalBackend(dir, "/static/uploads/")
	require.NoError(t, err)
	return upload.NewService(backend, discardLogger), dir
}

/*
TestService_StoreImage writes the file under a generated name.
*/
func TestService_StoreImage(t *testing.T) {
	service, dir := newLocalService(t)

	stored, err := service.StoreImage(context.Background(), "Team Photo.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Regexp(t, `^\d+_[0-9a-f]{8}\.png$`, stored.Filename)
	assert.Equal(t, "/static/uploads/"+stored.Filename, stored.URL)
	assert.Equal(t, int64(len("png-bytes")), stored.Size)

	content, err := os.ReadFile(filepath.Join(dir, stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	again, err := service.StoreImage(context.Background(), "Team Photo.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.NotEqual(t, stored.Filename, again.Filename)
}

/*
TestService_StoreImage_Extensions accepts the allow-list in any case.
*/
func TestService_StoreImage_Extensions(t *testing.T) {
	service, _ := newLocalService(t)

	tests := []struct {
		name     string
		accepted bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.gif", true},
		{"a.webp", true},
		{"a.svg", false},
		{"a.png.exe", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.StoreImage(context.Background(), tt.name, strings.NewReader("x"))
			if tt.accepted {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, "UNSUPPORTED_FILE_TYPE"))
			assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
		})
	}
}

/*
TestService_StoreImage_SizeCeiling accepts exactly 5 MiB and rejects one byte more.
*/
func TestService_StoreImage_SizeCeiling(t *testing.T) {
	service, _ := newLocalService(t)

	stored, err := service.StoreImage(context.Background(), "edge.png", bytes.NewReader(make([]byte, upload.MaxImageBytes)))
	require.NoError(t, err)
	assert.Equal(t, upload.MaxImageBytes, stored.Size)

	_, err = service.StoreImage(context.Background(), "over.png", bytes.NewReader(make([]byte, upload.MaxImageBytes+1)))
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "FILE_TOO_LARGE"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, apperr.As(err).HTTPStatus)
}

/*
TestService_StoreImage_BackendFailure surfaces STORAGE_FAILURE.
*/
func TestService_StoreImage_BackendFailure(t *testing.T) {
	service := upload.NewService(brokenBackend{}, discardLogger)

	_, err := service.StoreImage(context.Background(), "a.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "STORAGE_FAILURE"))
	assert.NotContains(t, err.Error(), "disk full")
}

func multipartRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile(upload.FormField, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, target, &body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	return request
}

func router(service *upload.Service, role sec.UserRole) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := &sec.Principal{ID: 1, Username: "editor", Role: role}
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithPrincipal(request.Context(), principal)))
		})
	})
	router.Route("/admin/upload", upload.NewHandler(service).AdminRoutes)
	return router
}

/*
TestHandler_UploadImage serves both the canonical route and its alias.
*/
func TestHandler_UploadImage(t *testing.T) {
	service, _ := newLocalService(t)
	handler := router(service, sec.RoleEditor)

	for _, target := range []string{"/admin/upload/image", "/admin/upload/blog-image"} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, multipartRequest(t, target, "cover.webp", []byte("webp")))

		assert.Equal(t, http.StatusOK, recorder.Code, target)
		assert.Contains(t, recorder.Body.String(), "Image uploaded successfully")
		assert.Contains(t, recorder.Body.String(), `"url":"/static/uploads/`)
	}
}

/*
TestHandler_UploadImage_Rejections covers roles, missing files and bad types.
*/
func TestHandler_UploadImage_Rejections(t *testing.T) {
	service, _ := newLocalService(t)

	recorder := httptest.NewRecorder()
	router(service, sec.RoleViewer).ServeHTTP(recorder, multipartRequest(t, "/admin/upload/image", "cover.png", []byte("png")))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = httptest.NewRecorder()
	router(service, sec.RoleAdmin).ServeHTTP(recorder, multipartRequest(t, "/admin/upload/image", "notes.txt", []byte("txt")))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "UNSUPPORTED_FILE_TYPE")

	recorder = httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/admin/upload/image", strings.NewReader("{}"))
	request.Header.Set("Content-Type", "application/json")
	router(service, sec.RoleAdmin).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
}

/*
TestLocalBackend_Ping fails once the directory is gone.
*/
func TestLocalBackend_Ping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	backend, err := upload.NewLocalBackend(dir, "/static/uploads")
	require.NoError(t, err)

	require.NoError(t, backend.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, backend.Ping(context.Background()))
}

/*
TestLocalBackend_FileServer serves stored files and hides directories.
*/
func TestLocalBackend_FileServer(t *testing.T) {
	dir := t.TempDir()
	backend, err := upload.NewLocalBackend(dir, "/static/uploads")
	require.NoError(t, err)

	_, err = backend.Put(context.Background(), "1700000000_abcdef12.webp", strings.NewReader("webp"), 4, "image/webp")
	require.NoError(t, err)

	tests := []struct {
		target string
		status int
	}{
		{"/1700000000_abcdef12.webp", http.StatusOK},
		{"/", http.StatusNotFound},
		{"/missing.png", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			backend.FileServer().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, recorder.Code)
			if tt.status != http.StatusOK {
				assert.NotContains(t, recorder.Body.String(), "abcdef12")
			}
		})
	}
}
