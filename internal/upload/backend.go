// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package upload stores images submitted from the admin editor.

# Architecture

  - Service: Extension allow-list, size ceiling and collision-free naming.
  - Backend: Where the bytes go. The local filesystem (served under
    /static/uploads) or an S3-compatible bucket.

Files are never overwritten; every accepted upload gets a fresh name.
*/
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// # Storage Contract

// Backend persists an object and reports the public URL it is served from.
type Backend interface {
	Put(context context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	// Ping reports whether the backend can currently accept writes.
	Ping(context context.Context) error
}

// # Local Filesystem

// LocalBackend writes objects below a directory served as static files.
type LocalBackend struct {
	dir          string
	publicPrefix string
}

// NewLocalBackend creates dir if needed.
func NewLocalBackend(dir, publicPrefix string) (*LocalBackend, error) {
	if dir == "" {
		return nil, errors.New("upload: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: failed to create %s: %w", dir, err)
	}

	return &LocalBackend{
		dir:          dir,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}, nil
}

// Dir is the directory objects are written to.
func (backend *LocalBackend) Dir() string { return backend.dir }

// Ping fails when the upload directory has disappeared or is not a directory.
func (backend *LocalBackend) Ping(context.Context) error {
	info, err := os.Stat(backend.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("upload: %s is not a directory", backend.dir)
	}
	return nil
}

// Put writes body to dir/key. An existing file with the same key is an error.
func (backend *LocalBackend) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	path := filepath.Join(backend.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return backend.publicPrefix + "/" + key, nil
}

// FileServer serves stored objects by key. Directories, including the root,
// answer 404 so the upload listing is never exposed.
func (backend *LocalBackend) FileServer() http.Handler {
	return http.FileServer(filesOnly{http.Dir(backend.dir)})
}

type filesOnly struct {
	http.FileSystem
}

func (fs filesOnly) Open(name string) (http.File, error) {
	file, err := fs.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

func joinURL(base, key string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return parsed.JoinPath(key).String(), nil
}
