// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

// Package blob stores uploaded files on the local filesystem and hands out
// public retrieval URLs.
//
// # Architecture
//
// The store maps a relative object path (e.g. "blog-images/temp/1-cover.jpg")
// onto a file under its root directory and a URL under its public base. The
// API server mounts the root directory read-only at /uploads so the URLs it
// returns resolve without any extra handler logic.
package blob

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// URLPrefix is the route under which the server exposes stored blobs.
const URLPrefix = "/uploads/"

// Store is a local-disk blob store.
type Store struct {
	root    string
	baseURL string
	logger  *slog.Logger
}

// NewStore constructs a [Store] rooted at dir. Retrieval URLs are built as
// baseURL + [URLPrefix] + object path.
func NewStore(dir, baseURL string, logger *slog.Logger) *Store {
	return &Store{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Root returns the store's root directory, for mounting the file server.
func (store *Store) Root() string {
	return store.root
}

// Upload writes data under the given relative object path and returns the
// public URL. Parent directories are created as needed.
func (store *Store) Upload(context context.Context, objectPath string, data []byte) (string, error) {
	cleaned, err := store.cleanPath(objectPath)
	if err != nil {
		return "", err
	}

	target := filepath.Join(store.root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("blob: create directory: %w", err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("blob: write object: %w", err)
	}

	url := store.baseURL + URLPrefix + cleaned
	store.logger.Info("blob_stored",
		slog.String("path", cleaned),
		slog.Int("bytes", len(data)),
	)

	return url, nil
}

// Remove deletes the object behind a URL previously returned by [Store.Upload].
//
// Removal is idempotent: a missing file is not an error. URLs outside this
// store's base are rejected.
func (store *Store) Remove(context context.Context, url string) error {
	objectPath, ok := store.objectPath(url)
	if !ok {
		return fmt.Errorf("blob: url %q is not managed by this store", url)
	}

	cleaned, err := store.cleanPath(objectPath)
	if err != nil {
		return err
	}

	target := filepath.Join(store.root, filepath.FromSlash(cleaned))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blob: remove object: %w", err)
	}

	return nil
}

// objectPath strips the base URL and prefix, yielding the relative path.
func (store *Store) objectPath(url string) (string, bool) {
	full := store.baseURL + URLPrefix
	if strings.HasPrefix(url, full) {
		return strings.TrimPrefix(url, full), true
	}
	// Accept bare "/uploads/..." paths too.
	if strings.HasPrefix(url, URLPrefix) {
		return strings.TrimPrefix(url, URLPrefix), true
	}
	return "", false
}

// cleanPath normalizes an object path and rejects traversal outside the root.
func (store *Store) cleanPath(objectPath string) (string, error) {
	cleaned := path.Clean("/" + objectPath)
	if cleaned == "/" || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("blob: invalid object path %q", objectPath)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}
