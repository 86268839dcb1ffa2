// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

// Package media handles cover image uploads for blog posts.
//
// Uploads are validated locally (content type and size) before any storage
// call, decoded, downscaled when wider than the display width, re-encoded as
// JPEG and handed to the blob store under a per-post path.
package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	// Register the decoders for the formats browsers upload.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
	"github.com/ImranJeferly/teletebib/internal/platform/constants"
	"github.com/ImranJeferly/teletebib/pkg/slug"
)

const (
	// maxImageWidth is the widest a stored cover ever needs to be.
	maxImageWidth = 1200
	// jpegQuality balances fidelity against blog page weight.
	jpegQuality = 80
)

// BlobStore is the storage backend for processed images.
type BlobStore interface {
	Upload(context context.Context, objectPath string, data []byte) (string, error)
	Remove(context context.Context, url string) error
}

// UploadInput describes one incoming cover image.
type UploadInput struct {
	// PostID scopes the storage path; empty means the post does not exist
	// yet and the image lands under "temp".
	PostID      string
	Filename    string
	ContentType string
	Data        []byte
}

// Upload is the stored result handed back to the admin UI.
type Upload struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int    `json:"size"`
}

// Service validates, processes and stores cover images.
type Service struct {
	blobs  BlobStore
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(blobs BlobStore, logger *slog.Logger) *Service {
	return &Service{
		blobs:  blobs,
		logger: logger,
	}
}

/*
UploadImage validates and stores one cover image.

Description: The content type must be image/* and the payload at most 5 MiB;
both checks fail fast before any decode or storage work. Images wider than
the display width are downscaled with Catmull-Rom resampling, then
re-encoded as JPEG. The storage path is
blog-images/{postID|temp}/{unix-millis}-{filename}.jpg.

Parameters:
  - context: context.Context
  - input: UploadInput

Returns:
  - *Upload: The stored image's URL and dimensions
  - error: Validation errors for bad uploads, storage errors otherwise
*/
func (service *Service) UploadImage(context context.Context, input UploadInput) (*Upload, error) {

	// ── 1. Local Validation ──────────────────────────────────────────────
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, apperr.ValidationError("Only image files can be uploaded")
	}
	if len(input.Data) == 0 {
		return nil, apperr.ValidationError("Empty upload")
	}
	if len(input.Data) > constants.MaxImageUploadBytes {
		return nil, apperr.ValidationError("Image exceeds the 5 MiB size limit")
	}

	// ── 2. Decode & Downscale ────────────────────────────────────────────
	img, _, err := image.Decode(bytes.NewReader(input.Data))
	if err != nil {
		return nil, apperr.ValidationError("File is not a decodable image")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxImageWidth {
		scaledHeight := height * maxImageWidth / width
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, scaledHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		width = maxImageWidth
		height = scaledHeight
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, apperr.Internal(fmt.Errorf("media: encode jpeg: %w", err))
	}

	// ── 3. Store ─────────────────────────────────────────────────────────
	url, err := service.blobs.Upload(context, objectPath(input.PostID, input.Filename), buf.Bytes())
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("cover_image_stored",
		slog.String("url", url),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	return &Upload{
		URL:    url,
		Width:  width,
		Height: height,
		Size:   buf.Len(),
	}, nil
}

// objectPath builds the per-post storage path. Posts that do not exist yet
// park their covers under "temp".
func objectPath(postID, filename string) string {
	scope := postID
	if scope == "" {
		scope = "temp"
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base = slug.From(base); base == "" {
		base = "cover"
	}

	return fmt.Sprintf("blog-images/%s/%d-%s.jpg", scope, time.Now().UnixMilli(), base)
}
