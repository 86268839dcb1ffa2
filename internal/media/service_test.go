// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package media

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
)

// memoryBlobs is an in-memory BlobStore double.
type memoryBlobs struct {
	objects map[string][]byte
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{objects: map[string][]byte{}}
}

func (m *memoryBlobs) Upload(_ context.Context, objectPath string, data []byte) (string, error) {
	m.objects[objectPath] = data
	return "http://localhost:8080/uploads/" + objectPath, nil
}

func (m *memoryBlobs) Remove(_ context.Context, url string) error {
	return nil
}

// encodePNG renders a solid test image of the given dimensions.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestService(blobs BlobStore) *Service {
	return NewService(blobs, slog.Default())
}

/*
TestService_UploadImage covers validation, downscaling and path layout.
*/
func TestService_UploadImage(t *testing.T) {
	t.Run("small_image_kept", func(t *testing.T) {
		blobs := newMemoryBlobs()
		service := newTestService(blobs)

		upload, err := service.UploadImage(context.Background(), UploadInput{
			PostID:      "0192f7a0-0000-7000-8000-000000000000",
			Filename:    "Cover Photo.png",
			ContentType: "image/png",
			Data:        encodePNG(t, 640, 480),
		})
		require.NoError(t, err)

		assert.Equal(t, 640, upload.Width)
		assert.Equal(t, 480, upload.Height)
		assert.Regexp(t,
			`^http://localhost:8080/uploads/blog-images/0192f7a0-0000-7000-8000-000000000000/\d+-cover-photo\.jpg$`,
			upload.URL,
		)
	})

	t.Run("wide_image_downscaled", func(t *testing.T) {
		service := newTestService(newMemoryBlobs())

		upload, err := service.UploadImage(context.Background(), UploadInput{
			Filename:    "panorama.png",
			ContentType: "image/png",
			Data:        encodePNG(t, 2400, 600),
		})
		require.NoError(t, err)

		assert.Equal(t, 1200, upload.Width)
		assert.Equal(t, 300, upload.Height, "aspect ratio preserved")
		// Unscoped uploads land under the temp directory.
		assert.Contains(t, upload.URL, "/blog-images/temp/")
	})

	t.Run("non_image_content_type", func(t *testing.T) {
		service := newTestService(newMemoryBlobs())

		_, err := service.UploadImage(context.Background(), UploadInput{
			Filename:    "report.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	})

	t.Run("oversized_payload", func(t *testing.T) {
		service := newTestService(newMemoryBlobs())

		_, err := service.UploadImage(context.Background(), UploadInput{
			Filename:    "huge.png",
			ContentType: "image/png",
			Data:        make([]byte, 5<<20+1),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	})

	t.Run("corrupt_image", func(t *testing.T) {
		service := newTestService(newMemoryBlobs())

		_, err := service.UploadImage(context.Background(), UploadInput{
			Filename:    "broken.png",
			ContentType: "image/png",
			Data:        []byte("not really a png"),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	})
}
