package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// ThumbnailSize is the fixed edge length pictures are resized to on save.
const ThumbnailSize = 150

func scaleToThumbnail(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, ThumbnailSize, ThumbnailSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func encodeByExt(w *bytes.Buffer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(w, img)
	}
}

// ResizeFileInPlace rewrites the image at path as a 150x150 thumbnail.
// This runs as a second step after the file is saved; a crash in between
// leaves a saved-but-unresized image, matching the save-then-resize contract.
func ResizeFileInPlace(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	img, _, err := image.Decode(f)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := encodeByExt(&buf, scaleToThumbnail(img), filepath.Ext(path)); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}
	return nil
}

// ResizeBytes returns data re-encoded as a 150x150 thumbnail, keeping the
// format implied by ext. Used by storage backends that upload instead of
// writing to the local filesystem.
func ResizeBytes(data []byte, ext string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := encodeByExt(&buf, scaleToThumbnail(img), ext); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
