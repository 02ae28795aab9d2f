package imagestore

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

var (
	ErrTooLarge = errors.New("image exceeds the maximum allowed size")
	ErrNotImage = errors.New("only image files are allowed")
)

const (
	// MaxUploadBytes is the ceiling for a single uploaded image (5 MB).
	MaxUploadBytes = 5 * 1024 * 1024

	// Uploaded photos are fitted into this bounding box, preserving
	// aspect ratio and never upscaling.
	boundingBox = 800
)

// Store persists uploaded images under a static-served directory and
// hands back the public URL they are reachable at.
type Store struct {
	dir       string // filesystem directory, e.g. ./uploads/waste
	urlPrefix string // public prefix, e.g. /uploads/waste
}

func New(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// SaveResized validates, resizes and re-encodes an uploaded image, then
// writes it to disk. Returns the public URL of the stored file.
func (s *Store) SaveResized(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadBytes {
		return "", ErrTooLarge
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", ErrNotImage
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotImage
	}

	// Fit scales down to the bounding box and leaves smaller images untouched.
	resized := imaging.Fit(img, boundingBox, boundingBox, imaging.Lanczos)

	filename := fmt.Sprintf("waste-%d.jpg", time.Now().UnixNano())
	out, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if err := imaging.Encode(out, resized, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	return s.urlPrefix + "/" + filename, nil
}
