package storage

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
)

const (
	GalleryPrefix = "gallery"
	MastersPrefix = "masters"

	maxBaseNameLen = 40
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// CheckImage requires both the extension and the declared MIME type to be
// on the image allow-list.
func CheckImage(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = ""
	}

	if !allowedExtensions[ext] || !allowedMIMETypes[strings.ToLower(mediaType)] {
		return httperr.ErrUnsupportedMedia("Only image files are allowed (jpeg, jpg, png, gif, webp)")
	}
	return nil
}

// ReadUpload reads the whole part, failing once it exceeds limit bytes.
func ReadUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	if fh.Size > limit {
		return nil, tooLarge(limit)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, httperr.ErrValidation("Could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, httperr.ErrValidation("Could not read uploaded file")
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(limit)
	}
	return data, nil
}

func tooLarge(limit int64) error {
	if limit < 1<<20 {
		return httperr.ErrPayloadTooLarge(fmt.Sprintf("File too large (max %d KB)", limit>>10))
	}
	return httperr.ErrPayloadTooLarge(fmt.Sprintf("File too large (max %d MB)", limit>>20))
}

// GalleryKey builds gallery/gallery-<unix ms>-<random><ext>, with ext taken
// from the detected format.
func GalleryKey(format string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s/gallery-%d-%s%s", GalleryPrefix, now.UnixMilli(), suffix, Extension(format))
}

// MasterPhotoKey builds masters/<unix ms>-<sanitized base><ext>, keeping the
// original name recognisable. ext follows the detected format, not the
// uploaded name.
func MasterPhotoKey(originalName, format string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = unsafeNameChars.ReplaceAllString(base, "_")
	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}
	if base == "" {
		base = "photo"
	}
	return fmt.Sprintf("%s/%d-%s%s", MastersPrefix, now.UnixMilli(), base, Extension(format))
}
