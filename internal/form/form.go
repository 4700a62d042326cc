// Package form reads image uploads from multipart requests.
package form

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxImageBytes caps a single uploaded image.
const MaxImageBytes = 5 << 20

// sniffLen is how much of an upload http.DetectContentType looks at.
const sniffLen = 512

// imageExtensions maps every accepted content type to the extension its
// object is stored under.
var imageExtensions = map[string]string{
	"image/gif":     ".gif",
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported image type")
	ErrNoImageUploaded     = errors.New("no image uploaded")
	ErrImageTooLarge       = errors.New("image too large")
)

// Image is a fully buffered upload whose type was sniffed from its content.
type Image struct {
	ContentType string
	Ext         string
	Data        []byte
}

// Size is the image length in bytes.
func (i *Image) Size() int64 { return int64(len(i.Data)) }

// DecodeImage buffers at most maxBytes of rc, closes it and checks the
// content is one of the accepted image types. The declared content type of
// the part is ignored.
func DecodeImage(rc io.ReadCloser, maxBytes int64) (*Image, error) {
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, maxBytes+1))
	switch {
	case err != nil:
		return nil, fmt.Errorf("buffering upload: %w", err)
	case len(data) == 0:
		return nil, ErrNoImageUploaded
	case int64(len(data)) > maxBytes:
		return nil, fmt.Errorf("limit is %d bytes: %w", maxBytes, ErrImageTooLarge)
	}

	sniffed := http.DetectContentType(data[:min(len(data), sniffLen)])
	ext, ok := imageExtensions[sniffed]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sniffed, ErrUnsupportedMimeType)
	}
	return &Image{ContentType: sniffed, Ext: ext, Data: data}, nil
}

// ReadImage decodes the multipart part named field of r.
func ReadImage(r *http.Request, field string) (*Image, error) {
	if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
		return nil, fmt.Errorf("parsing multipart form: %w", err)
	}
	part, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, ErrNoImageUploaded
	}
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", field, err)
	}
	return DecodeImage(part, MaxImageBytes)
}
