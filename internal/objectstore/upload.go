package objectstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const sniffLen = 512

var (
	// ErrTooLarge is returned when an upload exceeds the size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrNotImage is returned when an upload is not one of the accepted image types.
	ErrNotImage = errors.New("file is not a supported image")
	// ErrEmpty is returned for zero-byte uploads.
	ErrEmpty = errors.New("file is empty")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Upload is a validated image held in memory.
type Upload struct {
	Data        []byte
	ContentType string
	Ext         string
}

// Reader returns a fresh reader over the upload body.
func (u *Upload) Reader() io.Reader { return bytes.NewReader(u.Data) }

// DetectContentType sniffs head with the stdlib first and falls back to
// mimetype when the stdlib can only say octet-stream.
func DetectContentType(head []byte) string {
	if len(head) == 0 {
		return "application/octet-stream"
	}
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	mt := http.DetectContentType(head)
	if mt != "application/octet-stream" {
		return mt
	}
	return mimetype.Detect(head).String()
}

// ReadImage reads at most maxBytes from r and accepts it only if the sniffed
// content type is an allowed image. The extension comes from the content type,
// not from filename, so a mislabelled file still gets a correct key.
func ReadImage(r io.Reader, filename string, maxBytes int64) (*Upload, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", filename, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	ct := DetectContentType(data)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	ext, ok := imageExtensions[ct]
	if !ok {
		return nil, ErrNotImage
	}
	if named := strings.ToLower(filepath.Ext(filename)); named == ".jpeg" && ext == ".jpg" {
		ext = named
	}
	return &Upload{Data: data, ContentType: ct, Ext: ext}, nil
}
