package objectstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const metaSuffix = ".meta"

var (
	// ErrNotFound is returned by Open when no object is stored under a key.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for keys that are empty or escape the store root.
	ErrInvalidKey = errors.New("invalid object key")
)

// Store is a public-read blob store addressed by key.
type Store interface {
	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Reader opens stored objects for serving.
type Reader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type meta struct {
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// FSStore keeps objects as files on an afero filesystem, each with a JSON
// sidecar holding its content type.
type FSStore struct {
	fs      afero.Fs
	baseURL string
}

// Ensure FSStore implements Store and Reader
var (
	_ Store  = (*FSStore)(nil)
	_ Reader = (*FSStore)(nil)
)

// NewFSStore creates a store rooted at fs. Object URLs are baseURL + "/" + key.
func NewFSStore(fs afero.Fs, baseURL string) *FSStore {
	return &FSStore{fs: fs, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// NewDiskStore creates a store under dir on the local disk.
func NewDiskStore(dir, baseURL string) (*FSStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return NewFSStore(afero.NewBasePathFs(osFs, dir), baseURL), nil
}

// NewKey builds "{prefix}/{uuid}{ext}".
func NewKey(prefix, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return prefix + "/" + uuid.NewString() + strings.ToLower(ext)
}

func (s *FSStore) URL(key string) string {
	return s.baseURL + "/" + key
}

func (s *FSStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	name, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	f, err := s.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(name)
		return "", fmt.Errorf("write object: %w", err)
	}

	payload, err := json.Marshal(meta{ContentType: contentType, Size: n})
	if err != nil {
		return "", fmt.Errorf("marshal object meta: %w", err)
	}
	if err := afero.WriteFile(s.fs, name+metaSuffix, payload, 0o644); err != nil {
		_ = s.fs.Remove(name)
		return "", fmt.Errorf("write object meta: %w", err)
	}
	return s.URL(key), nil
}

func (s *FSStore) Delete(ctx context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range []string{name, name + metaSuffix} {
		if err := s.fs.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete object: %w", err)
		}
	}
	return nil
}

// Open returns the object body and its stored content type.
func (s *FSStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if strings.HasSuffix(name, metaSuffix) {
		return nil, "", ErrNotFound
	}

	var m meta
	raw, err := afero.ReadFile(s.fs, name+metaSuffix)
	if err == nil {
		_ = json.Unmarshal(raw, &m)
	}
	f, err := s.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("open object: %w", err)
	}
	if m.ContentType == "" {
		m.ContentType = "application/octet-stream"
	}
	return f, m.ContentType, nil
}

func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	name := path.Clean(key)
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return "", ErrInvalidKey
	}
	return name, nil
}
