package objectstore

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestFSStore_PutOpenDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFSStore(fs, "http://localhost:8080/media/")
	ctx := context.Background()

	url, err := store.Put(ctx, "posts/abc.png", "image/png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/posts/abc.png", url)

	exists, err := afero.Exists(fs, "posts/abc.png.meta")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, ct, err := store.Open(ctx, "posts/abc.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, pngHeader, body)

	require.NoError(t, store.Delete(ctx, "posts/abc.png"))
	require.NoError(t, store.Delete(ctx, "posts/abc.png"))

	_, _, err = store.Open(ctx, "posts/abc.png")
	assert.ErrorIs(t, err, ErrNotFound)
	exists, err = afero.Exists(fs, "posts/abc.png.meta")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFSStore_RejectsEscapingKeys(t *testing.T) {
	store := NewFSStore(afero.NewMemMapFs(), "http://x")
	ctx := context.Background()

	for _, key := range []string{"", "/etc/passwd", "../secret", "avatars/../../x", ".."} {
		_, err := store.Put(ctx, key, "text/plain", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}

	_, _, err := store.Open(ctx, "posts/abc.png.meta")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewKey(t *testing.T) {
	key := NewKey("avatars", ".PNG")
	assert.True(t, strings.HasPrefix(key, "avatars/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Len(t, key, len("avatars/")+36+len(".png"))

	assert.True(t, strings.HasSuffix(NewKey("posts", "jpg"), ".jpg"))
	assert.NotEqual(t, NewKey("posts", ".jpg"), NewKey("posts", ".jpg"))
}

func TestReadImage(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
		max      int64
		wantErr  error
		wantCT   string
		wantExt  string
	}{
		{name: "png", data: pngHeader, filename: "me.png", max: 1024, wantCT: "image/png", wantExt: ".png"},
		{name: "mislabelled png", data: pngHeader, filename: "me.jpg", max: 1024, wantCT: "image/png", wantExt: ".png"},
		{name: "jpeg keeps jpeg ext", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), filename: "a.JPEG", max: 1024, wantCT: "image/jpeg", wantExt: ".jpeg"},
		{name: "text", data: []byte("hello world"), filename: "a.png", max: 1024, wantErr: ErrNotImage},
		{name: "too large", data: pngHeader, filename: "a.png", max: 8, wantErr: ErrTooLarge},
		{name: "empty", data: nil, filename: "a.png", max: 8, wantErr: ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, err := ReadImage(bytes.NewReader(tt.data), tt.filename, tt.max)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCT, up.ContentType)
			assert.Equal(t, tt.wantExt, up.Ext)
			assert.Equal(t, tt.data, up.Data)
		})
	}
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "application/octet-stream", DetectContentType(nil))
	assert.Equal(t, "image/png", DetectContentType(pngHeader))
	assert.Equal(t, "application/pdf", DetectContentType([]byte("%PDF-1.7\n")))
}
