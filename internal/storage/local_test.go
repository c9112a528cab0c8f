package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckImage(t *testing.T) {
	assert.NoError(t, CheckImage(PutInput{Filename: "photo.JPG", Size: 1024}))
	assert.ErrorIs(t, CheckImage(PutInput{Filename: "photo.jpg", Size: MaxImageBytes + 1}), ErrImageTooLarge)
	assert.ErrorIs(t, CheckImage(PutInput{Filename: "script.exe", Size: 10}), ErrBadImageType)
	assert.ErrorIs(t, CheckImage(PutInput{Filename: "sans-extension", Size: 10}), ErrBadImageType)
}

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads/")

	res, err := l.Put(context.Background(), strings.NewReader("fake-png-bytes"), PutInput{
		Filename:    "produit.png",
		ContentType: "image/png",
		Size:        14,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(res.Key, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(res.Key)))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(res.Key)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalDeleteEscapeBlocked(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "..", "victime.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	l := NewLocal(filepath.Join(dir), "/uploads")
	_ = l.Delete(context.Background(), "../victime.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err, "delete must not escape the base directory")
}
