package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/storage"
)

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := storage.NewLocal(dir, "/uploads/")

	res, err := l.Put(context.Background(), strings.NewReader("fake-jpeg"), storage.PutInput{
		Filename:    "schuh.JPG",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".jpg"))
	assert.Equal(t, "/uploads/"+res.Key, res.URL)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg", string(data))

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalDropsUnknownExtension(t *testing.T) {
	l := storage.NewLocal(t.TempDir(), "/uploads")

	res, err := l.Put(context.Background(), strings.NewReader("x"), storage.PutInput{
		Filename: "evil.php",
	})
	require.NoError(t, err)
	assert.NotContains(t, res.Key, ".")
}

func TestAllowedImage(t *testing.T) {
	assert.True(t, storage.AllowedImage("image/png"))
	assert.True(t, storage.AllowedImage("image/webp"))
	assert.False(t, storage.AllowedImage("application/pdf"))
	assert.False(t, storage.AllowedImage(""))
}
