package localstorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfharvest/internal/core/domain"
)

func TestLocalStorage_Save(t *testing.T) {
	t.Run("writes file and returns path", func(t *testing.T) {
		dir := t.TempDir()
		s := NewLocalStorage(dir)

		path, err := s.Save(context.Background(), "test.pdf", []byte("content"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "test.pdf"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		dir := t.TempDir()
		s := NewLocalStorage(dir)

		_, err := s.Save(context.Background(), "test.pdf", []byte("first version"))
		require.NoError(t, err)
		path, err := s.Save(context.Background(), "test.pdf", []byte("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("missing directory is not created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		s := NewLocalStorage(dir)

		_, err := s.Save(context.Background(), "test.pdf", []byte("content"))
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.NoDirExists(t, dir)
	})

	t.Run("path components are stripped", func(t *testing.T) {
		dir := t.TempDir()
		s := NewLocalStorage(dir)

		path, err := s.Save(context.Background(), "../../escape.pdf", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "escape.pdf"), path)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		s := NewLocalStorage(t.TempDir())
		_, err := s.Save(context.Background(), "", []byte("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidFilename)
	})
}
