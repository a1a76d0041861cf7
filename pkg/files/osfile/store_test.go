package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_ReadDir(t *testing.T) {
	origReadDir := osReadDir
	defer func() { osReadDir = origReadDir }()

	s := NewStore()

	t.Run("success", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return []os.DirEntry{}, nil
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.NoError(t, err)
		assert.NotNil(t, entries)
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		entries, err := s.ReadDir(ctx, "/tmp")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Nil(t, entries)
	})

	t.Run("read_error", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return nil, errors.New("read error")
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestStore_Stat(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	assert.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	s := NewStore()

	t.Run("follows_symlink", func(t *testing.T) {
		info, err := s.Stat(context.Background(), link)
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("broken_symlink", func(t *testing.T) {
		broken := filepath.Join(dir, "broken")
		assert.NoError(t, os.Symlink(filepath.Join(dir, "missing"), broken))
		_, err := s.Stat(context.Background(), broken)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.Stat(ctx, target)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStore_ReadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	name := filepath.Join(dir, "a.txt")
	assert.NoError(t, os.WriteFile(name, []byte("hello"), 0o644))

	s := NewStore()

	data, err := s.ReadFile(context.Background(), name)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = s.ReadFile(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.True(t, os.IsNotExist(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.ReadFile(ctx, name)
	assert.ErrorIs(t, err, context.Canceled)
}
