package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestNewEntry(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		p := filepath.Join("some", "dir", "notes.txt")
		e := NewEntry(p, File)
		assert.Equal(t, "notes.txt", e.Name)
		assert.Equal(t, p, e.Path)
		assert.False(t, e.IsDir())
		assert.True(t, e.HasPath())
		assert.Equal(t, p, e.String())
	})

	t.Run("folder", func(t *testing.T) {
		e := NewEntry("/tmp/project", Folder)
		assert.Equal(t, "project", e.Name)
		assert.True(t, e.IsDir())
	})

	t.Run("root", func(t *testing.T) {
		e := NewEntry("/", Folder)
		assert.Equal(t, "/", e.Name)
	})

	t.Run("no_path", func(t *testing.T) {
		var e Entry
		assert.False(t, e.HasPath())
	})
}

func TestLabel(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		assert.Equal(t, "main.go", Label("main.go"))
	})
	t.Run("invalid_utf8", func(t *testing.T) {
		assert.Equal(t, "", Label("bad\xff\xfename"))
	})
	t.Run("nfd_kept_raw", func(t *testing.T) {
		decomposed := "e\u0301.txt"
		assert.Equal(t, decomposed, Label(decomposed))
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "folder", Folder.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestDirEntry(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		de := NewDirEntry("testfile", 0)
		assert.Equal(t, "testfile", de.Name())
		assert.False(t, de.IsDir())
		assert.Equal(t, os.FileMode(0), de.Type())
		info, err := de.Info()
		assert.NoError(t, err)
		assert.True(t, info.Mode().IsRegular())
	})

	t.Run("directory", func(t *testing.T) {
		de := NewDirEntry("testdir", os.ModeDir|0o755)
		assert.True(t, de.IsDir())
		assert.Equal(t, os.ModeDir, de.Type())
	})

	t.Run("symlink", func(t *testing.T) {
		de := NewDirEntry("link", os.ModeSymlink)
		assert.False(t, de.IsDir())
		assert.Equal(t, os.ModeSymlink, de.Type())
	})

	t.Run("with_info", func(t *testing.T) {
		modTime := time.Now()
		de := NewDirEntry("testfile", 0o644, Size(123), ModTime(modTime))
		info, err := de.Info()
		assert.NoError(t, err)
		assert.Equal(t, "testfile", info.Name())
		assert.Equal(t, int64(123), info.Size())
		assert.Equal(t, modTime, info.ModTime())
		assert.False(t, info.IsDir())
		assert.Equal(t, nil, info.Sys())
	})

	t.Run("mode_override", func(t *testing.T) {
		de := NewDirEntry("link", os.ModeSymlink, Mode(os.ModeDir))
		info, _ := de.Info()
		assert.True(t, info.IsDir())
	})

	t.Run("panics_on_path", func(t *testing.T) {
		defer func() {
			assert.NotEqual(t, nil, recover())
		}()
		_ = NewDirEntry(filepath.Join("a", "b"), 0)
	})
}

func TestFileInfo_Nil(t *testing.T) {
	var fi *FileInfo
	assert.Equal(t, "", fi.Name())
	assert.Equal(t, int64(0), fi.Size())
	assert.Equal(t, os.FileMode(0), fi.Mode())
	assert.True(t, fi.ModTime().IsZero())
	assert.False(t, fi.IsDir())
}
