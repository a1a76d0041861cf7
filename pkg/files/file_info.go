package files

import (
	"os"
	"time"
)

type FileInfoOption func(*FileInfo)

var _ os.FileInfo = (*FileInfo)(nil)

type FileInfo struct {
	name    string
	mode    os.FileMode
	size    int64
	modTime time.Time
}

func NewFileInfo(dirEntry DirEntry, o ...FileInfoOption) (info *FileInfo) {
	info = &FileInfo{
		name: dirEntry.name,
		mode: dirEntry.mode,
	}
	for _, opt := range o {
		opt(info)
	}
	return
}

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) FileInfoOption {
	return func(info *FileInfo) {
		info.modTime = v
	}
}

// Mode overrides the mode taken from the dir entry, e.g. to describe a symlink target.
func Mode(v os.FileMode) FileInfoOption {
	return func(info *FileInfo) {
		info.mode = v
	}
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}
func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}
func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.mode
}
func (f *FileInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}
func (f *FileInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.mode.IsDir()
}
func (f *FileInfo) Sys() any {
	return nil
}
