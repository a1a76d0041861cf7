package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry creates an in-memory os.DirEntry, e.g. for stores that do not list a real disk.
func NewDirEntry(name string, mode os.FileMode, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name: name,
		mode: mode,
	}
	dirEntry.info = NewFileInfo(dirEntry, o...)
	return dirEntry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name string
	mode os.FileMode
	info *FileInfo
}

func (d DirEntry) Name() string      { return d.name }
func (d DirEntry) IsDir() bool       { return d.mode.IsDir() }
func (d DirEntry) Type() os.FileMode { return d.mode.Type() }
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}
