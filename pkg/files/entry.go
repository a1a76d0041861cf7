package files

import (
	"path/filepath"
	"unicode/utf8"
)

// Kind tells a folder entry from a file entry.
type Kind int

const (
	File Kind = iota
	Folder
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	default:
		return "unknown"
	}
}

// Entry is one filesystem child known to the tree.
type Entry struct {
	Name string
	Path string
	Kind Kind
}

func (e Entry) IsDir() bool {
	return e.Kind == Folder
}

func (e Entry) HasPath() bool {
	return e.Path != ""
}

func (e Entry) String() string {
	return e.Path
}

// NewEntry builds an entry for the given path. The display name is the base name of the path.
func NewEntry(path string, kind Kind) Entry {
	return Entry{
		Name: Label(filepath.Base(path)),
		Path: path,
		Kind: kind,
	}
}

// Label converts a raw file name to a label. The bytes are kept as is, so
// ordering follows the name on disk. Names that are not valid UTF-8 degrade to an empty label.
func Label(name string) string {
	if !utf8.ValidString(name) {
		return ""
	}
	return name
}
