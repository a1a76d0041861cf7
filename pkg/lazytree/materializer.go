package lazytree

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/filetug/filetree/pkg/files"
)

// HiddenPrefix marks hidden entries on every platform.
const HiddenPrefix = "."

// Result describes what a single materialization did.
type Result struct {
	Inserted []RowID
	// Skipped counts hidden entries and entries that are neither files nor folders.
	Skipped int
}

type MaterializerOption func(m *Materializer)

// ShowHidden disables filtering of entries whose name starts with HiddenPrefix.
func ShowHidden(show bool) MaterializerOption {
	return func(m *Materializer) {
		m.showHidden = show
	}
}

// Materializer reads a directory's immediate children and appends them as rows.
type Materializer struct {
	store      files.Store
	showHidden bool
}

func NewMaterializer(store files.Store, o ...MaterializerOption) *Materializer {
	m := &Materializer{store: store}
	for _, opt := range o {
		opt(m)
	}
	return m
}

func (m *Materializer) ShowsHidden() bool {
	return m.showHidden
}

// Collect lists the immediate children of dir, classified and ordered folders first.
func (m *Materializer) Collect(ctx context.Context, dir string) (entries []files.Entry, skipped int, err error) {
	children, err := m.store.ReadDir(ctx, dir)
	if err != nil {
		return nil, 0, &ListError{Dir: dir, Err: err}
	}
	entries = make([]files.Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if !m.showHidden && strings.HasPrefix(name, HiddenPrefix) {
			skipped++
			continue
		}
		childPath := filepath.Join(dir, name)
		kind, ok := m.classify(ctx, childPath, child)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, files.NewEntry(childPath, kind))
	}
	SortEntries(entries)
	return entries, skipped, nil
}

func (m *Materializer) classify(ctx context.Context, p string, child os.DirEntry) (files.Kind, bool) {
	mode := child.Type()
	if mode&os.ModeSymlink != 0 {
		info, err := m.store.Stat(ctx, p)
		if err != nil {
			return files.File, false
		}
		mode = info.Mode()
	}
	switch {
	case mode.IsDir():
		return files.Folder, true
	case mode.IsRegular():
		return files.File, true
	default:
		return files.File, false
	}
}

// Materialize appends the children of dir under parent. On a listing failure nothing is inserted.
func (m *Materializer) Materialize(ctx context.Context, tree Tree, parent RowID, dir string) (result Result, err error) {
	if _, ok := tree.Entry(parent); !ok {
		return result, ErrUnknownRow
	}
	var entries []files.Entry
	if entries, result.Skipped, err = m.Collect(ctx, dir); err != nil {
		return result, err
	}
	result.Inserted = make([]RowID, 0, len(entries))
	for _, entry := range entries {
		var row RowID
		if entry.IsDir() {
			row = tree.InsertContainer(entry, parent)
		} else {
			row = tree.InsertLeaf(entry, parent)
		}
		result.Inserted = append(result.Inserted, row)
	}
	return result, nil
}

// SortEntries orders folders before files, then by name byte-wise.
// Equal names fall back to the path so the order is total.
func SortEntries(entries []files.Entry) {
	slices.SortStableFunc(entries, compareEntries)
}

func compareEntries(a, b files.Entry) int {
	if a.IsDir() != b.IsDir() {
		if a.IsDir() {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Path, b.Path)
}
