package lazytree

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/filetug/filetree/pkg/files"
	"github.com/filetug/filetree/pkg/fsutils"
)

//go:generate mockgen -destination=mock_content_pane.go -package=lazytree . ContentPane

// ContentPane displays the text of the active document.
type ContentPane interface {
	SetText(text string)
	SetTitle(label string, emphasized bool)
}

type BridgeOption func(b *Bridge)

// MaxFileSize limits the size of files that are loaded. Zero means no limit.
func MaxFileSize(size int64) BridgeOption {
	return func(b *Bridge) {
		b.maxSize = size
	}
}

// OnLoaded is called after a file has been pushed to the content pane.
func OnLoaded(f func(entry files.Entry, size int)) BridgeOption {
	return func(b *Bridge) {
		b.onLoaded = f
	}
}

// Bridge loads an activated file row into the content pane.
type Bridge struct {
	tree     Tree
	store    files.Store
	pane     ContentPane
	maxSize  int64
	onLoaded func(entry files.Entry, size int)

	active    files.Entry
	hasActive bool
}

func NewBridge(tree Tree, store files.Store, pane ContentPane, o ...BridgeOption) *Bridge {
	b := &Bridge{
		tree:  tree,
		store: store,
		pane:  pane,
	}
	for _, opt := range o {
		opt(b)
	}
	return b
}

// Active returns the entry currently shown in the content pane.
func (b *Bridge) Active() (files.Entry, bool) {
	return b.active, b.hasActive
}

// OnActivate reads the file behind row in full and replaces the pane content.
// Folder rows are ignored. On failure the pane is left untouched and a *ReadError is returned.
func (b *Bridge) OnActivate(ctx context.Context, row RowID) error {
	entry, ok := b.tree.Entry(row)
	if !ok {
		return ErrUnknownRow
	}
	if entry.IsDir() {
		return nil
	}
	if !entry.HasPath() {
		return &ReadError{Path: entry.Name, Err: ErrNoPath}
	}
	text, err := b.load(ctx, entry.Path)
	if err != nil {
		return &ReadError{Path: entry.Path, Err: err}
	}
	b.pane.SetText(text)
	b.pane.SetTitle(entry.Name, true)
	b.active, b.hasActive = entry, true
	if b.onLoaded != nil {
		b.onLoaded(entry, len(text))
	}
	return nil
}

func (b *Bridge) load(ctx context.Context, name string) (string, error) {
	if b.maxSize > 0 {
		info, err := b.store.Stat(ctx, name)
		if err != nil {
			return "", err
		}
		if info.Size() > b.maxSize {
			return "", fmt.Errorf("%w: %s exceeds %s", ErrTooLarge,
				fsutils.ShortSize(info.Size()), fsutils.ShortSize(b.maxSize))
		}
	}
	data, err := b.store.ReadFile(ctx, name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}
