package lazytree

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/filetree/pkg/files"
	"github.com/filetug/filetree/pkg/files/osfile"
	"github.com/stretchr/testify/assert"
)

func TestDecideToggle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		state   RowState
		ev      ToggleEvent
		next    RowState
		trigger bool
	}{
		{"expand_empty", Unmaterialized, ToggleEvent{Expanded: true}, Materializing, true},
		{"collapse_empty", Unmaterialized, ToggleEvent{Expanded: false}, Unmaterialized, false},
		{"expand_populated", Unmaterialized, ToggleEvent{Expanded: true, ChildCount: 3}, Materialized, false},
		{"collapse_populated", Materialized, ToggleEvent{Expanded: false, ChildCount: 3}, Materialized, false},
		{"reentrant_expand", Materializing, ToggleEvent{Expanded: true}, Materializing, false},
		{"expand_materialized_but_empty", Materialized, ToggleEvent{Expanded: true}, Materializing, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, trigger := DecideToggle(tt.state, tt.ev)
			assert.Equal(t, tt.next, next)
			assert.Equal(t, tt.trigger, trigger)
		})
	}
}

func TestRowState_String(t *testing.T) {
	assert.Equal(t, "unmaterialized", Unmaterialized.String())
	assert.Equal(t, "materializing", Materializing.String())
	assert.Equal(t, "materialized", Materialized.String())
	assert.Equal(t, "unknown", RowState(9).String())
}

func newTestController(t *testing.T, o ...ControllerOption) (*Controller, *Arena) {
	t.Helper()
	a := NewArena()
	return NewController(a, NewMaterializer(osfile.NewStore()), o...), a
}

func TestController_Open(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "library")
	mkTree(t, dir, "books/", "books/go.txt", "index.md")

	c, a := newTestController(t)
	root, result, err := c.Open(context.Background(), dir)
	assert.NoError(t, err)
	assert.Equal(t, []RowID{root}, a.Roots())

	entry, _ := a.Entry(root)
	assert.Equal(t, "library", entry.Name)
	assert.Equal(t, dir, entry.Path)
	assert.True(t, entry.IsDir())

	onDisk, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, result.Inserted, len(onDisk))
	assert.Equal(t, []string{"books", "index.md"}, childNames(a, root))
	assert.Equal(t, Materialized, c.State(root))
}

func TestController_OpenDecomposedNames(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "cafe\u0301")
	mkTree(t, dir, "e\u0301.txt", "f.txt")

	c, a := newTestController(t)
	root, _, err := c.Open(context.Background(), dir)
	assert.NoError(t, err)

	entry, _ := a.Entry(root)
	assert.Equal(t, filepath.Base(dir), entry.Name)
	assert.Equal(t, []string{"e\u0301.txt", "f.txt"}, childNames(a, root))
}

func TestController_OnToggle(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	mkTree(t, dir, "docs/", "docs/a.txt", "docs/b.txt", "docs/sub/", "empty/", "readme.txt")

	c, a := newTestController(t)
	ctx := context.Background()
	root, _, err := c.Open(ctx, dir)
	assert.NoError(t, err)
	children := a.Children(root)
	docs, empty, readme := children[0], children[1], children[2]

	t.Run("collapse_does_not_materialize", func(t *testing.T) {
		result, err := c.OnToggle(ctx, ToggleEvent{Row: docs, Expanded: false})
		assert.NoError(t, err)
		assert.Empty(t, result.Inserted)
		assert.Equal(t, 0, a.ChildCount(docs))
		assert.Equal(t, Unmaterialized, c.State(docs))
	})

	t.Run("first_expand_materializes", func(t *testing.T) {
		result, err := c.OnToggle(ctx, ToggleEvent{Row: docs, Expanded: true, ChildCount: a.ChildCount(docs)})
		assert.NoError(t, err)
		assert.Len(t, result.Inserted, 3)
		assert.Equal(t, []string{"sub", "a.txt", "b.txt"}, childNames(a, docs))
		assert.Equal(t, Materialized, c.State(docs))
	})

	t.Run("second_expand_is_idempotent", func(t *testing.T) {
		before := a.Len()
		_, err := c.OnToggle(ctx, ToggleEvent{Row: docs, Expanded: false, ChildCount: a.ChildCount(docs)})
		assert.NoError(t, err)
		result, err := c.OnToggle(ctx, ToggleEvent{Row: docs, Expanded: true, ChildCount: a.ChildCount(docs)})
		assert.NoError(t, err)
		assert.Empty(t, result.Inserted)
		assert.Equal(t, before, a.Len())
	})

	t.Run("empty_dir_twice", func(t *testing.T) {
		before := a.Len()
		for i := 0; i < 2; i++ {
			result, err := c.OnToggle(ctx, ToggleEvent{Row: empty, Expanded: true, ChildCount: a.ChildCount(empty)})
			assert.NoError(t, err)
			assert.Empty(t, result.Inserted)
		}
		assert.Equal(t, before, a.Len())
		assert.Equal(t, Materialized, c.State(empty))
	})

	t.Run("file_row_is_noop", func(t *testing.T) {
		before := a.Len()
		_, err := c.OnToggle(ctx, ToggleEvent{Row: readme, Expanded: true})
		assert.NoError(t, err)
		assert.Equal(t, before, a.Len())
		assert.Equal(t, Unmaterialized, c.State(readme))
	})

	t.Run("unknown_row", func(t *testing.T) {
		_, err := c.OnToggle(ctx, ToggleEvent{Row: RowID(1000), Expanded: true})
		assert.ErrorIs(t, err, ErrUnknownRow)
	})
}

func TestController_FolderWithoutPath(t *testing.T) {
	t.Parallel()
	c, a := newTestController(t)
	row := a.InsertRoot(files.Entry{Name: "virtual", Kind: files.Folder})
	result, err := c.OnToggle(context.Background(), ToggleEvent{Row: row, Expanded: true})
	assert.NoError(t, err)
	assert.Empty(t, result.Inserted)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, Unmaterialized, c.State(row))
}

func TestController_ListErrorIsIsolated(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	mkTree(t, dir, "gone/", "keep.txt")

	var reported []error
	var reportedRows []RowID
	c, a := newTestController(t, OnListError(func(row RowID, err error) {
		reportedRows = append(reportedRows, row)
		reported = append(reported, err)
	}))
	ctx := context.Background()
	root, _, err := c.Open(ctx, dir)
	assert.NoError(t, err)
	gone := a.Children(root)[0]
	before := a.Len()

	assert.NoError(t, os.Remove(filepath.Join(dir, "gone")))

	result, err := c.OnToggle(ctx, ToggleEvent{Row: gone, Expanded: true})
	assert.Error(t, err)
	assert.Empty(t, result.Inserted)
	assert.Equal(t, before, a.Len())
	assert.Equal(t, []string{"gone", "keep.txt"}, childNames(a, root))
	assert.Equal(t, []RowID{gone}, reportedRows)
	assert.Len(t, reported, 1)
	assert.Equal(t, Materialized, c.State(gone))
}
