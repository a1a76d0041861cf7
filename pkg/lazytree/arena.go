package lazytree

import "github.com/filetug/filetree/pkg/files"

var _ Tree = (*Arena)(nil)

type arenaRow struct {
	entry     files.Entry
	parent    RowID
	container bool
	children  []RowID
}

// Arena is an index-addressed row store. Rows are appended and never removed,
// so a RowID stays valid for the arena's lifetime.
type Arena struct {
	rows  []arenaRow
	roots []RowID
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) InsertRoot(e files.Entry) RowID {
	row := a.add(e, NoRow, true)
	a.roots = append(a.roots, row)
	return row
}

func (a *Arena) InsertContainer(e files.Entry, parent RowID) RowID {
	if !a.valid(parent) {
		return NoRow
	}
	return a.add(e, parent, true)
}

func (a *Arena) InsertLeaf(e files.Entry, parent RowID) RowID {
	if !a.valid(parent) {
		return NoRow
	}
	return a.add(e, parent, false)
}

func (a *Arena) add(e files.Entry, parent RowID, container bool) RowID {
	row := RowID(len(a.rows))
	a.rows = append(a.rows, arenaRow{entry: e, parent: parent, container: container})
	if parent != NoRow {
		a.rows[parent].children = append(a.rows[parent].children, row)
	}
	return row
}

func (a *Arena) valid(row RowID) bool {
	return row >= 0 && int(row) < len(a.rows)
}

func (a *Arena) Entry(row RowID) (files.Entry, bool) {
	if !a.valid(row) {
		return files.Entry{}, false
	}
	return a.rows[row].entry, true
}

// Parent returns NoRow for top-level rows and unknown handles.
func (a *Arena) Parent(row RowID) RowID {
	if !a.valid(row) {
		return NoRow
	}
	return a.rows[row].parent
}

func (a *Arena) Children(row RowID) []RowID {
	if !a.valid(row) {
		return nil
	}
	return a.rows[row].children
}

func (a *Arena) ChildCount(row RowID) int {
	return len(a.Children(row))
}

func (a *Arena) IsContainer(row RowID) bool {
	return a.valid(row) && a.rows[row].container
}

func (a *Arena) Roots() []RowID {
	return a.roots
}

// Len is the total number of rows.
func (a *Arena) Len() int {
	return len(a.rows)
}
