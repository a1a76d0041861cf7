// Package lazytree keeps a hierarchical widget in sync with the filesystem:
// folder rows are materialized on first expansion and file rows feed a content pane.
//
// Row storage belongs to the host widget. The package only holds RowID handles
// and never references widget internals directly.
package lazytree

import "github.com/filetug/filetree/pkg/files"

// RowID is an opaque handle to a row owned by the host widget.
type RowID int

// NoRow is returned when a row could not be inserted.
const NoRow RowID = -1

// Tree is what the core needs from a host widget. Insert methods append as the last child.
type Tree interface {
	InsertRoot(e files.Entry) RowID
	InsertContainer(e files.Entry, parent RowID) RowID
	InsertLeaf(e files.Entry, parent RowID) RowID
	Entry(row RowID) (files.Entry, bool)
}
