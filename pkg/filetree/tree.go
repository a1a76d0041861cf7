package filetree

import (
	"github.com/filetug/filetree/pkg/files"
	"github.com/filetug/filetree/pkg/lazytree"
	"github.com/rivo/tview"
	"golang.org/x/text/unicode/norm"
)

var _ lazytree.Tree = (*Tree)(nil)

// Tree hosts lazytree rows in a tview.TreeView. Row handles index both the arena and the node slice.
type Tree struct {
	*tview.TreeView
	arena *lazytree.Arena
	top   *tview.TreeNode
	nodes []*tview.TreeNode

	toggled   func(ev lazytree.ToggleEvent)
	activated func(row lazytree.RowID)
}

func NewTree() *Tree {
	tv := tview.NewTreeView()
	top := tview.NewTreeNode("").SetSelectable(false)
	tv.SetRoot(top).SetTopLevel(1)
	t := &Tree{
		TreeView: tv,
		arena:    lazytree.NewArena(),
		top:      top,
	}
	tv.SetSelectedFunc(t.selected)
	tv.SetInputCapture(t.inputCapture)
	return t
}

// SetToggledFunc sets the handler called after a container row is expanded or collapsed.
func (t *Tree) SetToggledFunc(f func(ev lazytree.ToggleEvent)) {
	t.toggled = f
}

// SetActivatedFunc sets the handler called when a leaf row is selected.
func (t *Tree) SetActivatedFunc(f func(row lazytree.RowID)) {
	t.activated = f
}

func (t *Tree) InsertRoot(e files.Entry) lazytree.RowID {
	row := t.arena.InsertRoot(e)
	node := t.newNode(row, e, true).SetExpanded(true)
	t.top.AddChild(node)
	if t.GetCurrentNode() == nil {
		t.SetCurrentNode(node)
	}
	return row
}

func (t *Tree) InsertContainer(e files.Entry, parent lazytree.RowID) lazytree.RowID {
	row := t.arena.InsertContainer(e, parent)
	if row == lazytree.NoRow {
		return row
	}
	t.nodes[parent].AddChild(t.newNode(row, e, true).SetExpanded(false))
	return row
}

func (t *Tree) InsertLeaf(e files.Entry, parent lazytree.RowID) lazytree.RowID {
	row := t.arena.InsertLeaf(e, parent)
	if row == lazytree.NoRow {
		return row
	}
	t.nodes[parent].AddChild(t.newNode(row, e, false))
	return row
}

func (t *Tree) newNode(row lazytree.RowID, e files.Entry, container bool) *tview.TreeNode {
	node := tview.NewTreeNode(rowText(e, container)).SetReference(row)
	if container {
		node.SetColor(Style.FolderColor)
	} else {
		node.SetColor(GetColorByFileExt(e.Name))
	}
	t.nodes = append(t.nodes, node)
	return node
}

// rowText renders a label for display. Decomposed names are shown composed.
func rowText(e files.Entry, container bool) string {
	name := tview.Escape(norm.NFC.String(e.Name))
	if container {
		return dirEmoji + name
	}
	return " " + name
}

func (t *Tree) Entry(row lazytree.RowID) (files.Entry, bool) {
	return t.arena.Entry(row)
}

// Arena exposes the row hierarchy for read-only navigation.
func (t *Tree) Arena() *lazytree.Arena {
	return t.arena
}

// Node returns the tview node of a row, or nil.
func (t *Tree) Node(row lazytree.RowID) *tview.TreeNode {
	if row < 0 || int(row) >= len(t.nodes) {
		return nil
	}
	return t.nodes[row]
}

// CurrentRow returns the row under the cursor.
func (t *Tree) CurrentRow() lazytree.RowID {
	return nodeRow(t.GetCurrentNode())
}

func nodeRow(node *tview.TreeNode) lazytree.RowID {
	if node == nil {
		return lazytree.NoRow
	}
	if row, ok := node.GetReference().(lazytree.RowID); ok {
		return row
	}
	return lazytree.NoRow
}

func (t *Tree) selected(node *tview.TreeNode) {
	row := nodeRow(node)
	if row == lazytree.NoRow {
		return
	}
	if t.arena.IsContainer(row) {
		t.Toggle(row)
		return
	}
	if t.activated != nil {
		t.activated(row)
	}
}

// Toggle flips the expansion of a container row and notifies the toggled handler.
func (t *Tree) Toggle(row lazytree.RowID) {
	node := t.Node(row)
	if node == nil || !t.arena.IsContainer(row) {
		return
	}
	node.SetExpanded(!node.IsExpanded())
	if t.toggled != nil {
		t.toggled(lazytree.ToggleEvent{
			Row:        row,
			Expanded:   node.IsExpanded(),
			ChildCount: len(node.GetChildren()),
		})
	}
}

func (t *Tree) Expand(row lazytree.RowID) {
	if node := t.Node(row); node != nil && !node.IsExpanded() {
		t.Toggle(row)
	}
}

func (t *Tree) Collapse(row lazytree.RowID) {
	if node := t.Node(row); node != nil && node.IsExpanded() {
		t.Toggle(row)
	}
}
