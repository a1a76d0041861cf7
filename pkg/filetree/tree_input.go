package filetree

import (
	"github.com/filetug/filetree/pkg/lazytree"
	"github.com/gdamore/tcell/v2"
)

func (t *Tree) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	row := t.CurrentRow()
	if row == lazytree.NoRow {
		return event
	}
	switch event.Key() {
	case tcell.KeyRight:
		if t.arena.IsContainer(row) && !t.Node(row).IsExpanded() {
			t.Expand(row)
			return nil
		}
		return event
	case tcell.KeyLeft:
		if t.arena.IsContainer(row) && t.Node(row).IsExpanded() {
			t.Collapse(row)
			return nil
		}
		if parent := t.arena.Parent(row); parent != lazytree.NoRow {
			t.SetCurrentNode(t.Node(parent))
			return nil
		}
		return event
	default:
		return event
	}
}
