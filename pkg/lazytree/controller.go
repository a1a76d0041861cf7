package lazytree

import (
	"context"

	"github.com/filetug/filetree/pkg/files"
)

// RowState is the expansion state of a container row.
type RowState int

const (
	Unmaterialized RowState = iota
	Materializing
	Materialized
)

func (s RowState) String() string {
	switch s {
	case Unmaterialized:
		return "unmaterialized"
	case Materializing:
		return "materializing"
	case Materialized:
		return "materialized"
	default:
		return "unknown"
	}
}

// ToggleEvent is sent by the host widget on every expand/collapse.
type ToggleEvent struct {
	Row        RowID
	Expanded   bool
	ChildCount int
}

// DecideToggle returns the next row state and whether the row must be materialized.
// Only an expansion of a row with no children triggers materialization.
func DecideToggle(state RowState, ev ToggleEvent) (RowState, bool) {
	if !ev.Expanded {
		return state, false
	}
	if ev.ChildCount != 0 {
		return Materialized, false
	}
	if state == Materializing {
		return state, false
	}
	return Materializing, true
}

type ControllerOption func(c *Controller)

// OnListError sets a hook for listing failures. They are not fatal: the row stays empty.
func OnListError(f func(row RowID, err error)) ControllerOption {
	return func(c *Controller) {
		c.onError = f
	}
}

// Controller materializes container rows on their first expansion.
type Controller struct {
	tree         Tree
	materializer *Materializer
	states       map[RowID]RowState
	onError      func(row RowID, err error)
}

func NewController(tree Tree, materializer *Materializer, o ...ControllerOption) *Controller {
	c := &Controller{
		tree:         tree,
		materializer: materializer,
		states:       make(map[RowID]RowState),
	}
	for _, opt := range o {
		opt(c)
	}
	return c
}

func (c *Controller) State(row RowID) RowState {
	return c.states[row]
}

// Open inserts a root row for dir and materializes its children.
func (c *Controller) Open(ctx context.Context, dir string) (RowID, Result, error) {
	root := c.tree.InsertRoot(files.NewEntry(dir, files.Folder))
	c.states[root] = Materializing
	result, err := c.materialize(ctx, root, dir)
	return root, result, err
}

func (c *Controller) OnToggle(ctx context.Context, ev ToggleEvent) (Result, error) {
	entry, ok := c.tree.Entry(ev.Row)
	if !ok {
		return Result{}, ErrUnknownRow
	}
	if !entry.IsDir() {
		return Result{}, nil
	}
	next, trigger := DecideToggle(c.states[ev.Row], ev)
	if !trigger {
		c.states[ev.Row] = next
		return Result{}, nil
	}
	if !entry.HasPath() {
		return Result{}, nil
	}
	c.states[ev.Row] = next
	return c.materialize(ctx, ev.Row, entry.Path)
}

func (c *Controller) materialize(ctx context.Context, row RowID, dir string) (Result, error) {
	result, err := c.materializer.Materialize(ctx, c.tree, row, dir)
	c.states[row] = Materialized
	if err != nil && c.onError != nil {
		c.onError(row, err)
	}
	return result, err
}
