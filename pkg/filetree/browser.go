package filetree

import (
	"context"
	"log"
	"path/filepath"

	"github.com/filetug/filetree/pkg/chroma2tcell"
	"github.com/filetug/filetree/pkg/files"
	"github.com/filetug/filetree/pkg/filetree/ftsettings"
	"github.com/filetug/filetree/pkg/filetree/ftstate"
	"github.com/filetug/filetree/pkg/fsutils"
	"github.com/filetug/filetree/pkg/gitutils"
	"github.com/filetug/filetree/pkg/lazytree"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const sidebarWidth = 30

var saveCurrentFile = ftstate.SaveCurrentFile
var getBranch = gitutils.GetBranch

// Browser is the main screen: the sidebar with the lazy tree, the content pane and the status row.
type Browser struct {
	*tview.Flex
	app     App
	tree    *Tree
	sidebar *sidebar
	content *ContentPane
	status  *statusBar
	quit    *tview.Button
	branch  string

	controller *lazytree.Controller
	bridge     *lazytree.Bridge
	root       lazytree.RowID
}

// NewBrowser builds the screen and seeds the tree with the children of root.
// A root that cannot be listed is reported in the status line, not returned.
func NewBrowser(app App, store files.Store, root string, settings ftsettings.Settings) *Browser {
	ctx := context.Background()
	b := &Browser{
		app:     app,
		tree:    NewTree(),
		content: NewContentPane(settings.Highlight, settings.Style),
		status:  newStatusBar(),
	}
	b.controller = lazytree.NewController(b.tree,
		lazytree.NewMaterializer(store, lazytree.ShowHidden(settings.ShowHidden)),
		lazytree.OnListError(b.listFailed),
	)
	b.bridge = lazytree.NewBridge(b.tree, store, b.content,
		lazytree.MaxFileSize(settings.MaxFileSize),
		lazytree.OnLoaded(b.loaded),
	)
	b.tree.SetToggledFunc(func(ev lazytree.ToggleEvent) {
		// Listing failures arrive through listFailed.
		_, _ = b.controller.OnToggle(ctx, ev)
	})
	b.tree.SetActivatedFunc(func(row lazytree.RowID) {
		if err := b.bridge.OnActivate(ctx, row); err != nil {
			log.Printf("filetree: %v", err)
			b.status.showError(err)
		}
	})

	if branch, err := getBranch(root); err != nil {
		log.Printf("filetree: failed to get git branch: %v", err)
	} else {
		b.branch = branch
	}

	var err error
	if b.root, _, err = b.controller.Open(ctx, root); err == nil {
		b.status.showInfo(root, gitutils.BranchLabel(b.branch))
	}

	b.createLayout()
	return b
}

func (b *Browser) listFailed(row lazytree.RowID, err error) {
	log.Printf("filetree: %v", err)
	b.status.showError(err)
}

func (b *Browser) loaded(entry files.Entry, size int) {
	b.status.showInfo(
		entry.Name,
		fsutils.ShortSize(int64(size)),
		chroma2tcell.Language(entry.Name),
		gitutils.BranchLabel(b.branch),
	)
	saveCurrentFile(entry.Path)
}

func (b *Browser) createLayout() {
	search := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("Global search is not available yet")
	b.sidebar = newSidebar(
		sidebarTab{title: "Files", content: b.tree},
		sidebarTab{title: "Global Search", content: search},
	)
	b.sidebar.SetTitle(" " + tview.Escape(filepath.Base(b.rootPath())) + " ")
	b.sidebar.SetTitleAlign(tview.AlignLeft)

	b.quit = tview.NewButton("Quit").SetSelectedFunc(b.app.Stop)

	b.tree.SetFocusFunc(func() {
		b.sidebar.SetBorderColor(Style.FocusedBorderColor)
	})
	b.tree.SetBlurFunc(func() {
		b.sidebar.SetBorderColor(Style.BlurBorderColor)
	})
	b.content.editor.SetFocusFunc(b.contentFocused)
	b.content.preview.SetFocusFunc(b.contentFocused)
	b.content.editor.SetBlurFunc(b.contentBlurred)
	b.content.preview.SetBlurFunc(b.contentBlurred)

	columns := tview.NewFlex().
		AddItem(b.sidebar, sidebarWidth, 0, true).
		AddItem(b.content, 0, 1, false)
	bottom := tview.NewFlex().
		AddItem(b.status, 0, 1, false).
		AddItem(b.quit, 8, 0, false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(columns, 0, 1, true).
		AddItem(bottom, 1, 0, false)
	b.SetInputCapture(b.inputCapture)
}

func (b *Browser) contentFocused() {
	b.content.SetBorderColor(Style.FocusedBorderColor)
}

func (b *Browser) contentBlurred() {
	b.content.SetBorderColor(Style.BlurBorderColor)
}

func (b *Browser) rootPath() string {
	if entry, ok := b.tree.Entry(b.root); ok {
		return entry.Path
	}
	return ""
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlQ:
		b.app.Stop()
		return nil
	case tcell.KeyCtrlT:
		b.sidebar.next()
		if b.sidebar.active == 0 {
			b.app.SetFocus(b.tree)
		}
		return nil
	case tcell.KeyTab:
		if b.tree.HasFocus() {
			b.app.SetFocus(b.content)
			return nil
		}
	case tcell.KeyEscape:
		if !b.tree.HasFocus() {
			b.app.SetFocus(b.tree)
			return nil
		}
	}
	return event
}

// Tree returns the sidebar tree widget.
func (b *Browser) Tree() *Tree {
	return b.tree
}

// Content returns the content pane.
func (b *Browser) Content() *ContentPane {
	return b.content
}

// SetupApp creates the browser for root and installs it as the application root.
func SetupApp(app App, store files.Store, root string, settings ftsettings.Settings) *Browser {
	b := NewBrowser(app, store, root, settings)
	app.EnableMouse(true)
	app.SetRoot(b, true)
	app.SetFocus(b.tree)
	return b
}
