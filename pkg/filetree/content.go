package filetree

import (
	"log"

	"github.com/filetug/filetree/pkg/chroma2tcell"
	"github.com/filetug/filetree/pkg/lazytree"
	"github.com/rivo/tview"
)

const (
	editorPage  = "editor"
	previewPage = "preview"
)

var highlight = chroma2tcell.Highlight

var _ lazytree.ContentPane = (*ContentPane)(nil)

// ContentPane shows the active document either in an editable TextArea
// or, with highlighting on, in a read-only colorized TextView.
type ContentPane struct {
	*tview.Pages
	editor    *tview.TextArea
	preview   *tview.TextView
	highlight bool
	style     string

	text string
	name string
}

func NewContentPane(highlight bool, style string) *ContentPane {
	p := &ContentPane{
		Pages:     tview.NewPages(),
		editor:    tview.NewTextArea(),
		preview:   tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetScrollable(true),
		highlight: highlight,
		style:     style,
	}
	p.editor.SetPlaceholder("Select a file in the tree")
	p.AddPage(editorPage, p.editor, true, !highlight)
	p.AddPage(previewPage, p.preview, true, highlight)
	p.SetBorder(true)
	p.SetTitleAlign(tview.AlignLeft)
	return p
}

// SetText replaces the document. With highlighting on, rendering waits for SetTitle,
// which supplies the file name the lexer is picked by.
func (p *ContentPane) SetText(text string) {
	p.text = text
	if !p.highlight {
		p.render()
	}
}

// SetTitle shows the active document name. Emphasis is rendered as underline.
func (p *ContentPane) SetTitle(label string, emphasized bool) {
	p.name = label
	title := tview.Escape(label)
	if emphasized {
		title = "[::u]" + title + "[::-]"
	}
	p.Pages.SetTitle(" " + title + " ")
	if p.highlight {
		p.render()
	}
}

func (p *ContentPane) render() {
	if !p.highlight {
		p.editor.SetText(p.text, false)
		p.SwitchToPage(editorPage)
		return
	}
	colorized, err := highlight(p.name, p.text, p.style)
	if err != nil {
		log.Printf("failed to highlight %s: %v", p.name, err)
		colorized = tview.Escape(p.text)
	}
	p.preview.SetText(colorized)
	p.preview.ScrollToBeginning()
	p.SwitchToPage(previewPage)
}

// Text returns the document as last set, including unsaved edits in the editor.
func (p *ContentPane) Text() string {
	if p.highlight {
		return p.text
	}
	return p.editor.GetText()
}

func (p *ContentPane) Name() string {
	return p.name
}
