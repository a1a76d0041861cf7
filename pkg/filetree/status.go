package filetree

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type statusBar struct {
	*tview.TextView
}

func newStatusBar() *statusBar {
	return &statusBar{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetTextColor(Style.StatusColor),
	}
}

func (s *statusBar) showError(err error) {
	s.SetText(colorTag(Style.ErrorColor) + tview.Escape(err.Error()) + "[-]")
}

// showInfo joins the non-empty parts. Parts may carry colour tags.
func (s *statusBar) showInfo(parts ...string) {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	s.SetText(strings.Join(nonEmpty, " ┊ "))
}

func colorTag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}
