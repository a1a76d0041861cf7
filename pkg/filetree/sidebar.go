package filetree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"
)

type sidebarTab struct {
	title   string
	content tview.Primitive
}

// sidebar is a small tab panel: a header line with one region per tab over a Pages.
type sidebar struct {
	*tview.Flex
	header *tview.TextView
	pages  *tview.Pages
	tabs   []sidebarTab
	active int
}

func newSidebar(tabs ...sidebarTab) *sidebar {
	s := &sidebar{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		header: tview.NewTextView().SetDynamicColors(true).SetRegions(true),
		pages:  tview.NewPages(),
		tabs:   tabs,
	}
	var sb strings.Builder
	for i, tab := range tabs {
		s.pages.AddPage(strconv.Itoa(i), tab.content, true, i == 0)
		_, _ = fmt.Fprintf(&sb, `["%s"] %s [""]`, tabRegion(i), tview.Escape(tab.title))
	}
	s.header.SetText(sb.String())
	s.header.SetHighlightedFunc(func(added, _, _ []string) {
		if len(added) == 0 {
			return
		}
		var i int
		if _, err := fmt.Sscanf(added[0], "tab-%d", &i); err == nil {
			s.show(i)
		}
	})
	s.header.Highlight(tabRegion(0))
	s.AddItem(s.header, 1, 0, false)
	s.AddItem(s.pages, 0, 1, true)
	s.SetBorder(true)
	return s
}

func (s *sidebar) show(i int) {
	if i < 0 || i >= len(s.tabs) {
		return
	}
	s.active = i
	s.pages.SwitchToPage(strconv.Itoa(i))
}

// next activates the following tab, wrapping around.
func (s *sidebar) next() {
	s.header.Highlight(tabRegion((s.active + 1) % len(s.tabs)))
}

func tabRegion(i int) string {
	return fmt.Sprintf("tab-%d", i)
}

func (s *sidebar) activeTitle() string {
	return s.tabs[s.active].title
}
