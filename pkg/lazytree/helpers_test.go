package lazytree

import (
	"os"
	"path/filepath"
	"testing"
)

// mkTree creates files and directories under root. Names ending with "/" are directories.
func mkTree(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte("content of "+name), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
}

func childNames(a *Arena, row RowID) []string {
	var names []string
	for _, child := range a.Children(row) {
		entry, _ := a.Entry(child)
		names = append(names, entry.Name)
	}
	return names
}

type recordingPane struct {
	text       string
	title      string
	emphasized bool
	calls      int
}

func (p *recordingPane) SetText(text string) {
	p.text = text
	p.calls++
}

func (p *recordingPane) SetTitle(label string, emphasized bool) {
	p.title = label
	p.emphasized = emphasized
	p.calls++
}
