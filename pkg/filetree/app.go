package filetree

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the browser drives. Tests substitute it.
type App interface {
	Run() error
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	app *tview.Application
}

func NewApp(app *tview.Application) App {
	return appProxy{app: app}
}

func (a appProxy) Run() error {
	return a.app.Run()
}

func (a appProxy) SetFocus(p tview.Primitive) {
	_ = a.app.SetFocus(p)
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	_ = a.app.SetRoot(root, fullscreen)
}

func (a appProxy) Stop() {
	a.app.Stop()
}

func (a appProxy) EnableMouse(b bool) {
	_ = a.app.EnableMouse(b)
}
