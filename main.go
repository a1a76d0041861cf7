package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/filetug/filetree/pkg/files/osfile"
	"github.com/filetug/filetree/pkg/filetree"
	"github.com/filetug/filetree/pkg/filetree/ftsettings"
	"github.com/filetug/filetree/pkg/filetree/ftstate"
	"github.com/filetug/filetree/pkg/lazytree"
	"github.com/filetug/filetree/pkg/profiling"
	"github.com/rivo/tview"
)

const logFileName = "filetree.log"

var (
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	showHidden = flag.Bool("hidden", false, "show entries whose names start with a dot")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile
var resolveRoot = lazytree.ResolveRoot
var loadSettings = ftsettings.Load
var saveRootDir = ftstate.SaveRootDir
var getUserDir = ftsettings.GetUserDir

func main() {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [dir]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	app, stop, err := newFileTreeApp(flag.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "filetree: %v\n", err)
		osExit(1)
		return
	}
	defer stop()
	run(app)
}

// newFileTreeApp validates the root before the terminal is taken over.
// The returned stop function flushes profiles and closes the log file.
func newFileTreeApp(rootArg string) (app application, stop func(), err error) {
	root, err := resolveRoot(rootArg)
	if err != nil {
		return nil, nil, err
	}

	settings, err := loadSettings()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "filetree: using default settings: %v\n", err)
	}
	if *showHidden {
		settings.ShowHidden = true
	}

	stops := []func(){setupLog()}
	ftstate.SetLogger(log.Println)

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				log.Printf("pprof server error: %v", err)
			}
		}()
	}
	if *cpuProfile != "" {
		stops = append(stops, profiling.DoCPUProfiling(*cpuProfile))
	}
	if *memProfile != "" {
		stops = append(stops, profiling.DoMemProfiling(*memProfile))
	}

	saveRootDir(root)
	app = newApp(root, settings)

	stop = func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
	}
	return app, stop, nil
}

// setupLog sends the standard logger to the user dir, since the terminal belongs to the UI.
func setupLog() (closeLog func()) {
	dir, err := getUserDir()
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}
}

var setupApp = func(app filetree.App, root string, settings ftsettings.Settings) {
	filetree.SetupApp(app, osfile.NewStore(), root, settings)
}

var newApp = func(root string, settings ftsettings.Settings) application {
	app := tview.NewApplication()
	setupApp(filetree.NewApp(app), root, settings)
	return app
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
