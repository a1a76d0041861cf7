package lazytree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/filetug/filetree/pkg/fsutils"
)

var osGetwd = os.Getwd
var dirExists = fsutils.DirExists

// ResolveRoot returns the absolute directory to browse. An empty arg means the working directory.
func ResolveRoot(arg string) (string, error) {
	var dir string
	if arg == "" {
		wd, err := osGetwd()
		if err != nil {
			return "", fmt.Errorf("no working directory: %w", err)
		}
		dir = wd
	} else {
		abs, err := filepath.Abs(fsutils.ExpandHome(arg))
		if err != nil {
			return "", err
		}
		dir = abs
	}
	exists, err := dirExists(dir)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrRootNotDir, dir)
	}
	return dir, nil
}
