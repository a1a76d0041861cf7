package gitutils

import (
	"os"
	"path/filepath"
)

var osStat = os.Stat

// GetRepositoryRoot walks up from dirPath to the first directory holding a .git directory.
func GetRepositoryRoot(dirPath string) (repoRootDir string) {
	dirPath, err := filepath.Abs(dirPath)
	if err != nil {
		return ""
	}
	for {
		if stat, err := osStat(filepath.Join(dirPath, ".git")); err == nil && stat.IsDir() {
			return dirPath
		}
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			return ""
		}
		dirPath = parent
	}
}
