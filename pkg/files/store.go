package files

import (
	"context"
	"os"
)

//go:generate mockgen -destination=mock_store.go -package=files . Store

// Store is the filesystem seam used by the tree and the content pane.
type Store interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// Stat follows symbolic links.
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	ReadFile(ctx context.Context, name string) ([]byte, error)
}
