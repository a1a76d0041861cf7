package osfile

import (
	"context"
	"os"

	"github.com/filetug/filetree/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osReadFile = os.ReadFile

var _ files.Store = (*Store)(nil)

// Store reads the local filesystem.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadFile(name)
}
