package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrNoTextures is returned by NopLoader for every path
var ErrNoTextures = errors.New("texture loading disabled")

// TextureLoader turns an asset path into a GPU image
type TextureLoader interface {
	Load(path string) (*ebiten.Image, error)
}

// FSLoader loads image files from a filesystem
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader reading from fsys
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewDirLoader creates a loader reading from a directory on disk
func NewDirLoader(dir string) *FSLoader {
	return &FSLoader{fsys: os.DirFS(dir)}
}

// Load decodes the image at path
func (l *FSLoader) Load(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	return img, nil
}

// NopLoader never loads anything; every slot becomes a placeholder.
// Used for headless runs where no graphics device exists.
type NopLoader struct{}

// Load always fails with ErrNoTextures
func (NopLoader) Load(path string) (*ebiten.Image, error) {
	return nil, ErrNoTextures
}
