// Package maps embeds the world manifest and the per-map Tiled files.
package maps

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/overworld/shared/leveldata"
)

//go:embed manifest.json */*.tmx */*.png
var mapFS embed.FS

// ManifestPath is the manifest's path inside FS.
const ManifestPath = "manifest.json"

// FS returns the embedded map tree. Manifest paths are relative to its root.
func FS() fs.FS { return mapFS }

// Loader loads map assets from a file system rooted at the manifest's
// directory. It satisfies world.AssetLoader.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a Loader over fsys, or over the embedded maps when fsys
// is nil.
func NewLoader(fsys fs.FS) *Loader {
	if fsys == nil {
		fsys = mapFS
	}
	return &Loader{fsys: fsys}
}

func (l *Loader) LoadMap(ctx context.Context, def *leveldata.MapDef) (*leveldata.MapAssets, error) {
	return leveldata.Load(ctx, l.fsys, def)
}

// LoadManifest reads and validates the embedded manifest.
func LoadManifest() (*leveldata.Manifest, error) {
	return leveldata.LoadManifest(mapFS, ManifestPath)
}

// MustLoadManifest is LoadManifest for startup code.
func MustLoadManifest() *leveldata.Manifest {
	m, err := LoadManifest()
	if err != nil {
		panic(fmt.Sprintf("Failed to load map manifest: %v", err))
	}
	return m
}
