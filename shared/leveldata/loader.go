package leveldata

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/automoto/overworld/shared/tilemap"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"golang.org/x/sync/errgroup"
)

// CollisionLayer is the name of the tile layer holding collision codes.
const CollisionLayer = "collision"

// Visual layer kinds, matched against the "layer" property of TMX tile layers.
const (
	LayerBackground = "background"
	LayerForeground = "foreground"
)

// Load reads the collision grid and both visual layers of a map concurrently.
// Paths are ordered collision, background, foreground; a single TMX path
// supplies all three.
func Load(ctx context.Context, fsys fs.FS, def *MapDef) (*MapAssets, error) {
	if len(def.Paths) == 0 {
		return nil, fmt.Errorf("%w: map %q has no asset paths", ErrConfig, def.Name)
	}
	collisionPath, bgPath, fgPath := def.layerPaths()
	cache := &tmxCache{fsys: fsys, maps: map[string]*tmxEntry{}}

	var out MapAssets
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		grid, err := loadGrid(fsys, cache, collisionPath)
		out.Grid = grid
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := loadLayer(fsys, cache, bgPath, LayerBackground)
		out.Background = img
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := loadLayer(fsys, cache, fgPath, LayerForeground)
		out.Foreground = img
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load map %q: %w", def.Name, err)
	}
	return &out, nil
}

// LoadAll loads every map of the manifest. Used by tooling to check a world
// before shipping it.
func LoadAll(ctx context.Context, fsys fs.FS, m *Manifest) (map[string]*MapAssets, error) {
	all := make(map[string]*MapAssets, len(m.Maps))
	for _, name := range m.Names() {
		assets, err := Load(ctx, fsys, m.Maps[name])
		if err != nil {
			return nil, err
		}
		all[name] = assets
	}
	return all, nil
}

// CheckExitTiles lists exit locations that are not Exit tiles on the grid.
// The manifest is authoritative, so these are warnings, not errors.
func CheckExitTiles(def *MapDef, grid *tilemap.Grid) []string {
	var warnings []string
	exits := def.TileExits()
	for _, name := range exits.Names() {
		for _, p := range exits[name].Locations {
			if t := grid.At(p); t != tilemap.ExitTile {
				warnings = append(warnings, fmt.Sprintf("map %q exit %q: tile %v is %s, not exit", def.Name, name, p, t))
			}
		}
	}
	return warnings
}

func (d *MapDef) layerPaths() (collision, bg, fg string) {
	collision = d.Paths[0]
	bg, fg = collision, collision
	if len(d.Paths) > 1 {
		bg = d.Paths[1]
	}
	if len(d.Paths) > 2 {
		fg = d.Paths[2]
	}
	return collision, bg, fg
}

func loadGrid(fsys fs.FS, cache *tmxCache, p string) (*tilemap.Grid, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".tmx":
		m, err := cache.load(p)
		if err != nil {
			return nil, err
		}
		return gridFromTMX(m, p)
	case ".json":
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read collision layer %s: %w", p, err)
		}
		return ParseCollisionJSON(raw)
	}
	return nil, fmt.Errorf("%w: unsupported collision layer %s", ErrConfig, p)
}

func loadLayer(fsys fs.FS, cache *tmxCache, p, kind string) (image.Image, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".tmx":
		m, err := cache.load(p)
		if err != nil {
			return nil, err
		}
		return renderTMXLayers(fsys, m, kind)
	case ".png":
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s layer %s: %w", kind, p, err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s layer %s: %w", kind, p, err)
		}
		return img, nil
	}
	// A JSON collision path carries no visual layer.
	return nil, nil
}

func gridFromTMX(m *tiled.Map, p string) (*tilemap.Grid, error) {
	if m.TileWidth != tilemap.TileSize || m.TileHeight != tilemap.TileSize {
		return nil, fmt.Errorf("%w: %s uses %dx%d tiles, want %d", ErrConfig, p, m.TileWidth, m.TileHeight, tilemap.TileSize)
	}
	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == CollisionLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%w: %s has no %q layer", ErrConfig, p, CollisionLayer)
	}

	tiles := make([]tilemap.TileType, m.Width*m.Height)
	for i, t := range layer.Tiles {
		if i >= len(tiles) {
			break
		}
		if t == nil || t.IsNil() {
			continue
		}
		tiles[i] = tileTypeOf(t)
	}
	return tilemap.NewGrid(m.Width, m.Height, tiles)
}

// tileTypeOf prefers the tileset "kind" property and falls back to the raw GID.
func tileTypeOf(t *tiled.LayerTile) tilemap.TileType {
	if t.Tileset == nil {
		return tilemap.Open
	}
	if tsTile, err := t.Tileset.GetTilesetTile(t.ID); err == nil {
		if tt, ok := tilemap.ParseTileType(tsTile.Properties.GetString("kind")); ok {
			return tt
		}
	}
	return tilemap.TileTypeFromCode(int(t.Tileset.FirstGID + t.ID))
}

func renderTMXLayers(fsys fs.FS, m *tiled.Map, kind string) (image.Image, error) {
	renderer, err := render.NewRendererWithFileSystem(m, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	var canvas *image.NRGBA
	for i, layer := range m.Layers {
		if layer.Properties.GetString("layer") != kind || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %q: %w", layer.Name, err)
		}
		if canvas == nil {
			canvas = image.NewNRGBA(renderer.Result.Bounds())
		}
		draw.Draw(canvas, canvas.Bounds(), renderer.Result, renderer.Result.Bounds().Min, draw.Over)
		renderer.Clear()
	}
	if canvas == nil {
		return nil, nil
	}
	return canvas, nil
}

// tiledJSON covers both a bare Tiled tile layer and a Tiled map with layers.
type tiledJSON struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Data   []int       `json:"data"`
	Layers []tiledJSON `json:"layers"`
}

// ParseCollisionJSON decodes a collision layer exported from Tiled as JSON.
func ParseCollisionJSON(raw []byte) (*tilemap.Grid, error) {
	var doc tiledJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode collision layer: %w", err)
	}
	layer := doc
	if len(doc.Layers) > 0 {
		found := false
		for _, l := range doc.Layers {
			if l.Name == CollisionLayer {
				layer, found = l, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no %q layer in collision JSON", ErrConfig, CollisionLayer)
		}
	}
	grid, err := tilemap.NewGridFromCodes(layer.Width, layer.Height, layer.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return grid, nil
}

type tmxEntry struct {
	once sync.Once
	m    *tiled.Map
	err  error
}

// tmxCache parses each TMX path at most once per Load.
type tmxCache struct {
	fsys fs.FS
	mu   sync.Mutex
	maps map[string]*tmxEntry
}

func (c *tmxCache) load(p string) (*tiled.Map, error) {
	c.mu.Lock()
	e, ok := c.maps[p]
	if !ok {
		e = &tmxEntry{}
		c.maps[p] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.m, e.err = tiled.LoadFile(p, tiled.WithFileSystem(c.fsys))
		if e.err != nil {
			e.err = fmt.Errorf("load TMX %s: %w", p, e.err)
		}
	})
	return e.m, e.err
}
