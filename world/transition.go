package world

import (
	"context"
	"errors"
	"fmt"

	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/shared/tilemap"
	"github.com/yohamta/donburi/features/math"
)

// ErrAssetLoad marks a failed load of a destination map's assets. It is
// recoverable: the actor stays where it was.
var ErrAssetLoad = errors.New("map asset load failed")

// AssetLoader loads the grid and render layers for a map.
type AssetLoader interface {
	LoadMap(ctx context.Context, def *leveldata.MapDef) (*leveldata.MapAssets, error)
}

// AssetLoaderFunc adapts a function to AssetLoader.
type AssetLoaderFunc func(ctx context.Context, def *leveldata.MapDef) (*leveldata.MapAssets, error)

func (f AssetLoaderFunc) LoadMap(ctx context.Context, def *leveldata.MapDef) (*leveldata.MapAssets, error) {
	return f(ctx, def)
}

// Destination is where a matched exit sends the actor.
type Destination struct {
	Map       *leveldata.MapDef
	SpawnExit string
	Tile      tilemap.Point
}

// Position is the destination tile in pixels.
func (d Destination) Position() math.Vec2 {
	x, y := d.Tile.Pixels()
	return math.Vec2{X: x, Y: y}
}

// Controller resolves exits against the manifest and loads levels.
type Controller struct {
	manifest *leveldata.Manifest
	loader   AssetLoader
}

func NewController(manifest *leveldata.Manifest, loader AssetLoader) *Controller {
	return &Controller{manifest: manifest, loader: loader}
}

// Resolve finds the destination map and spawn tile for an exit match. The
// spawn tile is the destination exit's spawn location at the same index as
// the tile the actor stepped on.
func (c *Controller) Resolve(match tilemap.ExitMatch) (Destination, error) {
	e := match.Exit
	if e == nil {
		return Destination{}, fmt.Errorf("%w: empty exit match", leveldata.ErrConfig)
	}
	def, err := c.manifest.Map(e.Destination)
	if err != nil {
		return Destination{}, fmt.Errorf("exit %q: %w", e.Name, err)
	}
	tile, err := def.SpawnPoint(e.DestinationSpawn, match.Index)
	if err != nil {
		return Destination{}, fmt.Errorf("exit %q: %w", e.Name, err)
	}
	return Destination{Map: def, SpawnExit: e.DestinationSpawn, Tile: tile}, nil
}

// LoadLevel loads a map's assets and builds its Level. Loader failures are
// wrapped in ErrAssetLoad unless they are configuration errors.
func (c *Controller) LoadLevel(ctx context.Context, def *leveldata.MapDef) (*Level, error) {
	assets, err := c.loader.LoadMap(ctx, def)
	if err != nil {
		if errors.Is(err, leveldata.ErrConfig) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	if assets == nil || assets.Grid == nil {
		return nil, fmt.Errorf("%w: map %q loaded without a collision grid", ErrAssetLoad, def.Name)
	}
	w, h := assets.Grid.PixelSize()
	if def.Width != 0 && float64(def.Width) != w || def.Height != 0 && float64(def.Height) != h {
		return nil, fmt.Errorf("%w: map %q declares %dx%d but its collision layer is %vx%v",
			leveldata.ErrConfig, def.Name, def.Width, def.Height, w, h)
	}
	return NewLevel(def, assets), nil
}

// Transition resolves match and loads the destination level. Nothing is
// mutated; the caller swaps levels only when err is nil.
func (c *Controller) Transition(ctx context.Context, match tilemap.ExitMatch) (*Level, Destination, error) {
	dest, err := c.Resolve(match)
	if err != nil {
		return nil, Destination{}, err
	}
	lvl, err := c.LoadLevel(ctx, dest.Map)
	if err != nil {
		return nil, Destination{}, err
	}
	return lvl, dest, nil
}
