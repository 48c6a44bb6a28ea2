package main

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/shared/tilemap"
	"github.com/automoto/overworld/world"
)

// Report is the outcome of checking one world.
type Report struct {
	Maps     int
	Exits    int
	Warnings []string
}

// Check loads every map of the manifest, builds its level and resolves every
// exit tile against its destination. Load and configuration failures are
// returned as errors; suspicious but playable data becomes a warning.
func Check(ctx context.Context, fsys fs.FS, manifest *leveldata.Manifest) (*Report, error) {
	all, err := leveldata.LoadAll(ctx, fsys, manifest)
	if err != nil {
		return nil, err
	}

	loader := world.AssetLoaderFunc(func(_ context.Context, def *leveldata.MapDef) (*leveldata.MapAssets, error) {
		return all[def.Name], nil
	})
	controller := world.NewController(manifest, loader)

	r := &Report{}
	for _, name := range manifest.Names() {
		def, _ := manifest.Map(name)
		level, err := controller.LoadLevel(ctx, def)
		if err != nil {
			return nil, err
		}
		r.Maps++
		r.Warnings = append(r.Warnings, leveldata.CheckExitTiles(def, level.Grid)...)

		for _, exitName := range level.Exits.Names() {
			e := level.Exits[exitName]
			r.Exits++
			if e.Destination == "" {
				continue
			}
			for i := range e.Locations {
				dest, err := controller.Resolve(tilemap.ExitMatch{Exit: e, Index: i})
				if err != nil {
					return nil, err
				}
				r.Warnings = append(r.Warnings, checkSpawn(name, exitName, dest, all[dest.Map.Name].Grid)...)
			}
		}
		level.Release()
	}
	return r, nil
}

func checkSpawn(from, exitName string, dest world.Destination, grid *tilemap.Grid) []string {
	where := fmt.Sprintf("map %q exit %q -> %s %v", from, exitName, dest.Map.Name, dest.Tile)
	if !grid.InBounds(dest.Tile.X, dest.Tile.Y) {
		return []string{where + ": spawn tile is outside the map"}
	}
	switch t := grid.At(dest.Tile); t {
	case tilemap.Collidable, tilemap.Water:
		return []string{fmt.Sprintf("%s: spawn tile is %s", where, t)}
	}
	return nil
}
