package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/overworld/shared/tilemap"
)

// LoadManifest reads and validates the manifest at path within fsys.
func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(raw)
}

// ParseManifest decodes and validates manifest JSON.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: decode manifest: %v", ErrConfig, err)
	}
	for name, def := range m.Maps {
		if def == nil {
			return nil, fmt.Errorf("%w: map %q has no definition", ErrConfig, name)
		}
		def.Name = name
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Map returns the definition of a registered map.
func (m *Manifest) Map(name string) (*MapDef, error) {
	def, ok := m.Maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown map %q", ErrConfig, name)
	}
	return def, nil
}

// Names returns the registered map names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Maps))
	for n := range m.Maps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate checks every exit of every map against the rest of the manifest.
func (m *Manifest) Validate() error {
	if len(m.Maps) == 0 {
		return fmt.Errorf("%w: manifest has no maps", ErrConfig)
	}
	for _, name := range m.Names() {
		def := m.Maps[name]
		if len(def.Paths) == 0 {
			return fmt.Errorf("%w: map %q has no asset paths", ErrConfig, name)
		}
		if def.Width < 0 || def.Height < 0 {
			return fmt.Errorf("%w: map %q has negative size", ErrConfig, name)
		}
		seen := map[[2]int]string{}
		for _, exitName := range sortedExitNames(def.Exits) {
			e := def.Exits[exitName]
			where := fmt.Sprintf("map %q exit %q", name, exitName)
			if len(e.Location) == 0 {
				return fmt.Errorf("%w: %s has no locations", ErrConfig, where)
			}
			if len(e.Location) != len(e.SpawnLocation) {
				return fmt.Errorf("%w: %s has %d locations but %d spawn locations",
					ErrConfig, where, len(e.Location), len(e.SpawnLocation))
			}
			for _, loc := range e.Location {
				if other, dup := seen[loc]; dup {
					return fmt.Errorf("%w: %s shares tile %v with exit %q", ErrConfig, where, loc, other)
				}
				seen[loc] = exitName
			}
			if e.Destination == "" {
				// Spawn-only exit: an arrival point with no way out.
				continue
			}
			dest, ok := m.Maps[e.Destination]
			if !ok {
				return fmt.Errorf("%w: %s leads to unknown map %q", ErrConfig, where, e.Destination)
			}
			spawn, ok := dest.Exits[e.DestinationSpawn]
			if !ok {
				return fmt.Errorf("%w: %s spawns at unknown exit %q on map %q",
					ErrConfig, where, e.DestinationSpawn, e.Destination)
			}
			if len(spawn.SpawnLocation) < len(e.Location) {
				return fmt.Errorf("%w: %s has %d locations but spawn exit %q on %q has only %d spawn locations",
					ErrConfig, where, len(e.Location), e.DestinationSpawn, e.Destination, len(spawn.SpawnLocation))
			}
		}
	}
	return nil
}

// TileExits converts the on-disk exits of a map to the tilemap form.
func (d *MapDef) TileExits() tilemap.Exits {
	exits := make(tilemap.Exits, len(d.Exits))
	for name, e := range d.Exits {
		exits[name] = &tilemap.Exit{
			Name:             name,
			Locations:        toPoints(e.Location),
			SpawnLocations:   toPoints(e.SpawnLocation),
			Destination:      e.Destination,
			DestinationSpawn: e.DestinationSpawn,
		}
	}
	return exits
}

// SpawnPoint returns spawn location i of the named exit.
func (d *MapDef) SpawnPoint(exitName string, i int) (tilemap.Point, error) {
	e, ok := d.Exits[exitName]
	if !ok {
		return tilemap.Point{}, fmt.Errorf("%w: map %q has no exit %q", ErrConfig, d.Name, exitName)
	}
	if i < 0 || i >= len(e.SpawnLocation) {
		return tilemap.Point{}, fmt.Errorf("%w: map %q exit %q has no spawn location %d", ErrConfig, d.Name, exitName, i)
	}
	loc := e.SpawnLocation[i]
	return tilemap.Point{X: loc[0], Y: loc[1]}, nil
}

func toPoints(locs [][2]int) []tilemap.Point {
	pts := make([]tilemap.Point, len(locs))
	for i, l := range locs {
		pts[i] = tilemap.Point{X: l[0], Y: l[1]}
	}
	return pts
}

func sortedExitNames(exits map[string]ExitDef) []string {
	names := make([]string, 0, len(exits))
	for n := range exits {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
