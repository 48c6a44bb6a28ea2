package world

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/shared/tilemap"
	"github.com/yohamta/donburi/features/math"
)

const testManifest = `{
  "maps": {
    "firstMap": {
      "width": 1600, "height": 1600,
      "paths": ["firstMap.json"],
      "exits": {
        "south": {
          "location": [[18,49],[19,49],[20,49],[21,49]],
          "spawnLocation": [[18,48],[19,48],[20,48],[21,48]],
          "destination": "secondMap",
          "destinationSpawn": "north"
        }
      }
    },
    "secondMap": {
      "width": 960, "height": 960,
      "paths": ["secondMap.json"],
      "exits": {
        "north": {
          "location": [[10,0],[11,0],[12,0],[13,0]],
          "spawnLocation": [[10,1],[11,1],[12,1],[13,1]],
          "destination": "firstMap",
          "destinationSpawn": "south"
        }
      }
    }
  }
}`

func testGrids(t *testing.T) map[string]*tilemap.Grid {
	t.Helper()
	build := func(w, h int, set map[tilemap.Point]tilemap.TileType) *tilemap.Grid {
		tiles := make([]tilemap.TileType, w*h)
		for p, tt := range set {
			tiles[p.Y*w+p.X] = tt
		}
		g, err := tilemap.NewGrid(w, h, tiles)
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	first := map[tilemap.Point]tilemap.TileType{
		{X: 3, Y: 3}: tilemap.Spawn,
		{X: 5, Y: 5}: tilemap.Water,
		{X: 8, Y: 5}: tilemap.Collidable,
	}
	for x := 18; x <= 21; x++ {
		first[tilemap.Point{X: x, Y: 49}] = tilemap.ExitTile
	}
	second := map[tilemap.Point]tilemap.TileType{}
	for x := 10; x <= 13; x++ {
		second[tilemap.Point{X: x, Y: 0}] = tilemap.ExitTile
	}
	return map[string]*tilemap.Grid{
		"firstMap":  build(50, 50, first),
		"secondMap": build(30, 30, second),
	}
}

type fakeLoader struct {
	grids map[string]*tilemap.Grid
	fail  map[string]error
	gate  chan struct{}
}

func (f *fakeLoader) LoadMap(ctx context.Context, def *leveldata.MapDef) (*leveldata.MapAssets, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.fail[def.Name]; err != nil {
		return nil, err
	}
	return &leveldata.MapAssets{Grid: f.grids[def.Name]}, nil
}

func testConfig(canSwim bool) Config {
	return Config{
		Actor:    ActorConfig{Width: 32, Height: 32, Speed: 2, CanSwim: canSwim},
		Viewport: math.Vec2{X: 1280, Y: 720},
	}
}

func newTestWorld(t *testing.T, cfg Config, loader AssetLoader, mapName string, at *math.Vec2) *World {
	t.Helper()
	m, err := leveldata.ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}
	w, err := New(cfg, m, loader)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background(), mapName, at); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(w.Close)
	return w
}

func tilePos(x, y int) *math.Vec2 {
	px, py := tilemap.Point{X: x, Y: y}.Pixels()
	return &math.Vec2{X: px, Y: py}
}

func walkUntilTransition(t *testing.T, w *World, in Input, max int) {
	t.Helper()
	for i := 0; i < max; i++ {
		if err := w.Tick(in); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if w.Transitioning() {
			return
		}
	}
	t.Fatalf("no transition after %d ticks, actor at %v", max, w.Actor().Position)
}

func TestTickBeforeStart(t *testing.T) {
	m, _ := leveldata.ParseManifest([]byte(testManifest))
	w, err := New(testConfig(false), m, &fakeLoader{})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Tick(Input{}); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("err = %v, want ErrNotStarted", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	m, _ := leveldata.ParseManifest([]byte(testManifest))
	cfg := testConfig(false)
	cfg.Actor.Speed = 0
	if _, err := New(cfg, m, &fakeLoader{}); !errors.Is(err, leveldata.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestStartDefaultSpawn(t *testing.T) {
	w := newTestWorld(t, testConfig(false), &fakeLoader{grids: testGrids(t)}, "firstMap", nil)
	if got := w.Actor().Position; got.X != 96 || got.Y != 96 {
		t.Fatalf("default spawn = %v, want (96,96)", got)
	}
	if w.MapName() != "firstMap" {
		t.Fatalf("map = %q", w.MapName())
	}
}

func TestSouthExitToSecondMap(t *testing.T) {
	var changes []MapChange
	w := newTestWorld(t, testConfig(false), &fakeLoader{grids: testGrids(t)}, "firstMap", tilePos(19, 48))
	w.OnMapChange = func(c MapChange) { changes = append(changes, c) }

	walkUntilTransition(t, w, Input{Down: true, Last: tilemap.DirDown}, 20)
	if err := w.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	if w.MapName() != "secondMap" {
		t.Fatalf("map = %q, want secondMap", w.MapName())
	}
	// Stepping on index 1 of the south exit lands on index 1 of north's spawns.
	if got := w.Actor().Tile(); got != (tilemap.Point{X: 11, Y: 1}) {
		t.Fatalf("spawn tile = %v, want {11 1}", got)
	}
	if got := w.Actor().Position; got.X != 352 || got.Y != 32 {
		t.Fatalf("spawn position = %v", got)
	}
	if len(changes) != 1 || changes[0].Map != "secondMap" {
		t.Fatalf("map changes = %+v", changes)
	}
}

func TestFailedTransitionKeepsState(t *testing.T) {
	loader := &fakeLoader{
		grids: testGrids(t),
		fail:  map[string]error{"secondMap": errors.New("disk on fire")},
	}
	w := newTestWorld(t, testConfig(false), loader, "firstMap", tilePos(19, 48))

	walkUntilTransition(t, w, Input{Down: true}, 20)
	before := w.Actor().Position
	err := w.Wait(context.Background())
	if !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("err = %v, want ErrAssetLoad", err)
	}
	if w.MapName() != "firstMap" || w.Actor().Position != before {
		t.Fatalf("state changed after failed load: %s %v", w.MapName(), w.Actor().Position)
	}

	// Standing still on the exit must not retrigger the load.
	for i := 0; i < 5; i++ {
		if err := w.Tick(Input{}); err != nil {
			t.Fatal(err)
		}
		if w.Transitioning() {
			t.Fatal("exit retriggered without leaving the tile")
		}
	}
}

func TestActorFrozenWhileLoading(t *testing.T) {
	loader := &fakeLoader{grids: testGrids(t)}
	w := newTestWorld(t, testConfig(false), loader, "firstMap", tilePos(19, 48))
	loader.gate = make(chan struct{})

	walkUntilTransition(t, w, Input{Down: true}, 20)
	at := w.Actor().Position
	for i := 0; i < 3; i++ {
		if err := w.Tick(Input{Left: true}); err != nil {
			t.Fatal(err)
		}
	}
	if w.Actor().Position != at || w.MapName() != "firstMap" {
		t.Fatal("actor moved while the destination was loading")
	}

	close(loader.gate)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := w.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if w.MapName() != "secondMap" {
		t.Fatalf("map = %q after load", w.MapName())
	}
}

func TestWaterBlocksNonSwimmer(t *testing.T) {
	w := newTestWorld(t, testConfig(false), &fakeLoader{grids: testGrids(t)}, "firstMap", tilePos(4, 5))
	for i := 0; i < 5; i++ {
		if err := w.Tick(Input{Right: true}); err != nil {
			t.Fatal(err)
		}
	}
	a := w.Actor()
	if a.Position.X != 128 || !a.Blocked.Right {
		t.Fatalf("non-swimmer entered water: %v blocked=%+v", a.Position, a.Blocked)
	}
	if a.Swimming {
		t.Fatal("non-swimmer reported swimming")
	}
}

func TestSwimmerEntersWater(t *testing.T) {
	w := newTestWorld(t, testConfig(true), &fakeLoader{grids: testGrids(t)}, "firstMap", tilePos(4, 5))
	if err := w.Tick(Input{Right: true}); err != nil {
		t.Fatal(err)
	}
	a := w.Actor()
	if a.Position.X != 130 {
		t.Fatalf("swimmer x = %v, want 130", a.Position.X)
	}
	if !a.Swimming {
		t.Fatal("swimmer overlapping water is not swimming")
	}
}

func TestWallBlocksSwimmer(t *testing.T) {
	w := newTestWorld(t, testConfig(true), &fakeLoader{grids: testGrids(t)}, "firstMap", tilePos(7, 5))
	if err := w.Tick(Input{Right: true}); err != nil {
		t.Fatal(err)
	}
	if got := w.Actor().Position.X; got != 224 {
		t.Fatalf("x = %v, want 224", got)
	}
}

func TestActorClampedToMap(t *testing.T) {
	w := newTestWorld(t, testConfig(false), &fakeLoader{grids: testGrids(t)}, "firstMap", &math.Vec2{})
	if err := w.Tick(Input{Left: true, Up: true}); err != nil {
		t.Fatal(err)
	}
	if got := w.Actor().Position; got.X != 0 || got.Y != 0 {
		t.Fatalf("actor left the map: %v", got)
	}
	if got := w.ViewportOffset(); got.X != 0 || got.Y != 0 {
		t.Fatalf("offset = %v, want (0,0)", got)
	}

	w = newTestWorld(t, testConfig(false), &fakeLoader{grids: testGrids(t)}, "firstMap", &math.Vec2{X: 1568, Y: 1568})
	if err := w.Tick(Input{Right: true, Down: true}); err != nil {
		t.Fatal(err)
	}
	if got := w.Actor().Position; got.X != 1568 || got.Y != 1568 {
		t.Fatalf("actor left the map: %v", got)
	}
	if got := w.ViewportOffset(); got.X != -320 || got.Y != -880 {
		t.Fatalf("offset = %v, want (-320,-880)", got)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	w := newTestWorld(t, testConfig(false), &fakeLoader{grids: testGrids(t)}, "firstMap", tilePos(20, 20))
	start := w.Actor().Position
	if err := w.Tick(Input{Left: true, Right: true, Up: true, Last: tilemap.DirUp}); err != nil {
		t.Fatal(err)
	}
	a := w.Actor()
	if a.Position.X != start.X || a.Position.Y != start.Y-2 {
		t.Fatalf("position = %v, want x unchanged and y-2", a.Position)
	}
	if a.Facing != tilemap.DirUp || !a.Moving {
		t.Fatalf("facing=%v moving=%v", a.Facing, a.Moving)
	}
}

func TestControllerResolveUnknownDestination(t *testing.T) {
	m, _ := leveldata.ParseManifest([]byte(testManifest))
	c := NewController(m, &fakeLoader{})
	match := tilemap.ExitMatch{Exit: &tilemap.Exit{Name: "west", Destination: "nowhere"}}
	if _, err := c.Resolve(match); !errors.Is(err, leveldata.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestLoadLevelRejectsSizeMismatch(t *testing.T) {
	m, _ := leveldata.ParseManifest([]byte(testManifest))
	grids := testGrids(t)
	// firstMap declares 1600x1600 but gets the 30x30 grid.
	grids["firstMap"] = grids["secondMap"]
	c := NewController(m, &fakeLoader{grids: grids})

	def, _ := m.Map("firstMap")
	if _, err := c.LoadLevel(context.Background(), def); !errors.Is(err, leveldata.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}

	def, _ = m.Map("secondMap")
	if _, err := c.LoadLevel(context.Background(), def); err != nil {
		t.Fatalf("matching size: %v", err)
	}
}
