// Package world runs the overworld simulation: actor movement against the
// collision grid, exit detection, and map transitions. It does not import
// ebitengine, so it can be driven from tests or a headless tool.
package world

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/shared/tilemap"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// ErrNotStarted is returned by Tick before Start has succeeded.
var ErrNotStarted = errors.New("world not started")

// Config holds the fixed parameters of a World.
type Config struct {
	Actor    ActorConfig
	Viewport math.Vec2
}

// MapChange is reported after the actor enters a map.
type MapChange struct {
	Map      string
	Position math.Vec2
}

type transitionResult struct {
	level *Level
	dest  Destination
	err   error
}

// World owns the current level and the actor. It is not safe for concurrent
// use; a pending transition loads on its own goroutine and is applied by Tick.
type World struct {
	cfg        Config
	manifest   *leveldata.Manifest
	controller *Controller

	level    *Level
	actor    *Actor
	actorObj *resolv.Object
	offset   math.Vec2

	// Exits stay disarmed until the actor leaves the tile it was on when the
	// last transition finished or failed.
	armed      bool
	disarmedAt tilemap.Point

	pending chan transitionResult
	ctx     context.Context
	cancel  context.CancelFunc

	OnMapChange func(MapChange)
}

// New validates the configuration and returns an unstarted World.
func New(cfg Config, manifest *leveldata.Manifest, loader AssetLoader) (*World, error) {
	if err := cfg.Actor.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", leveldata.ErrConfig, err)
	}
	if cfg.Viewport.X <= 0 || cfg.Viewport.Y <= 0 {
		return nil, fmt.Errorf("%w: viewport must be positive, got %vx%v",
			leveldata.ErrConfig, cfg.Viewport.X, cfg.Viewport.Y)
	}
	if manifest == nil || loader == nil {
		return nil, fmt.Errorf("%w: world needs a manifest and a loader", leveldata.ErrConfig)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &World{
		cfg:        cfg,
		manifest:   manifest,
		controller: NewController(manifest, loader),
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Start loads mapName synchronously and places the actor at pos, or at the
// map's default spawn when pos is nil.
func (w *World) Start(ctx context.Context, mapName string, pos *math.Vec2) error {
	def, err := w.manifest.Map(mapName)
	if err != nil {
		return err
	}
	lvl, err := w.controller.LoadLevel(ctx, def)
	if err != nil {
		return err
	}

	at := lvl.DefaultSpawn()
	if pos != nil {
		at = *pos
	}
	if w.actor == nil {
		w.actor, err = NewActor(w.cfg.Actor, at)
		if err != nil {
			return err
		}
	}
	old := w.level
	w.install(lvl, at)
	if old != lvl {
		old.Release()
	}
	return nil
}

// Tick advances one frame. Errors wrapping leveldata.ErrConfig are fatal;
// errors wrapping ErrAssetLoad leave the world as it was and may be logged
// and ignored.
func (w *World) Tick(in Input) error {
	if w.level == nil {
		return ErrNotStarted
	}
	if w.pending != nil {
		select {
		case res := <-w.pending:
			return w.finish(res)
		default:
			return nil
		}
	}

	a := w.actor
	a.Blocked = tilemap.Resolve(a.Body(), w.level.Grid)
	a.Move(in, w.level.Size())
	w.syncActorObject()
	w.updateOffset()

	tile := a.Tile()
	if !w.armed {
		if tile == w.disarmedAt {
			return nil
		}
		w.armed = true
	}
	match, ok := tilemap.Match(tile, w.level.Exits)
	if !ok || match.Exit.Destination == "" {
		return nil
	}
	return w.begin(match)
}

// Wait blocks until a pending transition finishes and applies it.
func (w *World) Wait(ctx context.Context) error {
	if w.pending == nil {
		return nil
	}
	select {
	case res := <-w.pending:
		return w.finish(res)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels any pending load and releases the current level.
func (w *World) Close() {
	w.cancel()
	w.pending = nil
	w.level.Release()
	w.level = nil
}

func (w *World) ViewportOffset() math.Vec2 { return w.offset }

func (w *World) Layers() Layers {
	if w.level == nil {
		return Layers{}
	}
	return w.level.Layers
}

func (w *World) MapName() string {
	if w.level == nil {
		return ""
	}
	return w.level.Name()
}

// Actor returns a copy of the actor state.
func (w *World) Actor() Actor {
	if w.actor == nil {
		return Actor{}
	}
	return *w.actor
}

func (w *World) Level() *Level { return w.level }

// Transitioning reports whether a destination map is loading.
func (w *World) Transitioning() bool { return w.pending != nil }

func (w *World) begin(match tilemap.ExitMatch) error {
	dest, err := w.controller.Resolve(match)
	if err != nil {
		w.disarm()
		return err
	}
	log.Printf("Exit %s on %s (tile %d): loading %s", match.Exit.Name, w.level.Name(), match.Index, dest.Map.Name)

	ch := make(chan transitionResult, 1)
	w.pending = ch
	ctx := w.ctx
	go func() {
		lvl, err := w.controller.LoadLevel(ctx, dest.Map)
		ch <- transitionResult{level: lvl, dest: dest, err: err}
	}()
	return nil
}

func (w *World) finish(res transitionResult) error {
	w.pending = nil
	if res.err != nil {
		w.disarm()
		return fmt.Errorf("transition to %s: %w", res.dest.Map.Name, res.err)
	}
	old := w.level
	w.install(res.level, res.dest.Position())
	old.Release()
	return nil
}

func (w *World) install(lvl *Level, at math.Vec2) {
	if w.actorObj != nil && w.level != nil {
		w.level.Space.Remove(w.actorObj)
	}
	w.level = lvl
	w.actor.Place(at, lvl.Size())
	w.actorObj = resolv.NewObject(w.actor.Position.X, w.actor.Position.Y, w.actor.Size.X, w.actor.Size.Y, tags.ResolvActor)
	w.actorObj.SetShape(resolv.NewRectangle(0, 0, w.actor.Size.X, w.actor.Size.Y))
	lvl.Space.Add(w.actorObj)
	w.syncActorObject()
	w.updateOffset()
	w.disarm()

	log.Printf("Entered map %s at tile %v", lvl.Name(), w.actor.Tile())
	if w.OnMapChange != nil {
		w.OnMapChange(MapChange{Map: lvl.Name(), Position: w.actor.Position})
	}
}

func (w *World) disarm() {
	w.armed = false
	w.disarmedAt = w.actor.Tile()
}

func (w *World) syncActorObject() {
	o := w.actorObj
	o.X, o.Y = w.actor.Position.X, w.actor.Position.Y
	o.Update()
	w.actor.Swimming = o.Check(0, 0, tags.ResolvWater) != nil
}

func (w *World) updateOffset() {
	w.offset = tilemap.ComputeOffset(w.actor.Position, w.level.Size(), w.cfg.Viewport)
}
