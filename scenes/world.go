package scenes

import (
	"context"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/overworld/assets/maps"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// WorldScene runs the overworld: one world, its actor and the overlays.
type WorldScene struct {
	ecs    *ecs.ECS
	world  *world.World
	resume *systems.SavedProgress
	once   sync.Once
	err    error
}

// NewWorldScene creates the scene. A non-nil resume places the actor where
// the saved progress left it.
func NewWorldScene(resume *systems.SavedProgress) *WorldScene {
	return &WorldScene{resume: resume}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()

	if err := systems.FatalError(ws.ecs); err != nil {
		return err
	}
	if systems.ExitRequested(ws.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Close stops any in-flight map load.
func (ws *WorldScene) Close() {
	if ws.world != nil {
		ws.world.Close()
	}
}

func (ws *WorldScene) configure() {
	manifest, err := maps.LoadManifest()
	if err != nil {
		ws.err = err
		return
	}

	w, err := world.New(world.Config{
		Actor: world.ActorConfig{
			Width:   cfg.Actor.CollisionWidth,
			Height:  cfg.Actor.CollisionHeight,
			Speed:   cfg.Actor.Speed,
			CanSwim: cfg.Actor.CanSwim,
		},
		Viewport: math.Vec2{X: float64(cfg.C.Width), Y: float64(cfg.C.Height)},
	}, manifest, maps.NewLoader(nil))
	if err != nil {
		ws.err = err
		return
	}
	if err := ws.start(w); err != nil {
		ws.err = err
		return
	}
	w.OnMapChange = systems.SaveOnMapChange
	ws.world = w

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWorld))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateLoading)
	ecs.AddSystem(systems.UpdateMessage)

	// Background, actor, foreground, then overlays
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActor)
	ecs.AddRenderer(cfg.Default, systems.DrawForeground)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawMessage)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLoading)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ws.ecs = ecs

	factory.CreateWorld(ws.ecs, w)
	factory.CreateLevel(ws.ecs)
	factory.CreateCamera(ws.ecs, w.ViewportOffset())
	factory.CreatePlayer(ws.ecs, w.Actor())
	factory.CreateLoading(ws.ecs)
}

// start places the actor from saved progress, falling back to a fresh start
// on the configured map when the save no longer fits the manifest.
func (ws *WorldScene) start(w *world.World) error {
	ctx := context.Background()
	if ws.resume != nil {
		err := w.Start(ctx, ws.resume.Map, ws.resume.Position())
		if err == nil {
			return nil
		}
		log.Printf("Warning: Could not resume at %s: %v", ws.resume.Map, err)
	}
	return w.Start(ctx, cfg.World.StartMap, nil)
}
