package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/scenes"
	"github.com/automoto/overworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	startMap := flag.String("map", config.World.StartMap, "map to start on when there is no saved progress")
	fresh := flag.Bool("fresh", config.Debug.FreshStart, "ignore saved progress")
	debug := flag.Bool("debug", config.Debug.ShowOverlay, "show the collision overlay (toggle with F1)")
	flag.Parse()

	config.World.StartMap = *startMap
	config.Debug.FreshStart = *fresh
	config.Debug.ShowOverlay = *debug

	if err := fonts.LoadDefaults(config.UI.FontSize, config.UI.TitleFontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	var resume *systems.SavedProgress
	if !config.Debug.FreshStart {
		resume = systems.LoadProgress()
	}

	scene := scenes.NewWorldScene(resume)
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
