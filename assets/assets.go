package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/automoto/overworld/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	animationFS embed.FS
)

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image of a sprite sheet for one facing and
// frame, so every draw of the same frame reuses one *ebiten.Image.
func (l *AnimationLoader) GetFrame(sheetPath string, facing tilemap.Direction, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", sheetPath, facing, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(sheetPath)
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var (
	animationLoader = NewAnimationLoader()
)

func GetSheet(sheetPath string) *ebiten.Image {
	return animationLoader.MustLoadImage(sheetPath)
}

func GetFrame(sheetPath string, facing tilemap.Direction, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(sheetPath, facing, frameIndex, srcRect)
}
