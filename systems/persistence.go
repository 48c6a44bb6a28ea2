package systems

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/automoto/overworld/world"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/features/math"
)

// SavedProgress is the map and position the player last entered a map at.
type SavedProgress struct {
	Map string  `json:"map"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

// Position returns the saved position as a vector.
func (p *SavedProgress) Position() *math.Vec2 {
	return &math.Vec2{X: p.X, Y: p.Y}
}

const progressKey = "progress"

var errNoStorage = errors.New("persistence not initialized")

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "overworld",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved progress from disk. It returns nil when there is
// none.
func LoadProgress() *SavedProgress {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil
	}
	return &progress
}

// SaveProgress saves progress to disk
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return errNoStorage
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// SaveOnMapChange is installed as the world's map change hook.
func SaveOnMapChange(c world.MapChange) {
	_ = SaveProgress(&SavedProgress{Map: c.Map, X: c.Position.X, Y: c.Position.Y})
}
