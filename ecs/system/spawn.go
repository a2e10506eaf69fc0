package system

import (
	"fmt"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/entity"
)

// SpawnSystem appends one entity on every step that is a multiple of the
// current spawn interval.
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if w.Step%w.SpawnInterval() != 0 {
		return
	}

	kind, ok := w.Config.SpawnTable.Lookup(w.Rand.Float64())
	if !ok {
		return
	}
	e, err := entity.Build(kind, w.Config, w.Rand)
	if err != nil {
		fmt.Printf("spawn: step=%d: %v\n", w.Step, err)
		return
	}
	w.Spawn(e)
	w.Emit(ecs.Event{Type: ecs.EventSpawned, Kind: kind, X: e.X, Y: e.Y})
}
