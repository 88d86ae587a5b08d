package engine

import (
	"sync"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

// PositionStore is a specialized store for PositionComponent that maintains
// a spatial index for position-based queries. Cells hold multiple entities:
// food may share a cell with the snake, and on a collision tick the head
// occupies the same cell as a body segment.
type PositionStore struct {
	*Store[component.PositionComponent]
	spatialIndex map[int]map[int][]core.Entity // [y][x] -> entities
	spatialMutex sync.RWMutex
}

// NewPositionStore creates a new position store with spatial indexing.
func NewPositionStore() *PositionStore {
	return &PositionStore{
		Store:        NewStore[component.PositionComponent](),
		spatialIndex: make(map[int]map[int][]core.Entity),
	}
}

// Add inserts or moves an entity, keeping the spatial index consistent.
func (ps *PositionStore) Add(e core.Entity, pos component.PositionComponent) {
	ps.spatialMutex.Lock()
	defer ps.spatialMutex.Unlock()

	if oldPos, exists := ps.Store.Get(e); exists {
		ps.unindex(e, oldPos)
	}

	ps.Store.Add(e, pos)

	if ps.spatialIndex[pos.Y] == nil {
		ps.spatialIndex[pos.Y] = make(map[int][]core.Entity)
	}
	ps.spatialIndex[pos.Y][pos.X] = append(ps.spatialIndex[pos.Y][pos.X], e)
}

// Remove deletes an entity, keeping the spatial index consistent.
func (ps *PositionStore) Remove(e core.Entity) {
	ps.spatialMutex.Lock()
	defer ps.spatialMutex.Unlock()

	if pos, exists := ps.Store.Get(e); exists {
		ps.unindex(e, pos)
	}

	ps.Store.Remove(e)
}

// EntitiesAt returns all entities occupying the given cell.
func (ps *PositionStore) EntitiesAt(x, y int) []core.Entity {
	ps.spatialMutex.RLock()
	defer ps.spatialMutex.RUnlock()

	row, ok := ps.spatialIndex[y]
	if !ok {
		return nil
	}
	cell := row[x]
	if len(cell) == 0 {
		return nil
	}
	result := make([]core.Entity, len(cell))
	copy(result, cell)
	return result
}

// Clear removes all entities and resets the spatial index.
func (ps *PositionStore) Clear() {
	ps.spatialMutex.Lock()
	defer ps.spatialMutex.Unlock()

	ps.Store.Clear()
	ps.spatialIndex = make(map[int]map[int][]core.Entity)
}

// unindex removes e from its cell. Caller must hold spatialMutex.
func (ps *PositionStore) unindex(e core.Entity, pos component.PositionComponent) {
	row, ok := ps.spatialIndex[pos.Y]
	if !ok {
		return
	}
	cell := row[pos.X]
	for i, entity := range cell {
		if entity == e {
			row[pos.X] = append(cell[:i], cell[i+1:]...)
			break
		}
	}
	if len(row[pos.X]) == 0 {
		delete(row, pos.X)
		if len(row) == 0 {
			delete(ps.spatialIndex, pos.Y)
		}
	}
}
