package world

import (
	"sync"
	"sync/atomic"
)

// ObjectIDGenerator generates unique object IDs for all world entities.
// Phase 4.15: Centralized ID generation to prevent collisions between players, NPCs, items.
//
// ID ranges (convention):
//   0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid/mock objects)
//   0x10000000 - 0x1FFFFFFF: Players (268M IDs)
//   0x20000000 - 0x2FFFFFFF: NPCs (268M IDs)
//   0x30000000 - 0x3FFFFFFF: Items on ground (268M IDs)
//   0x40000000 - 0xFFFFFFFF: Reserved for future use
//
// Each range is a monotonically-expanding counter minus a per-range free
// list: despawning an entity releases its id back to the pool so a
// long-running server doesn't exhaust a 268M-id range to churn alone.
type ObjectIDGenerator struct {
	nextPlayerID atomic.Uint32
	nextNpcID    atomic.Uint32
	nextItemID   atomic.Uint32

	mu         sync.Mutex
	freePlayer []uint32
	freeNpc    []uint32
	freeItem   []uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(0x10000000) // Start at 268M (player range)
	gen.nextNpcID.Store(0x20000000)    // Start at 536M (NPC range)
	gen.nextItemID.Store(0x30000000)   // Start at 805M (item range)
	return gen
}

func popFree(list []uint32) (uint32, []uint32, bool) {
	if len(list) == 0 {
		return 0, list, false
	}
	n := len(list) - 1
	return list[n], list[:n], true
}

// NextPlayerID returns a freed player id if one is available, otherwise
// allocates a new one from the monotonic counter.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	g.mu.Lock()
	if id, rest, ok := popFree(g.freePlayer); ok {
		g.freePlayer = rest
		g.mu.Unlock()
		return id
	}
	g.mu.Unlock()
	return g.nextPlayerID.Add(1)
}

// NextNpcID returns a freed NPC id if one is available, otherwise allocates
// a new one from the monotonic counter.
func (g *ObjectIDGenerator) NextNpcID() uint32 {
	g.mu.Lock()
	if id, rest, ok := popFree(g.freeNpc); ok {
		g.freeNpc = rest
		g.mu.Unlock()
		return id
	}
	g.mu.Unlock()
	return g.nextNpcID.Add(1)
}

// NextItemID returns a freed item id if one is available, otherwise
// allocates a new one from the monotonic counter.
func (g *ObjectIDGenerator) NextItemID() uint32 {
	g.mu.Lock()
	if id, rest, ok := popFree(g.freeItem); ok {
		g.freeItem = rest
		g.mu.Unlock()
		return id
	}
	g.mu.Unlock()
	return g.nextItemID.Add(1)
}

// ReleasePlayerID returns a player id to the pool at despawn.
func (g *ObjectIDGenerator) ReleasePlayerID(id uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.freePlayer = append(g.freePlayer, id)
}

// ReleaseNpcID returns an NPC id to the pool at despawn.
func (g *ObjectIDGenerator) ReleaseNpcID(id uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.freeNpc = append(g.freeNpc, id)
}

// ReleaseItemID returns an item id to the pool once its entity is destroyed
// or picked up and merged into an existing stack.
func (g *ObjectIDGenerator) ReleaseItemID(id uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.freeItem = append(g.freeItem, id)
}

// Global ID generator (singleton pattern).
// Initialized on first access via sync.Once in Instance().
var globalIDGenerator = NewObjectIDGenerator()

// IDGenerator returns global object ID generator.
// Thread-safe singleton.
func IDGenerator() *ObjectIDGenerator {
	return globalIDGenerator
}
