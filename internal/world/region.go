package world

import (
	"sync"
	"sync/atomic"

	"github.com/l2j-emu/aegis/internal/model"
)

// Region holds every WorldObject currently visible inside one RegionSize×
// RegionSize cell of the grid. Visibility queries read a cached snapshot
// slice instead of ranging the live sync.Map, since scans vastly outnumber
// the adds/removes that invalidate it.
type Region struct {
	rx, ry int32

	mu             sync.RWMutex
	visibleObjects sync.Map // objectID -> *model.WorldObject

	surroundingRegions []*Region // 3x3 window around this region, set once at startup

	snapshotCache atomic.Value // []*model.WorldObject, immutable once published
	snapshotDirty atomic.Bool

	version atomic.Uint64 // bumped on every add/remove, used to fingerprint region state
}

// NewRegion creates a new region at grid index (rx, ry).
func NewRegion(rx, ry int32) *Region {
	return &Region{rx: rx, ry: ry}
}

// RX returns the region's X grid index.
func (r *Region) RX() int32 {
	return r.rx
}

// RY returns the region's Y grid index.
func (r *Region) RY() int32 {
	return r.ry
}

// Version returns the region's change counter, incremented on every
// AddVisibleObject/RemoveVisibleObject/ClearVisibleObjects call.
func (r *Region) Version() uint64 {
	return r.version.Load()
}

// invalidateSnapshot bumps the version and marks the cached snapshot stale.
// Every mutation to visibleObjects routes through here so the cache can
// never silently go out of sync with the underlying map.
func (r *Region) invalidateSnapshot() {
	r.version.Add(1)
	r.snapshotDirty.Store(true)
}

// AddVisibleObject makes obj visible within this region.
func (r *Region) AddVisibleObject(obj *model.WorldObject) {
	r.visibleObjects.Store(obj.ObjectID(), obj)
	r.invalidateSnapshot()
}

// RemoveVisibleObject removes an object from this region's visible set.
func (r *Region) RemoveVisibleObject(objectID uint32) {
	r.visibleObjects.Delete(objectID)
	r.invalidateSnapshot()
}

// ForEachVisibleObject calls fn for every visible object in the region,
// stopping early if fn returns false.
func (r *Region) ForEachVisibleObject(fn func(*model.WorldObject) bool) {
	r.visibleObjects.Range(func(_, value any) bool {
		return fn(value.(*model.WorldObject))
	})
}

// SetSurroundingRegions wires the 3x3 neighbor window. Called exactly once
// during world initialization; the slice is treated as immutable afterward.
func (r *Region) SetSurroundingRegions(regions []*Region) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surroundingRegions = regions
}

// SurroundingRegions returns the 3x3 neighbor window set by
// SetSurroundingRegions. The slice must not be modified by callers.
func (r *Region) SurroundingRegions() []*Region {
	return r.surroundingRegions
}

// GetVisibleObjectsSnapshot returns an immutable snapshot of every object
// currently visible in the region, rebuilding it lazily if stale.
func (r *Region) GetVisibleObjectsSnapshot() []*model.WorldObject {
	if !r.snapshotDirty.Load() {
		if cache := r.snapshotCache.Load(); cache != nil {
			return cache.([]*model.WorldObject)
		}
	}
	return r.rebuildSnapshot()
}

// ClearVisibleObjects drops every visible object from the region. Used to
// reset region state between test cases.
func (r *Region) ClearVisibleObjects() {
	r.visibleObjects.Range(func(key, _ any) bool {
		r.visibleObjects.Delete(key)
		return true
	})
	r.invalidateSnapshot()
	r.snapshotCache.Store(([]*model.WorldObject)(nil))
}

// rebuildSnapshot drains the live sync.Map into a slice and publishes it as
// the new snapshot, clearing the dirty flag.
func (r *Region) rebuildSnapshot() []*model.WorldObject {
	objects := make([]*model.WorldObject, 0, 64)
	r.visibleObjects.Range(func(_, value any) bool {
		objects = append(objects, value.(*model.WorldObject))
		return true
	})

	r.snapshotCache.Store(objects)
	r.snapshotDirty.Store(false)
	return objects
}
