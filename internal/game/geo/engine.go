package geo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Engine is the main GeoEngine for pathfinding and LOS checks.
// Thread-safe: regions are loaded once and never modified.
type Engine struct {
	regions [GeoRegionsX * GeoRegionsY]atomic.Pointer[Region]
	loaded  atomic.Int32
}

// NewEngine creates an empty GeoEngine (no regions loaded).
func NewEngine() *Engine {
	return &Engine{}
}

// LoadGeodata loads all .l2j files from the given directory.
// File naming convention: "<regionX>_<regionY>.l2j"
func (e *Engine) LoadGeodata(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading geodata dir %s: %w", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		n, err := e.loadRegionFile(dir, entry.Name())
		if err != nil {
			return err
		}
		if n {
			loaded++
		}
	}

	e.loaded.Store(int32(loaded))
	slog.Info("geodata loaded", "regions", loaded, "dir", dir)
	return nil
}

// loadRegionFile parses and stores a single "<rx>_<ry>.l2j" file. It returns
// false (with no error) for names that don't match the convention or fall
// outside the region grid, since a geodata directory commonly ships partial
// coverage.
func (e *Engine) loadRegionFile(dir, name string) (bool, error) {
	ext := filepath.Ext(name)
	if ext != ".l2j" {
		return false, nil
	}

	var rx, ry int
	base := name[:len(name)-len(ext)]
	if _, err := fmt.Sscanf(base, "%d_%d", &rx, &ry); err != nil {
		slog.Warn("skip geodata file (bad name)", "file", name)
		return false, nil
	}
	if rx < 0 || rx >= GeoRegionsX || ry < 0 || ry >= GeoRegionsY {
		slog.Warn("skip geodata file (out of range)", "file", name, "rx", rx, "ry", ry)
		return false, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return false, fmt.Errorf("reading geodata %s: %w", name, err)
	}
	region, err := LoadRegion(data)
	if err != nil {
		return false, fmt.Errorf("parsing geodata %s: %w", name, err)
	}

	e.regions[rx*GeoRegionsY+ry].Store(region)
	return true, nil
}

// IsLoaded returns true if any geodata regions are loaded.
func (e *Engine) IsLoaded() bool {
	return e.loaded.Load() > 0
}

// getRegion returns the region for given geo coordinates (nil if not loaded).
func (e *Engine) getRegion(geoX, geoY int32) *Region {
	rx, ry := RegionXY(geoX, geoY)
	if rx < 0 || rx >= GeoRegionsX || ry < 0 || ry >= GeoRegionsY {
		return nil
	}
	return e.regions[rx*GeoRegionsY+ry].Load()
}

// resolveCell locates the region and in-region cell coordinates backing a
// geo-coordinate pair. Every per-cell lookup below (height, NSWE, presence)
// funnels through here so the negative-coordinate guard and the
// region-to-local-cell math live in exactly one place.
func (e *Engine) resolveCell(geoX, geoY int32) (region *Region, localX, localY int32, ok bool) {
	if geoX < 0 || geoY < 0 {
		return nil, 0, 0, false
	}
	region = e.getRegion(geoX, geoY)
	if region == nil {
		return nil, 0, 0, false
	}
	return region, geoX % RegionCellsX, geoY % RegionCellsY, true
}

// HasGeoPos returns true if geodata exists at the given world position.
func (e *Engine) HasGeoPos(worldX, worldY int32) bool {
	return e.hasGeoData(GeoX(worldX), GeoY(worldY))
}

// GetHeight returns the geodata Z height at world (x, y, z).
// Returns worldZ unchanged if no geodata is loaded for this position.
func (e *Engine) GetHeight(worldX, worldY, worldZ int32) int32 {
	return e.getNearestZ(GeoX(worldX), GeoY(worldY), worldZ)
}

// getNearestZ returns nearest Z from geodata for geo coordinates.
func (e *Engine) getNearestZ(geoX, geoY int32, worldZ int32) int32 {
	region, localX, localY, ok := e.resolveCell(geoX, geoY)
	if !ok {
		return worldZ
	}
	return region.GetNearestZ(localX, localY, worldZ)
}

// getNextHigherZ returns the next higher Z from geodata for geo coordinates.
// Used for LOS: when movement is blocked, we need the wall top height.
func (e *Engine) getNextHigherZ(geoX, geoY int32, worldZ int32) int32 {
	region, localX, localY, ok := e.resolveCell(geoX, geoY)
	if !ok {
		return worldZ
	}
	return region.GetNextHigherZ(localX, localY, worldZ)
}

// getNSWE returns the NSWE mask at geo coordinates.
func (e *Engine) getNSWE(geoX, geoY int32, worldZ int32) byte {
	region, localX, localY, ok := e.resolveCell(geoX, geoY)
	if !ok {
		return NSWEAll
	}
	return region.GetNSWE(localX, localY, worldZ)
}

// hasGeoData returns true if geo coordinates have per-cell data.
func (e *Engine) hasGeoData(geoX, geoY int32) bool {
	region, localX, localY, ok := e.resolveCell(geoX, geoY)
	if !ok {
		return false
	}
	return region.HasGeoData(localX, localY)
}
