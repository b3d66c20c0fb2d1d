package world

// The visibility grid divides the playable map into RegionSize-unit square
// regions so a character only scans its own region plus neighbors instead
// of every object on the map.
const (
	// ShiftBy gives 2^ShiftBy game units per region (2048).
	ShiftBy = 11

	WorldXMin = -131072
	WorldYMin = -262144
	WorldXMax = 196608
	WorldYMax = 229376

	// OffsetX/OffsetY translate negative world coordinates into a
	// zero-based array index: abs(WorldXMin>>ShiftBy), abs(WorldYMin>>ShiftBy).
	OffsetX = 64
	OffsetY = 128

	// RegionsX/RegionsY size the backing region array.
	RegionsX = 160
	RegionsY = 241

	RegionSize = 1 << ShiftBy
)

// CoordToRegionIndex converts a world coordinate pair to its region grid index.
func CoordToRegionIndex(x, y int32) (rx, ry int32) {
	return (x >> ShiftBy) + OffsetX, (y >> ShiftBy) + OffsetY
}

// IsValidRegionIndex reports whether a region index falls within the grid.
func IsValidRegionIndex(rx, ry int32) bool {
	return rx >= 0 && rx < RegionsX && ry >= 0 && ry < RegionsY
}

// RegionIndexToCoord converts a region index back to the world coordinate
// at the center of that region.
func RegionIndexToCoord(rx, ry int32) (x, y int32) {
	x = ((rx - OffsetX) << ShiftBy) + (RegionSize / 2)
	y = ((ry - OffsetY) << ShiftBy) + (RegionSize / 2)
	return x, y
}
