// Package coords translates world positions into zone-relative percentage
// coordinates ("thottbot" coordinates) and back.
package coords

import (
	"math"

	"github.com/shururuun/TourGuide-Utils/types"
)

// Zones returns the zone table of a map in resolution order, or nil for an
// unknown map.
func Zones(mapID int) []types.Zone {
	return areas[mapID]
}

// ZoneByName returns the zone with the given name from either map.
func ZoneByName(name string) (types.Zone, bool) {
	z, ok := byName[name]
	return z, ok
}

// KnownZone reports whether name is a zone of either map.
func KnownZone(name string) bool {
	_, ok := byName[name]
	return ok
}

// MapOfZone returns the map id a zone belongs to.
func MapOfZone(name string) (int, bool) {
	z, ok := byName[name]
	return z.Map, ok
}

// contains reports whether the world position falls inside the zone. World Y
// runs along the horizontal percentage axis, world X along the vertical one.
func contains(z types.Zone, pos types.WorldPosition) bool {
	return z.Left >= pos.Y && pos.Y >= z.Right && z.Top >= pos.X && pos.X >= z.Bottom
}

// project computes the unrounded percentage coordinates inside a zone.
func project(z types.Zone, pos types.WorldPosition) (x, y float64) {
	x = (pos.Y - z.Left) / (z.Right - z.Left) * 100
	y = (pos.X - z.Top) / (z.Bottom - z.Top) * 100
	return x, y
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToZone projects a world position into the best matching zone of its map.
// When target names a zone containing the position, that zone is used without
// further comparison. Otherwise the first containing zone is the starting
// candidate; a continent zone (id 0) gives way to any later containing zone,
// and a regular zone is replaced only by a regular zone closer to the center.
func ToZone(pos types.WorldPosition, target string) (types.ZoneCoordinate, bool) {
	zones, ok := areas[pos.Map]
	if !ok {
		return types.ZoneCoordinate{}, false
	}

	var (
		best     *types.Zone
		bestX    float64
		bestY    float64
		bestDist float64
	)
	for i := range zones {
		z := &zones[i]
		if !contains(*z, pos) {
			continue
		}

		x, y := project(*z, pos)
		dist := math.Hypot(50-x, 50-y)

		if target != "" && target == z.Name {
			return types.ZoneCoordinate{X: round2(x), Y: round2(y), Zone: z.Name}, true
		}

		if best == nil || best.ID == 0 || (z.ID > 0 && dist < bestDist) {
			best, bestX, bestY, bestDist = z, x, y, dist
		}
	}

	if best == nil {
		return types.ZoneCoordinate{}, false
	}
	return types.ZoneCoordinate{X: round2(bestX), Y: round2(bestY), Zone: best.Name}, true
}

// ToWorld inverts a zone coordinate back into a world position.
func ToWorld(zc types.ZoneCoordinate) (types.WorldPosition, bool) {
	z, ok := byName[zc.Zone]
	if !ok {
		return types.WorldPosition{}, false
	}
	return types.WorldPosition{
		Map: z.Map,
		Y:   z.Left + zc.X/100*(z.Right-z.Left),
		X:   z.Top + zc.Y/100*(z.Bottom-z.Top),
	}, true
}

// Distance is the straight-line world distance between two positions on the
// same map. Positions on different maps are infinitely far apart.
func Distance(a, b types.WorldPosition) float64 {
	if a.Map != b.Map {
		return math.Inf(1)
	}
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ZoneByID returns the zone with the given area id. Continent entries have
// no id and are never returned.
func ZoneByID(id int) (types.Zone, bool) {
	if id == 0 {
		return types.Zone{}, false
	}
	z, ok := byID[id]
	return z, ok
}
