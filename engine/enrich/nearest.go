package enrich

import (
	"math"

	"github.com/shururuun/TourGuide-Utils/engine/coords"
	"github.com/shururuun/TourGuide-Utils/engine/state"
	"github.com/shururuun/TourGuide-Utils/types"
)

// pick chooses the location a step refers to and projects it. Locations that
// project into zone are preferred over those that do not. Ties are broken by
// distance from the guide's last known position; without a position the
// first location in source order wins.
func pick(locs []types.Location, zone string, g *state.Guide) (types.ZoneCoordinate, bool) {
	var (
		best     types.ZoneCoordinate
		found    bool
		bestHome bool
		bestDist = math.Inf(1)
	)
	for _, l := range locs {
		pos := types.WorldPosition{Map: l.Map, X: l.X, Y: l.Y}
		zc, ok := coords.ToZone(pos, zone)
		if !ok {
			continue
		}
		home := zc.Zone == zone
		dist := math.Inf(1)
		if g.HasPosition {
			dist = coords.Distance(g.Position, pos)
		}

		switch {
		case !found:
		case home && !bestHome:
		case home == bestHome && dist < bestDist:
		default:
			continue
		}
		best, found, bestHome, bestDist = zc, true, home, dist
	}
	return best, found
}
