package enrich

import (
	"github.com/shururuun/TourGuide-Utils/internal/log"
	"github.com/shururuun/TourGuide-Utils/types"
)

type questResult struct {
	info types.QuestInfo
	ok   bool
}

// cache keeps source results for the lifetime of one run. Failed lookups
// are not cached.
type cache struct {
	quests   map[int]questResult
	starters map[int][]types.Location
	enders   map[int][]types.Location
	flights  map[int][]types.Location
}

func newCache() *cache {
	return &cache{
		quests:   map[int]questResult{},
		starters: map[int][]types.Location{},
		enders:   map[int][]types.Location{},
		flights:  map[int][]types.Location{},
	}
}

func (e *Enricher) quest(qid int) (types.QuestInfo, bool, error) {
	if r, ok := e.cache.quests[qid]; ok {
		return r.info, r.ok, nil
	}
	info, ok, err := e.quests.Quest(qid)
	if err != nil {
		return types.QuestInfo{}, false, err
	}
	e.cache.quests[qid] = questResult{info: info, ok: ok}
	return info, ok, nil
}

func (e *Enricher) starters(qid int) ([]types.Location, error) {
	return cached(e.cache.starters, qid, "starters", e.places.Starters)
}

func (e *Enricher) enders(qid int) ([]types.Location, error) {
	return cached(e.cache.enders, qid, "enders", e.places.Enders)
}

func (e *Enricher) flightMasters(mapID int) ([]types.Location, error) {
	return cached(e.cache.flights, mapID, "flight masters", e.places.FlightMasters)
}

func cached(m map[int][]types.Location, key int, what string, fetch func(int) ([]types.Location, error)) ([]types.Location, error) {
	if locs, ok := m[key]; ok {
		return locs, nil
	}
	locs, err := fetch(key)
	if err != nil {
		return nil, err
	}
	log.Debug("location lookup", "kind", what, "key", key, "found", len(locs))
	m[key] = locs
	return locs, nil
}
