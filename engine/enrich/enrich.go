// Package enrich fills in step data from external quest and location
// sources. The sources are capabilities injected by the caller; the package
// itself knows nothing about how they are stored.
package enrich

import (
	"fmt"

	"github.com/shururuun/TourGuide-Utils/engine/coords"
	"github.com/shururuun/TourGuide-Utils/engine/grammar"
	"github.com/shururuun/TourGuide-Utils/engine/state"
	"github.com/shururuun/TourGuide-Utils/internal/log"
	"github.com/shururuun/TourGuide-Utils/types"
)

// QuestInfo looks up quest metadata by quest id.
type QuestInfo interface {
	Quest(qid int) (types.QuestInfo, bool, error)
}

// NearestLocation lists the world positions relevant to a step.
type NearestLocation interface {
	Starters(qid int) ([]types.Location, error)
	Enders(qid int) ([]types.Location, error)
	FlightMasters(mapID int) ([]types.Location, error)
}

// NoLocations is a NearestLocation without any data.
type NoLocations struct{}

func (NoLocations) Starters(int) ([]types.Location, error)      { return nil, nil }
func (NoLocations) Enders(int) ([]types.Location, error)        { return nil, nil }
func (NoLocations) FlightMasters(int) ([]types.Location, error) { return nil, nil }

// NoQuests is a QuestInfo that knows no quests.
type NoQuests struct{}

func (NoQuests) Quest(int) (types.QuestInfo, bool, error) { return types.QuestInfo{}, false, nil }

// Options selects which enrichments are applied.
type Options struct {
	Titles       bool
	Requirements bool
	Coords       bool
}

// AllOptions enables every enrichment.
var AllOptions = Options{Titles: true, Requirements: true, Coords: true}

// Enricher applies lookups to step records. Results are cached for the
// lifetime of the Enricher.
type Enricher struct {
	quests QuestInfo
	places NearestLocation
	opts   Options
	cache  *cache
}

// New creates an Enricher. Nil sources are replaced by empty ones.
func New(quests QuestInfo, places NearestLocation, opts Options) *Enricher {
	if quests == nil {
		quests = NoQuests{}
	}
	if places == nil {
		places = NoLocations{}
	}
	return &Enricher{
		quests: quests,
		places: places,
		opts:   opts,
		cache:  newCache(),
	}
}

// Enrich fills in missing data of one record. The returned diagnostics are
// informational; an error means a source failed.
func (e *Enricher) Enrich(rec *types.StepRecord, qid int, hasQID bool, g *state.Guide) ([]types.Diagnostic, error) {
	var diags []types.Diagnostic

	if hasQID && (e.opts.Titles || e.opts.Requirements) {
		info, ok, err := e.quest(qid)
		if err != nil {
			return diags, err
		}
		if ok {
			if e.opts.Titles {
				diags = append(diags, e.applyTitle(rec, info, g)...)
			}
			if e.opts.Requirements {
				applyRequirements(rec, info)
			}
		}
	}

	if e.opts.Coords && !state.HasTag(rec, "M") {
		if err := e.applyCoords(rec, qid, hasQID, g); err != nil {
			return diags, err
		}
	}
	return diags, nil
}

func (e *Enricher) applyTitle(rec *types.StepRecord, info types.QuestInfo, g *state.Guide) []types.Diagnostic {
	if info.Name == "" {
		return nil
	}
	if rec.Subject == "" {
		rec.Subject = info.Name
		return nil
	}
	switch rec.Action {
	case 'A', 'T', 't':
		if rec.Subject != info.Name {
			return []types.Diagnostic{{
				File:    g.File,
				Line:    g.Line,
				Kind:    types.KindNotice,
				Message: fmt.Sprintf("Subject '%s' differs from quest name '%s'", rec.Subject, info.Name),
			}}
		}
	}
	return nil
}

func applyRequirements(rec *types.StepRecord, info types.QuestInfo) {
	if !state.HasTag(rec, "R") {
		if races := RaceNames(info.Requirements.Races); races != "" {
			state.SetText(rec, "R", races)
		}
	}
	if !state.HasTag(rec, "C") {
		if classes := ClassNames(info.Requirements.Classes); classes != "" {
			state.SetText(rec, "C", classes)
		}
	}
}

// applyCoords looks up where a step takes place and sets M (and Z when the
// location lies in another zone).
func (e *Enricher) applyCoords(rec *types.StepRecord, qid int, hasQID bool, g *state.Guide) error {
	zone := state.EffectiveZone(rec, g)

	var (
		locs []types.Location
		err  error
	)
	switch {
	case rec.Action == 'A' && hasQID:
		locs, err = e.starters(qid)
	case (rec.Action == 'T' || rec.Action == 't') && hasQID:
		locs, err = e.enders(qid)
	case rec.Action == 'f':
		m, ok := coords.MapOfZone(zone)
		if !ok {
			return nil
		}
		locs, err = e.flightMasters(m)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	zc, ok := pick(locs, zone, g)
	if !ok {
		return nil
	}
	state.SetText(rec, "M", grammar.FormatCoord(zc.X, zc.Y))
	if zc.Zone != zone {
		state.SetText(rec, "Z", zc.Zone)
	}
	log.Debug("coordinates looked up", "subject", rec.Subject, "zone", zc.Zone, "x", zc.X, "y", zc.Y)
	return nil
}
