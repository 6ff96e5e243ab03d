// Package state holds the mutable guide state threaded through the filter
// and the accessors for step records.
package state

import (
	"fmt"

	"github.com/shururuun/TourGuide-Utils/types"
)

// Guide is the processing context of one filter run. It is created once and
// never reset between input files.
type Guide struct {
	StartZone   string
	CurrentZone string
	Started     map[int]bool
	Completed   map[int]bool
	InsideBlock bool

	File string
	Line int

	// Header lines collected before the first guide block.
	Header        []string
	FirstHeader   bool
	LastLineEmpty bool

	// Last known world position, used to order location lookups.
	Position    types.WorldPosition
	HasPosition bool
}

// NewGuide creates a fresh guide state.
func NewGuide() *Guide {
	return &Guide{
		Started:     map[int]bool{},
		Completed:   map[int]bool{},
		FirstHeader: true,
	}
}

// SetZone records a zone declared by a guide registration. The first zone
// becomes the start zone. It reports whether this was the start zone.
func (g *Guide) SetZone(zone string) bool {
	g.CurrentZone = zone
	if g.StartZone == "" {
		g.StartZone = zone
		return true
	}
	return false
}

// ZoneChanged reports whether the current zone differs from the start zone.
func (g *Guide) ZoneChanged() bool {
	return g.CurrentZone != g.StartZone
}

// Start marks a quest as started. Starting a quest twice is an error.
func (g *Guide) Start(qid int) error {
	if g.Started[qid] {
		return fmt.Errorf("QID %d already started in guide", qid)
	}
	g.Started[qid] = true
	return nil
}

// Complete marks a quest as completed. Completing a quest twice is an error.
func (g *Guide) Complete(qid int) error {
	if g.Completed[qid] {
		return fmt.Errorf("QID %d already completed in guide", qid)
	}
	g.Completed[qid] = true
	return nil
}

// Handled reports whether a quest was started or completed anywhere.
func (g *Guide) Handled(qid int) bool {
	return g.Started[qid] || g.Completed[qid]
}

// BeginFile resets the per-file position. Quest sets and zones persist.
func (g *Guide) BeginFile(name string) {
	g.File = name
	g.Line = 0
	g.InsideBlock = false
}

// MoveTo records the last known world position.
func (g *Guide) MoveTo(pos types.WorldPosition) {
	g.Position = pos
	g.HasPosition = true
}
