// Package report implements the JSON run report of a filter run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shururuun/TourGuide-Utils/engine/state"
	"github.com/shururuun/TourGuide-Utils/types"
)

// Version is the report format version.
const Version = "1"

// Entry is one diagnostic in the report.
type Entry struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Fixme   bool   `json:"fixme"`
}

// Report is the JSON-serializable summary of a run.
type Report struct {
	Version     string         `json:"version"`
	StartZone   string         `json:"start_zone"`
	LastZone    string         `json:"last_zone"`
	Started     []int          `json:"started"`
	Completed   []int          `json:"completed"`
	Counts      map[string]int `json:"counts"`
	Diagnostics []Entry        `json:"diagnostics"`
}

// Build collects the report data of a finished run.
func Build(g *state.Guide, counts map[types.DiagnosticKind]int, diags []types.Diagnostic) *Report {
	r := &Report{
		Version:     Version,
		StartZone:   g.StartZone,
		LastZone:    g.CurrentZone,
		Started:     sortedIDs(g.Started),
		Completed:   sortedIDs(g.Completed),
		Counts:      map[string]int{},
		Diagnostics: []Entry{},
	}
	for kind, n := range counts {
		r.Counts[string(kind)] = n
	}
	for _, d := range diags {
		r.Diagnostics = append(r.Diagnostics, Entry{
			File:    d.File,
			Line:    d.Line,
			Kind:    string(d.Kind),
			Message: d.Message,
			Fixme:   d.Note,
		})
	}
	return r
}

func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Marshal serializes a report to indented JSON bytes.
func Marshal(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Report.
func Unmarshal(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	// Ensure collections are never nil after load.
	if r.Started == nil {
		r.Started = []int{}
	}
	if r.Completed == nil {
		r.Completed = []int{}
	}
	if r.Counts == nil {
		r.Counts = map[string]int{}
	}
	if r.Diagnostics == nil {
		r.Diagnostics = []Entry{}
	}
	return &r, nil
}

// WriteFile writes the report to path.
func WriteFile(path string, r *Report) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
