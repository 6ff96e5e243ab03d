// Package serialize renders step records back into the guide line format
// with a deterministic tag order.
package serialize

import (
	"sort"
	"strings"

	"github.com/shururuun/TourGuide-Utils/types"
)

// Priority is the order in which known tags are emitted. Tags not listed
// follow in lexicographic order; the note always comes last.
var Priority = []string{
	"QID", "ACTIVE", "AVAILABLE", "PRE", "C", "R", "LVL", "P",
	"QO", "QG", "T", "L", "U", "RANK",
	"M", "Z", "CS", "CC", "CN",
	"O", "S", "US", "NC", "NA",
}

var priorityIndex = func() map[string]int {
	idx := make(map[string]int, len(Priority))
	for i, code := range Priority {
		idx[code] = i
	}
	return idx
}()

// Tokens returns the ordered field list of a record, starting with the
// action and subject.
func Tokens(r *types.StepRecord) []string {
	tokens := []string{string(r.Action) + " " + r.Subject}

	for _, code := range Priority {
		if v, ok := r.Tags[code]; ok {
			tokens = appendTag(tokens, code, v)
		}
	}

	var rest []string
	for code := range r.Tags {
		if _, ok := priorityIndex[code]; !ok && code != "N" {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)
	for _, code := range rest {
		tokens = appendTag(tokens, code, r.Tags[code])
	}

	if r.Note != "" {
		note := r.Note
		if strings.HasSuffix(note, " .") {
			note = strings.TrimRight(note[:len(note)-1], " ") + "."
		}
		tokens = append(tokens, "N", note)
	}
	return tokens
}

func appendTag(tokens []string, code string, v types.TagValue) []string {
	tokens = append(tokens, code)
	if !v.Flag {
		tokens = append(tokens, v.Text)
	}
	return tokens
}

// Line renders a record as a guide line with its trailing separator.
func Line(r *types.StepRecord) string {
	return strings.Join(Tokens(r), "|") + "|"
}
