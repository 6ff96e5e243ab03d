package state

import "github.com/shururuun/TourGuide-Utils/types"

// NewRecord creates an empty step record.
func NewRecord(action byte, subject string) *types.StepRecord {
	return &types.StepRecord{
		Action:  action,
		Subject: subject,
		Tags:    map[string]types.TagValue{},
	}
}

// HasTag reports whether the record carries a tag.
func HasTag(r *types.StepRecord, code string) bool {
	_, ok := r.Tags[code]
	return ok
}

// TagText returns the text of a value tag, or "" if missing.
func TagText(r *types.StepRecord, code string) string {
	return r.Tags[code].Text
}

// SetTag sets or replaces a tag, keeping first-insertion order.
func SetTag(r *types.StepRecord, code string, v types.TagValue) {
	if _, ok := r.Tags[code]; !ok {
		r.Order = append(r.Order, code)
	}
	r.Tags[code] = v
}

// SetText is SetTag for value tags.
func SetText(r *types.StepRecord, code, text string) {
	SetTag(r, code, types.TagValue{Text: text})
}

// DeleteTag removes a tag from the record.
func DeleteTag(r *types.StepRecord, code string) {
	if _, ok := r.Tags[code]; !ok {
		return
	}
	delete(r.Tags, code)
	for i, c := range r.Order {
		if c == code {
			r.Order = append(r.Order[:i], r.Order[i+1:]...)
			break
		}
	}
}

// EffectiveZone returns the zone a step takes place in: its Z tag, or the
// guide's current zone.
func EffectiveZone(r *types.StepRecord, g *Guide) string {
	if z := TagText(r, "Z"); z != "" {
		return z
	}
	return g.CurrentZone
}
