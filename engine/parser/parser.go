// Package parser converts guide step lines into step records.
// Tag arguments are checked by the grammar package; the parser adds the
// cross-tag adjustments and the quest bookkeeping.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shururuun/TourGuide-Utils/engine/grammar"
	"github.com/shururuun/TourGuide-Utils/engine/state"
	"github.com/shururuun/TourGuide-Utils/types"
)

// Actions maps every recognized action code to its meaning.
var Actions = map[byte]string{
	'A': "Accept",
	'C': "Complete",
	'T': "Turn in",
	't': "Turn in when complete",
	'K': "Kill",
	'R': "Run to",
	'H': "Hearth to",
	'h': "Set hearth to",
	'F': "Fly to",
	'f': "Get flight path for",
	'M': "Make",
	'N': "Note",
	'B': "Buy",
	'b': "Take Boat or Zeppelin",
	'U': "Use",
	'L': "Level",
	'l': "Loot",
	'r': "Repair/Restock",
	'D': "Done",
	'J': "Jump",
	'P': "Take portal",
	'!': "Declare",
	'$': "Treasure",
	'=': "Train",
	';': "Comment",
}

// noteCoords finds "(x, y)" coordinates inside a step note.
var noteCoords = regexp.MustCompile(`\(\s*(\d+|\d+\.\d+)\s*,\s*(\d+|\d+\.\d+)\s*\)`)

// QuestIndex reports whether a quest id exists in the quest database.
type QuestIndex interface {
	Known(qid int) bool
}

// Step is the outcome of parsing one line inside a guide block.
type Step struct {
	Record *types.StepRecord // nil for blank or rejected lines
	Blank  bool
	QID    int
	HasQID bool
	Diags  []types.Diagnostic
}

// stepParser carries the per-line context.
type stepParser struct {
	guide  *state.Guide
	quests QuestIndex
	step   Step
}

func (p *stepParser) report(kind types.DiagnosticKind, note bool, format string, args ...any) {
	p.step.Diags = append(p.step.Diags, types.Diagnostic{
		File:    p.guide.File,
		Line:    p.guide.Line,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Note:    note,
	})
}

// attach adds validator diagnostics with the current position.
func (p *stepParser) attach(diags []types.Diagnostic) {
	for _, d := range diags {
		d.File = p.guide.File
		d.Line = p.guide.Line
		p.step.Diags = append(p.step.Diags, d)
	}
}

// Parse parses a step line and applies the post-parse adjustments against
// the guide state. quests may be nil, which skips the known-quest check.
func Parse(line string, g *state.Guide, quests QuestIndex) Step {
	p := &stepParser{guide: g, quests: quests}

	fields := strings.Split(line, "|")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	if len(fields) == 1 && fields[0] == "" {
		g.LastLineEmpty = true
		return Step{Blank: true}
	}

	head := fields[0]
	if head == "" {
		p.report(types.KindStructural, true, "Not a valid action: '%s'", head)
		return p.step
	}
	if _, ok := Actions[head[0]]; !ok {
		p.report(types.KindStructural, true, "Not a valid action: '%s'", head[:1])
		return p.step
	}
	if len(head) < 2 || head[1] != ' ' {
		p.report(types.KindStructural, true, "Line seems malformed: '%s'", head)
		return p.step
	}
	g.LastLineEmpty = false

	rec := state.NewRecord(head[0], head[2:])
	p.parseTags(rec, fields[1:])

	p.injectZone(rec)
	p.checkQID(rec)
	p.mergeNoteCoords(rec)
	p.track(rec)

	p.step.Record = rec
	return p.step
}

// parseTags walks the tag/value fields of a step.
func (p *stepParser) parseTags(rec *types.StepRecord, fields []string) {
	for i := 0; i < len(fields); i++ {
		code := fields[i]
		if code == "" {
			continue
		}

		rule, ok := grammar.Lookup(code)
		if !ok {
			p.report(types.KindTag, true, "Unknown tag '%s'", code)
			continue
		}

		var value types.TagValue
		if rule.Flag {
			value = types.TagValue{Flag: true}
		} else {
			if i+1 >= len(fields) {
				p.report(types.KindTag, true, "Tag '%s' expects a parameter", code)
				continue
			}
			i++
			text, keep, diags := rule.Validate(fields[i])
			p.attach(diags)
			if !keep {
				continue
			}
			value = types.TagValue{Text: text}
		}

		if state.HasTag(rec, rule.Code) || (rule.Code == "N" && rec.Note != "") {
			p.report(types.KindSemantic, true, "Tag '%s' defined more than once", rule.Code)
			continue
		}
		if rule.Code == "N" {
			rec.Note = value.Text
			continue
		}
		state.SetTag(rec, rule.Code, value)
	}
}

// injectZone tags steps that follow a zone change without an explicit zone.
func (p *stepParser) injectZone(rec *types.StepRecord) {
	if !state.HasTag(rec, "Z") && p.guide.ZoneChanged() {
		state.SetText(rec, "Z", p.guide.CurrentZone)
	}
}

// checkQID parses the QID tag and checks it against the quest database.
func (p *stepParser) checkQID(rec *types.StepRecord) {
	if !state.HasTag(rec, "QID") {
		return
	}
	raw := state.TagText(rec, "QID")
	qid, err := strconv.Atoi(raw)
	if err != nil {
		p.report(types.KindSemantic, true, "QID '%s' could not be parsed", raw)
		return
	}
	p.step.QID = qid
	p.step.HasQID = true
	if p.quests != nil && !p.quests.Known(qid) {
		p.report(types.KindSemantic, true, "QID '%s' not found in list of valid QIDs", raw)
	}
}

// mergeNoteCoords moves "(x, y)" coordinates found in the note into the M
// tag. An explicit M tag is never overwritten.
func (p *stepParser) mergeNoteCoords(rec *types.StepRecord) {
	if rec.Note == "" {
		return
	}
	m := noteCoords.FindStringSubmatch(rec.Note)
	if m == nil {
		return
	}
	x, errX := strconv.ParseFloat(m[1], 64)
	y, errY := strconv.ParseFloat(m[2], 64)
	if errX != nil || errY != nil {
		return
	}
	found := grammar.FormatCoord(x, y)
	if state.HasTag(rec, "M") && state.TagText(rec, "M") != found {
		p.report(types.KindSemantic, true, "Differing Coords found in N tag: %s", found)
		return
	}
	state.SetText(rec, "M", found)
	p.report(types.KindNotice, true, "Coords found in N tag, using: %s", found)
}

// track records accepted and turned in quests in the guide state.
func (p *stepParser) track(rec *types.StepRecord) {
	if !p.step.HasQID {
		return
	}
	var err error
	switch rec.Action {
	case 'A':
		err = p.guide.Start(p.step.QID)
	case 'T', 't':
		err = p.guide.Complete(p.step.QID)
	}
	if err != nil {
		p.report(types.KindSemantic, true, "%s", err.Error())
	}
}
