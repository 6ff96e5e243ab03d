// Package engine provides the Filter that wires together parsing,
// enrichment, and serialization into a single pass over guide files.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/shururuun/TourGuide-Utils/engine/coords"
	"github.com/shururuun/TourGuide-Utils/engine/enrich"
	"github.com/shururuun/TourGuide-Utils/engine/parser"
	"github.com/shururuun/TourGuide-Utils/engine/serialize"
	"github.com/shururuun/TourGuide-Utils/engine/state"
	"github.com/shururuun/TourGuide-Utils/internal/log"
	"github.com/shururuun/TourGuide-Utils/types"
)

const (
	registerGuide  = "WoWPro:RegisterGuide("
	registerLegacy = "WoWPro_Leveling:RegisterGuide("
)

// Options configures a Filter. Every field is optional.
type Options struct {
	Quests   parser.QuestIndex
	Enricher *enrich.Enricher

	// Report receives every diagnostic. The default writes "file:line: msg"
	// to the error writer.
	Report func(types.Diagnostic)
}

// Filter holds the guide state of one run and its output streams.
type Filter struct {
	Guide  *state.Guide
	Diags  []types.Diagnostic
	Counts map[types.DiagnosticKind]int

	out      io.Writer
	errOut   io.Writer
	quests   parser.QuestIndex
	enricher *enrich.Enricher
	report   func(types.Diagnostic)
}

// New creates a filter writing the rewritten guide to out and messages to
// errOut.
func New(out, errOut io.Writer, opts Options) *Filter {
	f := &Filter{
		Guide:    state.NewGuide(),
		Counts:   map[types.DiagnosticKind]int{},
		out:      out,
		errOut:   errOut,
		quests:   opts.Quests,
		enricher: opts.Enricher,
		report:   opts.Report,
	}
	if f.report == nil {
		f.report = func(d types.Diagnostic) {
			fmt.Fprintln(f.errOut, FormatDiagnostic(d))
		}
	}
	return f
}

// FormatDiagnostic renders a diagnostic the way it appears on stderr.
func FormatDiagnostic(d types.Diagnostic) string {
	if d.File == "" {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
}

// Run filters one input. Quest sets and zones carry over between inputs;
// an unterminated block ends with its input.
func (f *Filter) Run(name string, r io.Reader) error {
	f.Guide.BeginFile(name)
	fmt.Fprintf(f.errOut, "--- %s ---\n", name)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := f.ProcessLine(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	f.Guide.InsideBlock = false
	return nil
}

// ProcessLine handles one raw input line. Only failures of the enrichment
// sources are returned as errors.
func (f *Filter) ProcessLine(raw string) error {
	g := f.Guide
	g.Line++
	line := strings.TrimRightFunc(raw, unicode.IsSpace)

	switch {
	case !g.InsideBlock && isBlockStart(line):
		f.startBlock(line)
	case strings.HasPrefix(line, "]]"):
		g.InsideBlock = false
	case g.InsideBlock:
		return f.step(line)
	default:
		g.Header = append(g.Header, line)
		f.register(line)
	}
	return nil
}

func isBlockStart(line string) bool {
	return (strings.HasPrefix(line, "WoWPro:GuideSteps") || strings.HasPrefix(line, "return")) &&
		strings.HasSuffix(line, "[[")
}

// startBlock emits the header of the first guide, or a separator before
// every later one.
func (f *Filter) startBlock(marker string) {
	g := f.Guide
	g.InsideBlock = true
	if g.FirstHeader {
		g.FirstHeader = false
		g.Header = append(g.Header, marker)
		for _, h := range g.Header {
			fmt.Fprintln(f.out, h)
		}
	} else if !g.LastLineEmpty {
		fmt.Fprintln(f.out)
	}
	if g.File != "" {
		fmt.Fprintf(f.out, "; === %s ===\n", g.File)
	}
}

// register picks up the zone of a guide registration call.
func (f *Filter) register(line string) {
	right := strings.Index(line, ")")

	if left := strings.Index(line, registerGuide); left > 0 && left < right {
		f.setZone(line, line[left+len(registerGuide):right], 2)
	}
	if left := strings.Index(line, registerLegacy); left >= 0 && left < right {
		f.setZone(line, line[left+len(registerLegacy):right], 1)
	}
}

func (f *Filter) setZone(line, args string, pos int) {
	parts := strings.Split(args, ",")
	zone := ""
	if len(parts) > pos {
		zone = unquote(strings.TrimSpace(parts[pos]))
	}
	if zone == "" {
		f.emit(types.Diagnostic{
			File:    f.Guide.File,
			Line:    f.Guide.Line,
			Kind:    types.KindStructural,
			Message: fmt.Sprintf("Could not get zone info: '%s'", line),
		})
		return
	}

	if f.Guide.SetZone(zone) {
		fmt.Fprintf(f.errOut, "Zone Start: %s\n", zone)
		log.Debug("start zone", "zone", zone, "file", f.Guide.File)
	} else {
		fmt.Fprintf(f.errOut, "Zone Change: %s\n", zone)
		log.Debug("zone change", "zone", zone, "file", f.Guide.File)
	}
	if !coords.KnownZone(zone) {
		log.Warn("guide registered for unknown zone", "zone", zone)
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// step parses, enriches and emits one guide step.
func (f *Filter) step(line string) error {
	s := parser.Parse(line, f.Guide, f.quests)
	if s.Blank {
		fmt.Fprintln(f.out)
		return nil
	}
	f.emitAll(s.Diags)
	if s.Record == nil {
		return nil
	}

	if f.enricher != nil {
		diags, err := f.enricher.Enrich(s.Record, s.QID, s.HasQID, f.Guide)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", f.Guide.File, f.Guide.Line, err)
		}
		f.emitAll(diags)
	}

	f.track(s.Record)
	fmt.Fprintln(f.out, serialize.Line(s.Record))
	return nil
}

// track moves the last known position to the first M coordinate of a step.
func (f *Filter) track(rec *types.StepRecord) {
	m := state.TagText(rec, "M")
	if m == "" {
		return
	}
	first, _, _ := strings.Cut(m, ";")
	xs, ys, ok := strings.Cut(first, ",")
	if !ok {
		return
	}
	x, errX := strconv.ParseFloat(xs, 64)
	y, errY := strconv.ParseFloat(ys, 64)
	if errX != nil || errY != nil {
		return
	}
	pos, ok := coords.ToWorld(types.ZoneCoordinate{X: x, Y: y, Zone: state.EffectiveZone(rec, f.Guide)})
	if ok {
		f.Guide.MoveTo(pos)
	}
}

func (f *Filter) emitAll(diags []types.Diagnostic) {
	for _, d := range diags {
		f.emit(d)
	}
}

// emit records a diagnostic and writes its FIXME comment into the guide.
func (f *Filter) emit(d types.Diagnostic) {
	f.Diags = append(f.Diags, d)
	f.Counts[d.Kind]++
	f.report(d)
	if d.Note {
		fmt.Fprintf(f.out, "; --- FIXME: %s\n", d.Message)
	}
}

// Finish closes the guide when any block was emitted and prints the quest
// summary.
func (f *Filter) Finish() {
	if !f.Guide.FirstHeader {
		fmt.Fprintln(f.out, "]]")
		fmt.Fprintln(f.out, "end)")
	}
	fmt.Fprintf(f.errOut, "%d quests started, %d quests completed\n",
		len(f.Guide.Started), len(f.Guide.Completed))
}

// Unhandled returns the quests that were neither started nor completed, by
// ascending id.
func (f *Filter) Unhandled(quests []types.QuestEntry) []types.QuestEntry {
	var out []types.QuestEntry
	for _, q := range quests {
		if !f.Guide.Handled(q.ID) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// WriteUnhandled prints the unhandled quest check of a quest database
// header.
func WriteUnhandled(w io.Writer, header string, quests []types.QuestEntry) {
	if len(quests) == 0 {
		fmt.Fprintf(w, "No unhandled quests for zone/header '%s'\n", header)
		return
	}
	fmt.Fprintf(w, "Unhandled quests for zone/header '%s':\n", header)
	for _, q := range quests {
		fmt.Fprintf(w, "%5d [%2d] %s\n", q.ID, q.Level, q.Title)
	}
}
