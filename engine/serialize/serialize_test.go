package serialize

import (
	"testing"

	"github.com/shururuun/TourGuide-Utils/engine/parser"
	"github.com/shururuun/TourGuide-Utils/engine/state"
	"github.com/shururuun/TourGuide-Utils/types"
)

func TestLine_Order(t *testing.T) {
	r := state.NewRecord('A', "A Threat Within")
	state.SetText(r, "Z", "Elwynn Forest")
	state.SetTag(r, "O", types.TagValue{Flag: true})
	state.SetText(r, "QID", "783")
	state.SetText(r, "ZZ", "x")
	state.SetText(r, "M", "48.17,42.94")
	state.SetText(r, "AB", "y")
	r.Note = "Talk to Deputy Willem ."

	want := "A A Threat Within|QID|783|M|48.17,42.94|Z|Elwynn Forest|O|AB|y|ZZ|x|N|Talk to Deputy Willem.|"
	if got := Line(r); got != want {
		t.Errorf("Line() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestLine_NoteDot(t *testing.T) {
	tests := []struct {
		note string
		want string
	}{
		{"Go here.", "Go here."},
		{"Go here .", "Go here."},
		{"Go here   .", "Go here."},
		{".", "."},
	}
	for _, tt := range tests {
		r := state.NewRecord('R', "Goldshire")
		r.Note = tt.note
		if got := Line(r); got != "R Goldshire|N|"+tt.want+"|" {
			t.Errorf("note %q: Line() = %q", tt.note, got)
		}
	}
}

func TestLine_NoTags(t *testing.T) {
	r := state.NewRecord(';', "just a comment")
	if got := Line(r); got != "; just a comment|" {
		t.Errorf("Line() = %q", got)
	}
}

func TestLine_Idempotent(t *testing.T) {
	lines := []string{
		"A A Threat Within|N|Talk to Deputy Willem. (48.2, 42.9)|M|48.17,42.94|QID|783|",
		"C Kobold Camp Cleanup|S|QID|7|O|M|47,32;48.5,33|US|",
		"T Brotherhood of Thieves|R|human, -orc|C|mage,priest|QID|18|LVL|-2|",
		"K Defias|QO|1; 2|PRE|10+11|AVAILABLE|3^4|ACTIVE|5|RANK|2|U|6948|L|2589 10|",
		"R Goldshire|NC|NA|CN|CC|CS|Z|Elwynn Forest|P|Goldshire|T|Innkeeper Farley|",
		"R Goldshire|N|Go here  .|",
	}
	for _, line := range lines {
		g := state.NewGuide()
		g.SetZone("Elwynn Forest")
		first := parser.Parse(line, g, nil)
		if first.Record == nil {
			t.Fatalf("%q did not parse", line)
		}
		once := Line(first.Record)

		g2 := state.NewGuide()
		g2.SetZone("Elwynn Forest")
		second := parser.Parse(once, g2, nil)
		if second.Record == nil {
			t.Fatalf("%q did not parse", once)
		}
		twice := Line(second.Record)
		if once != twice {
			t.Errorf("not idempotent:\n  %s\n  %s", once, twice)
		}
	}
}

func TestLine_CanonicalExample(t *testing.T) {
	g := state.NewGuide()
	g.SetZone("Elwynn Forest")
	s := parser.Parse("T Brotherhood of Thieves|R|human, -orc|C|mage,priest|QID|18|LVL|-2|", g, nil)
	want := "T Brotherhood of Thieves|QID|18|C|Mage,Priest|R|Human,-Orc|LVL|-2|"
	if got := Line(s.Record); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}
