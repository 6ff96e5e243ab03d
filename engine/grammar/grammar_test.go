package grammar

import (
	"strings"
	"testing"
)

func validate(t *testing.T, code, arg string) (string, bool, []string) {
	t.Helper()
	rule, ok := Lookup(code)
	if !ok {
		t.Fatalf("no rule for %s", code)
	}
	if rule.Flag {
		t.Fatalf("%s is a flag tag", code)
	}
	value, keep, diags := rule.Validate(arg)
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return value, keep, msgs
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		arg      string
		want     string
		keep     bool
		problems int
	}{
		{"qid ok", "QID", "783", "783", true, 0},
		{"qid wildcard", "QID", "*", "*", true, 1},
		{"qid text", "QID", "12a", "12a", true, 1},
		{"active negative", "ACTIVE", "-123", "-123", true, 0},
		{"active dash only", "ACTIVE", "-", "-", true, 1},
		{"lvl positive", "LVL", "12", "12", true, 0},
		{"lvl text", "LVL", "-x", "-x", true, 1},
		{"rank", "RANK", "2", "2", true, 0},
		{"rank text", "RANK", "two", "two", true, 1},
		{"use item trimmed", "U", " 6948 ", "6948", true, 0},
		{"available caret list", "AVAILABLE", "1^2^3", "1^2^3", true, 0},
		{"available amp list", "AVAILABLE", "1&2", "1&2", true, 0},
		{"available bad entry", "AVAILABLE", "1^x", "1^x", true, 1},
		{"available leading caret", "AVAILABLE", "^1", "^1", true, 1},
		{"pre semicolon list", "PRE", "10;11", "10;11", true, 0},
		{"pre plus list", "PRE", "10+11", "10+11", true, 0},
		{"pre semicolon wins", "PRE", "10;11+12", "10;11+12", true, 1},
		{"pre single", "PRE", "10", "10", true, 0},
		{"classes", "C", "mage, WARLOCK", "Mage,Warlock", true, 0},
		{"classes partial", "C", "mage,bard", "Mage", true, 1},
		{"classes none", "C", "bard", "", false, 2},
		{"races", "R", "human, -orc", "Human,-Orc", true, 0},
		{"races two words", "R", "night elf,BLOOD ELF", "Night Elf,Blood Elf", true, 0},
		{"races unknown", "R", "klingon", "", false, 2},
		{"coords", "M", "1.00,2.00;3.456,7", "1.00,2.00;3.46,7.00", true, 0},
		{"coords spaces", "M", " 12.3 , 45.6 ", "12.30,45.60", true, 0},
		{"coords malformed pair", "M", "1,2;abc;3,x", "1.00,2.00", true, 2},
		{"coords infinite", "M", "inf,1;2,3", "2.00,3.00", true, 1},
		{"coords nan only", "M", "NaN,1", "", false, 1},
		{"coords none", "M", "abc", "", false, 1},
		{"zone known", "Z", "Elwynn Forest", "Elwynn Forest", true, 0},
		{"zone unknown", "Z", "Nagrand", "Nagrand", true, 1},
		{"zone empty", "Z", "", "", false, 1},
		{"note", "N", "Kill the boar.", "Kill the boar.", true, 0},
		{"note empty", "N", "", "", false, 1},
		{"portal", "P", "Darnassus", "Darnassus", true, 0},
		{"portal empty", "P", "", "", false, 1},
		{"target empty", "T", "", "", false, 1},
		{"q copied", "Q", "x", "x", true, 1},
		{"q empty", "Q", "", "", false, 1},
		{"loot", "L", " 2589 10", "2589 10", true, 0},
		{"loot bad count", "L", "2589 ten", "2589 ten", true, 1},
		{"objectives", "QO", "1; 2 ;3", "1;2;3", true, 0},
		{"objectives text", "QO", "Kill 5 boars", "Kill 5 boars", true, 1},
		{"objectives empty", "QO", "", "", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep, msgs := validate(t, tt.code, tt.arg)
			if keep != tt.keep {
				t.Errorf("keep = %v, want %v", keep, tt.keep)
			}
			if got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
			if len(msgs) != tt.problems {
				t.Errorf("problems = %v, want %d", msgs, tt.problems)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"mage", "Mage"},
		{"WARLOCK", "Warlock"},
		{"élan", "Élan"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	_, _, msgs := validate(t, "C", "élan")
	if len(msgs) == 0 || msgs[0] != "Ignoring unknown C tag parameter 'Élan'" {
		t.Errorf("problems = %v", msgs)
	}
}

func TestRacesEmptyMessage(t *testing.T) {
	_, _, msgs := validate(t, "R", "klingon")
	if len(msgs) != 2 || !strings.Contains(msgs[1], "empty") {
		t.Errorf("messages = %v, want trailing empty error", msgs)
	}
}

func TestEmptyNoteHasNoFixme(t *testing.T) {
	rule, _ := Lookup("N")
	_, _, diags := rule.Validate("")
	if len(diags) != 1 || diags[0].Note {
		t.Errorf("diags = %+v, want one diagnostic without note", diags)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("qid"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := Lookup("XYZ"); ok {
		t.Error("XYZ should be unknown")
	}
	for _, code := range []string{"CS", "CC", "CN", "O", "S", "US", "NC", "NA"} {
		r, ok := Lookup(code)
		if !ok || !r.Flag {
			t.Errorf("%s should be a flag tag", code)
		}
	}
	if len(Codes()) != 25 {
		t.Errorf("Codes() = %v, want 25 codes", Codes())
	}
}

func TestFormatCoord(t *testing.T) {
	if got := FormatCoord(12.3, 45.678); got != "12.30,45.68" {
		t.Errorf("FormatCoord = %q", got)
	}
}
