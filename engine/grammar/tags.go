package grammar

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shururuun/TourGuide-Utils/engine/coords"
	"github.com/shururuun/TourGuide-Utils/types"
)

// Classes is the set of valid C tag entries.
var Classes = map[string]bool{
	"Druid":   true,
	"Hunter":  true,
	"Mage":    true,
	"Paladin": true,
	"Priest":  true,
	"Rogue":   true,
	"Shaman":  true,
	"Warlock": true,
	"Warrior": true,
}

// Races is the set of valid R tag entries.
var Races = map[string]bool{
	"Blood Elf": true,
	"Draenei":   true,
	"Dwarf":     true,
	"Gnome":     true,
	"Human":     true,
	"Night Elf": true,
	"Orc":       true,
	"Tauren":    true,
	"Troll":     true,
	"Undead":    true,
}

func validateQID(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	if !isDigits(arg) || arg == "*" {
		p.add("QID tag expects quest id numbers: '%s'", arg)
	}
	return arg, true, p
}

func validateRank(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	if !isDigits(arg) {
		p.add("RANK tag expects a number: '%s'", arg)
	}
	return arg, true, p
}

func validateItem(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	arg = strings.TrimSpace(arg)
	if !isDigits(arg) {
		p.add("U tag requires item id number: '%s'", arg)
	}
	return arg, true, p
}

// signedNumber builds a validator for tags holding an optionally negated number.
func signedNumber(code, what string) ValidateFunc {
	return func(arg string) (string, bool, []types.Diagnostic) {
		var p problems
		if !isSignedDigits(arg) {
			p.add("%s tag expects %s: '%s'", code, what, arg)
		}
		return arg, true, p
	}
}

// idList builds a validator for quest id lists. The first separator found
// past the first character decides how the list is split. The value is passed
// through unchanged even when an entry is not numeric.
func idList(code string, seps ...string) ValidateFunc {
	return func(arg string) (string, bool, []types.Diagnostic) {
		var p problems
		var entries []string
		for _, sep := range seps {
			if strings.Index(arg, sep) > 0 {
				entries = strings.Split(arg, sep)
				break
			}
		}
		if entries == nil {
			if !isDigits(arg) {
				p.add("%s tag expects quest id numbers: '%s'", code, arg)
			}
			return arg, true, p
		}
		for _, e := range entries {
			if !isDigits(e) {
				p.add("%s tag expects quest id numbers: '%s'", code, e)
				break
			}
		}
		return arg, true, p
	}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}

func validateClasses(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	var out []string
	for _, entry := range splitTrimmed(arg, ",") {
		entry = capitalize(entry)
		if Classes[entry] {
			out = append(out, entry)
		} else {
			p.add("Ignoring unknown C tag parameter '%s'", entry)
		}
	}
	if len(out) == 0 {
		p.add("Resulting C tag empty")
		return "", false, p
	}
	return strings.Join(out, ","), true, p
}

func validateRaces(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	var out []string
	title := cases.Title(language.English)
	for _, entry := range splitTrimmed(arg, ",") {
		negate := ""
		if strings.HasPrefix(entry, "-") {
			negate = "-"
			entry = entry[1:]
		}
		entry = title.String(entry)
		if Races[entry] {
			out = append(out, negate+entry)
		} else {
			p.add("Ignoring unknown R tag parameter '%s'", entry)
		}
	}
	if len(out) == 0 {
		p.add("Resulting R tag empty")
		return "", false, p
	}
	return strings.Join(out, ","), true, p
}

// FormatCoord renders a coordinate pair the way M tags carry it.
func FormatCoord(x, y float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64) + "," + strconv.FormatFloat(y, 'f', 2, 64)
}

func validateCoords(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	var out []string
	for _, entry := range splitTrimmed(arg, ";") {
		xs, ys, found := strings.Cut(entry, ",")
		if !found {
			p.add("Malformed M entry '%s'", entry)
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX != nil || errY != nil || !finite(x) || !finite(y) {
			p.add("Malformed M entry '%s'", entry)
			continue
		}
		out = append(out, FormatCoord(x, y))
	}
	if len(out) == 0 {
		return "", false, p
	}
	return strings.Join(out, ";"), true, p
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func validateZone(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	if arg == "" {
		p.add("Empty Z tag")
		return "", false, p
	}
	if !coords.KnownZone(arg) {
		p.add("Zone '%s' not in list of valid zones", arg)
	}
	return arg, true, p
}

func validateNote(arg string) (string, bool, []types.Diagnostic) {
	if arg == "" {
		// Reported, but no FIXME line: the step itself reads fine without a note.
		return "", false, []types.Diagnostic{{Kind: types.KindTag, Message: "Empty N tag"}}
	}
	return arg, true, nil
}

// nonEmpty builds a validator for free-text tags that must carry a value.
func nonEmpty(msg string) ValidateFunc {
	return func(arg string) (string, bool, []types.Diagnostic) {
		var p problems
		if arg == "" {
			p.add("%s", msg)
			return "", false, p
		}
		return arg, true, nil
	}
}

func validateQ(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	if arg == "" {
		p.add("Empty Q tag")
		return "", false, p
	}
	p.add("Tag Q unsupported but copied")
	return arg, true, p
}

func validateLoot(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	parts := strings.SplitN(strings.TrimSpace(arg), " ", 2)
	for _, e := range parts {
		if !isDigits(e) {
			p.add("L tag requires item id number: '%s'", e)
		}
	}
	return strings.Join(parts, " "), true, p
}

func validateObjectives(arg string) (string, bool, []types.Diagnostic) {
	var p problems
	if arg == "" {
		p.add("Empty QO tag")
		return "", false, p
	}
	entries := splitTrimmed(arg, ";")
	for _, e := range entries {
		if !isDigits(e) {
			p.add("Convert QO tag '%s' to number", arg)
			break
		}
	}
	return strings.Join(entries, ";"), true, p
}
