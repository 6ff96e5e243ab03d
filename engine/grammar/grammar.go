// Package grammar holds the per-tag validators of the guide step format.
// Every validator is a pure function from the raw tag argument to its
// normalized value plus the problems found on the way.
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shururuun/TourGuide-Utils/types"
)

// ValidateFunc normalizes a raw tag argument. ok is false when the tag must
// be dropped from the record.
type ValidateFunc func(arg string) (value string, ok bool, diags []types.Diagnostic)

// Rule describes one known tag code.
type Rule struct {
	Code     string
	Flag     bool // presence-only tag, consumes no argument
	Validate ValidateFunc
}

var rules = map[string]Rule{}

func register(code string, fn ValidateFunc) {
	rules[code] = Rule{Code: code, Validate: fn}
}

func registerFlag(code string) {
	rules[code] = Rule{Code: code, Flag: true}
}

func init() {
	register("QID", validateQID)
	register("ACTIVE", signedNumber("ACTIVE", "a quest id number"))
	register("LVL", signedNumber("LVL", "a number"))
	register("RANK", validateRank)
	register("U", validateItem)
	register("AVAILABLE", idList("AVAILABLE", "^", "&"))
	register("PRE", idList("PRE", ";", "+"))
	register("C", validateClasses)
	register("R", validateRaces)
	register("M", validateCoords)
	register("Z", validateZone)
	register("N", validateNote)
	register("P", nonEmpty("Empty P tag"))
	register("T", nonEmpty("Empty T tag removed, check"))
	register("Q", validateQ)
	register("L", validateLoot)
	register("QO", validateObjectives)

	for _, code := range []string{"CS", "CC", "CN", "O", "S", "US", "NC", "NA"} {
		registerFlag(code)
	}
}

// Lookup returns the rule for a tag code. Codes are case-insensitive.
func Lookup(code string) (Rule, bool) {
	r, ok := rules[strings.ToUpper(code)]
	return r, ok
}

// Codes returns all registered tag codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(rules))
	for code := range rules {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// problems accumulates diagnostics for a single validator call.
type problems []types.Diagnostic

func (p *problems) add(format string, args ...any) {
	*p = append(*p, types.Diagnostic{
		Kind:    types.KindTag,
		Message: fmt.Sprintf(format, args...),
		Note:    true,
	})
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isSignedDigits accepts an optional leading '-' followed by digits.
func isSignedDigits(s string) bool {
	if len(s) > 1 && s[0] == '-' {
		return isDigits(s[1:])
	}
	return isDigits(s)
}

// splitTrimmed splits s on sep and trims every element.
func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
