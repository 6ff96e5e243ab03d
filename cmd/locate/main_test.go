package main

import (
	"strings"
	"testing"

	"github.com/shururuun/TourGuide-Utils/types"
)

func TestPrintLocation(t *testing.T) {
	guard := types.Location{Entry: 68, Name: "Stormwind City Guard", Map: 0, X: -8727.028, Y: 708.835815}
	grunt := types.Location{Entry: 3296, Name: "Orgrimmar Grunt", Map: 1, X: 0, Y: 0}

	tests := []struct {
		name  string
		loc   types.Location
		zone  string
		want  []string
		lines int
	}{
		{"natural zone", grunt, "", []string{" 3296 Orgrimmar Grunt", "|M|25.88,23.87|Z|The Barrens|"}, 1},
		{"requested zone differs", guard, "Elwynn Forest", []string{"|Z|Stormwind City|", "|M|23.82,34.02|Z|Elwynn Forest|"}, 2},
		{"requested zone does not contain", grunt, "Durotar", []string{"|Z|The Barrens|"}, 1},
		{"outside", types.Location{Entry: 1, Name: "Nobody", Map: 530}, "", []string{"outside any zone"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			printLocation(&b, tt.loc, tt.zone)
			out := b.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			if n := strings.Count(out, "\n"); n != tt.lines {
				t.Errorf("got %d lines, want %d:\n%s", n, tt.lines, out)
			}
		})
	}
}
