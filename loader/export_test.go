package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shururuun/TourGuide-Utils/types"
)

func TestWriteLua(t *testing.T) {
	quests := []types.QuestInfo{
		{ID: 109, Name: "Report to Gryan Stoutmantle", SortArea: 40, Levels: types.Levels{Quest: 10}, Links: types.Links{Prev: 5}},
		{ID: 7, Name: "Kobold Camp Cleanup", SortArea: 12, Levels: types.Levels{Quest: 4, Min: 2}},
		{ID: 18, Name: `The "Brotherhood"`, SortArea: 12, Levels: types.Levels{Quest: 4}, Requirements: types.Requirements{Races: 77}},
	}
	zones := map[int]string{12: "Elwynn Forest", 40: "Westfall"}

	var b strings.Builder
	if err := WriteLua(&b, quests, func(q types.QuestInfo) string { return zones[q.SortArea] }); err != nil {
		t.Fatalf("WriteLua: %v", err)
	}
	out := b.String()

	want := "Header \"Elwynn Forest\" {\n" +
		"    [7] = { title = \"Kobold Camp Cleanup\", lvl = 4, min = 2, sort = 12 },\n" +
		"    [18] = { title = \"The \\\"Brotherhood\\\"\", lvl = 4, sort = 12, races = 77 },\n" +
		"}\n"
	if !strings.Contains(out, want) {
		t.Errorf("output missing Elwynn block:\n%s", out)
	}
	if strings.Index(out, "Elwynn") > strings.Index(out, "Westfall") {
		t.Error("headers should be written in name order")
	}

	path := filepath.Join(t.TempDir(), "questdb.lua")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}
	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written database: %v", err)
	}
	if db.Len() != 3 {
		t.Errorf("Len() = %d, want 3", db.Len())
	}
	info, ok, _ := db.Quest(18)
	if !ok || info.Name != `The "Brotherhood"` || info.Requirements.Races != 77 {
		t.Errorf("Quest(18) = %+v, %v", info, ok)
	}
	if e, _ := db.Entry(109); e.Header != "Westfall" {
		t.Errorf("Entry(109).Header = %q", e.Header)
	}
}

func TestLuaQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`a\b`, `"a\\b"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\009here"`},
	}
	for _, tt := range tests {
		if got := luaQuote(tt.in); got != tt.want {
			t.Errorf("luaQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
