package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shururuun/TourGuide-Utils/loader"
)

const elwynnGuide = `local guide = WoWPro:RegisterGuide('TG', 'Leveling', 'Elwynn Forest', 'Alliance')
WoWPro:GuideSteps(guide, function()
return [[
A A Threat Within|QID|783|
T A Threat Within|QID|783|
A Kobold Camp Cleanup|QID|7|
A Bogus|QID|4242|
]]
end)
`

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := &CLI{
		In:  strings.NewReader(input),
		Out: &out,
		Err: &errOut,
	}
	return c, &out, &errOut
}

func testQuests(t *testing.T) *loader.QuestDB {
	t.Helper()
	db, err := loader.Load("../loader/testdata/questdb.lua")
	if err != nil {
		t.Fatalf("loading quest database: %v", err)
	}
	return db
}

func TestRun_Stdin(t *testing.T) {
	c, out, errOut := newTestCLI(t, elwynnGuide)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "; === <stdin> ===\n") {
		t.Errorf("stdout missing banner:\n%s", out.String())
	}
	if !strings.HasSuffix(out.String(), "]]\nend)\n") {
		t.Errorf("stdout missing trailer:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "3 quests started, 1 quests completed") {
		t.Errorf("stderr = %s", errOut.String())
	}
	if c.Filter == nil {
		t.Error("Filter not kept after Run")
	}
}

func TestRun_QuestChecks(t *testing.T) {
	c, out, errOut := newTestCLI(t, elwynnGuide)
	c.Quests = testQuests(t)
	c.Header = "Elwynn Forest"
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "; --- FIXME: QID '4242' not found in list of valid QIDs\nA Bogus|QID|4242|") {
		t.Errorf("stdout =\n%s", out.String())
	}
	stderr := errOut.String()
	if !strings.Contains(stderr, "<stdin>:7: QID '4242' not found") {
		t.Errorf("stderr missing diagnostic:\n%s", stderr)
	}
	want := "Unhandled quests for zone/header 'Elwynn Forest':\n" +
		"    5 [10] Jasperlode Mine\n" +
		"   18 [ 4] Brotherhood of Thieves\n"
	if !strings.HasSuffix(stderr, want) {
		t.Errorf("stderr =\n%s\nwant suffix\n%s", stderr, want)
	}
}

func TestRun_UnknownHeader(t *testing.T) {
	c, _, errOut := newTestCLI(t, elwynnGuide)
	c.Quests = testQuests(t)
	c.Header = "Duskwood"
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	stderr := errOut.String()
	if !strings.HasPrefix(stderr, "ERROR: Zone/Header 'Duskwood' not known in Quest DB\n") {
		t.Errorf("stderr =\n%s", stderr)
	}
	if strings.Contains(stderr, "nhandled quests") {
		t.Error("no unhandled check for an unknown header")
	}
}

func TestRun_HeaderWithoutQuestDB(t *testing.T) {
	c, _, _ := newTestCLI(t, "")
	c.Header = "Elwynn Forest"
	if err := c.Run(); err == nil {
		t.Error("expected error")
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.lua")
	b := filepath.Join(dir, "b.lua")
	if err := os.WriteFile(a, []byte(elwynnGuide), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("return [[\nR Goldshire|\n]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, out, errOut := newTestCLI(t, "")
	c.Files = []string{a, b}
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Count(out.String(), "; === ") != 2 {
		t.Errorf("stdout =\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "--- "+b+" ---") {
		t.Errorf("stderr = %s", errOut.String())
	}

	c, _, _ = newTestCLI(t, "")
	c.Files = []string{filepath.Join(dir, "missing.lua")}
	if err := c.Run(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRun_ColorOff(t *testing.T) {
	c, _, errOut := newTestCLI(t, "return [[\nX nonsense|\n]]\n")
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(errOut.String(), "\x1b[") {
		t.Errorf("escape codes without color: %q", errOut.String())
	}
}

func TestRun_ColorOn(t *testing.T) {
	c, _, errOut := newTestCLI(t, "return [[\nX nonsense|\n]]\n")
	c.Color = true
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut.String(), "\x1b[") {
		t.Errorf("expected styled diagnostics: %q", errOut.String())
	}
}
