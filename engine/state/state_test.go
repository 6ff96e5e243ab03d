package state

import (
	"reflect"
	"testing"

	"github.com/shururuun/TourGuide-Utils/types"
)

func TestNewGuide(t *testing.T) {
	g := NewGuide()
	if !g.FirstHeader {
		t.Error("FirstHeader should start true")
	}
	if g.Started == nil || g.Completed == nil {
		t.Error("quest sets should not be nil")
	}
	if g.InsideBlock {
		t.Error("guide should start outside a block")
	}
}

func TestSetZone(t *testing.T) {
	g := NewGuide()
	if !g.SetZone("Elwynn Forest") {
		t.Error("first zone should be the start zone")
	}
	if g.ZoneChanged() {
		t.Error("zone should not have changed yet")
	}
	if g.SetZone("Westfall") {
		t.Error("second zone should not be the start zone")
	}
	if g.StartZone != "Elwynn Forest" || g.CurrentZone != "Westfall" {
		t.Errorf("zones = %q/%q", g.StartZone, g.CurrentZone)
	}
	if !g.ZoneChanged() {
		t.Error("zone should have changed")
	}
}

func TestStartComplete(t *testing.T) {
	g := NewGuide()
	if err := g.Start(783); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := g.Start(783); err == nil {
		t.Error("second Start should fail")
	}
	if err := g.Complete(783); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := g.Complete(783); err == nil {
		t.Error("second Complete should fail")
	}
	if !g.Handled(783) {
		t.Error("783 should be handled")
	}
	if g.Handled(1) {
		t.Error("1 should not be handled")
	}
}

func TestBeginFileKeepsQuests(t *testing.T) {
	g := NewGuide()
	g.SetZone("Durotar")
	_ = g.Start(4641)
	g.Line = 40
	g.InsideBlock = true

	g.BeginFile("second.lua")
	if g.Line != 0 || g.InsideBlock || g.File != "second.lua" {
		t.Errorf("file position not reset: %+v", g)
	}
	if !g.Started[4641] || g.StartZone != "Durotar" {
		t.Error("quest sets and zones must persist across files")
	}
}

func TestRecordTags(t *testing.T) {
	r := NewRecord('A', "The Threat Within")
	SetText(r, "QID", "783")
	SetTag(r, "O", types.TagValue{Flag: true})
	SetText(r, "M", "48.17,42.94")
	SetText(r, "QID", "784")

	if !reflect.DeepEqual(r.Order, []string{"QID", "O", "M"}) {
		t.Errorf("Order = %v", r.Order)
	}
	if TagText(r, "QID") != "784" {
		t.Errorf("QID = %q", TagText(r, "QID"))
	}

	DeleteTag(r, "O")
	DeleteTag(r, "missing")
	if HasTag(r, "O") {
		t.Error("O should be deleted")
	}
	if !reflect.DeepEqual(r.Order, []string{"QID", "M"}) {
		t.Errorf("Order after delete = %v", r.Order)
	}
}

func TestEffectiveZone(t *testing.T) {
	g := NewGuide()
	g.SetZone("Elwynn Forest")
	r := NewRecord('R', "Goldshire")
	if got := EffectiveZone(r, g); got != "Elwynn Forest" {
		t.Errorf("EffectiveZone = %q", got)
	}
	SetText(r, "Z", "Westfall")
	if got := EffectiveZone(r, g); got != "Westfall" {
		t.Errorf("EffectiveZone with Z = %q", got)
	}
}
