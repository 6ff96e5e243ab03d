package loader

import (
	"strings"
	"testing"

	"github.com/shururuun/TourGuide-Utils/types"
)

// validDB returns a small consistent database.
func validDB() *QuestDB {
	db := newQuestDB()
	ve := &ValidationError{}
	db.addHeader("Elwynn Forest")
	db.add(types.QuestEntry{ID: 783, Title: "A Threat Within", Level: 1, Header: "Elwynn Forest"},
		types.QuestInfo{ID: 783, Name: "A Threat Within", Levels: types.Levels{Quest: 1}}, ve)
	db.finish()
	return db
}

func TestValidate_ValidDB(t *testing.T) {
	if err := validate(validDB(), &ValidationError{}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_Warnings(t *testing.T) {
	db := validDB()
	ve := &ValidationError{}
	db.addHeader("Empty")
	db.add(types.QuestEntry{ID: 99, Title: "Odd", Level: 200, Header: "Elwynn Forest"},
		types.QuestInfo{ID: 99, Levels: types.Levels{Quest: 200, Min: 210}}, ve)
	db.add(types.QuestEntry{ID: 783, Title: "A Threat Within", Level: 1, Header: "Westfall"},
		types.QuestInfo{ID: 783}, ve)

	if err := validate(db, ve); err != nil {
		t.Fatalf("warnings must not fail validation: %v", err)
	}
	assertContains(t, ve.Warnings, `header "Empty" has no quests`)
	assertContains(t, ve.Warnings, "unusual level 200")
	assertContains(t, ve.Warnings, "minimum level 210")
	assertContains(t, ve.Warnings, `listed in headers "Elwynn Forest" and "Westfall"`)
}

func TestValidate_NoHeaders(t *testing.T) {
	err := validate(newQuestDB(), &ValidationError{})
	if err == nil {
		t.Fatal("expected error for empty database")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	assertContains(t, ve.Errors, "no headers")
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []string{"one", "two"}}
	msg := ve.Error()
	if !strings.Contains(msg, "2 error(s)") || !strings.Contains(msg, "one\n  two") {
		t.Errorf("Error() = %q", msg)
	}
}

// assertContains checks that at least one string in the slice contains substr.
func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, strs)
}
