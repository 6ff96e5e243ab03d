package loader

import (
	"fmt"
	"strings"

	"github.com/shururuun/TourGuide-Utils/internal/log"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Quest levels outside this range are suspicious.
const (
	minQuestLevel = -1
	maxQuestLevel = 80
)

// validate checks the compiled database for consistency. Problems found
// during compilation are already in ve.
func validate(db *QuestDB, ve *ValidationError) error {
	if len(db.order) == 0 {
		ve.Errors = append(ve.Errors, "no headers defined")
	}

	for _, name := range db.order {
		list := db.headers[name]
		if len(list) == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("header %q has no quests", name))
		}
		for _, q := range list {
			if q.Title == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"quest %d in header %q has no title", q.ID, name))
			}
			if q.Level < minQuestLevel || q.Level > maxQuestLevel {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"quest %d in header %q has unusual level %d", q.ID, name, q.Level))
			}
			info := db.info[q.ID]
			if info.Levels.Min > 0 && q.Level > 0 && info.Levels.Min > q.Level {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"quest %d: minimum level %d above quest level %d", q.ID, info.Levels.Min, q.Level))
			}
		}
	}

	for _, w := range ve.Warnings {
		log.Warn("quest database", "problem", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
