// Package loader loads the Lua quest database into Go structs at startup.
// The Lua VM is discarded after loading.
package loader

import (
	"fmt"
	"math"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/shururuun/TourGuide-Utils/types"
)

// rawHeader holds a header table before compilation.
type rawHeader struct {
	name  string
	table *lua.LTable
	order int
}

// questFields are the keys a quest table may carry.
var questFields = map[string]bool{
	"title":   true,
	"lvl":     true,
	"min":     true,
	"max":     true,
	"sort":    true,
	"races":   true,
	"classes": true,
	"prev":    true,
	"next":    true,
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// questID converts a table key to a quest id.
func questID(k lua.LValue) (int, bool) {
	n, ok := k.(lua.LNumber)
	if !ok {
		return 0, false
	}
	f := float64(n)
	if f != math.Trunc(f) || f <= 0 {
		return 0, false
	}
	return int(f), true
}

// compile converts the collected Lua tables into a QuestDB. Problems that
// prevent a quest from being represented are added to ve.
func compile(coll *collector, ve *ValidationError) *QuestDB {
	db := newQuestDB()

	headers := append([]rawHeader(nil), coll.headers...)
	sort.SliceStable(headers, func(i, j int) bool { return headers[i].order < headers[j].order })

	for _, h := range headers {
		if h.name == "" {
			ve.Errors = append(ve.Errors, "header without a name")
			continue
		}
		db.addHeader(h.name)

		var ids []int
		tables := map[int]*lua.LTable{}
		h.table.ForEach(func(k, v lua.LValue) {
			qid, ok := questID(k)
			if !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"header %q: key %s is not a quest id", h.name, k.String()))
				return
			}
			tbl, ok := v.(*lua.LTable)
			if !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"header %q: quest %d is not a table", h.name, qid))
				return
			}
			ids = append(ids, qid)
			tables[qid] = tbl
		})
		sort.Ints(ids)

		for _, qid := range ids {
			entry, info := compileQuest(h.name, qid, tables[qid], ve)
			db.add(entry, info, ve)
		}
	}

	db.finish()
	return db
}

// compileQuest reads one quest table.
func compileQuest(header string, qid int, tbl *lua.LTable, ve *ValidationError) (types.QuestEntry, types.QuestInfo) {
	tbl.ForEach(func(k, _ lua.LValue) {
		if key, ok := k.(lua.LString); !ok || !questFields[string(key)] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"quest %d in header %q: unknown field %s", qid, header, k.String()))
		}
	})

	entry := types.QuestEntry{
		ID:     qid,
		Title:  getString(tbl, "title"),
		Level:  getInt(tbl, "lvl"),
		Header: header,
	}
	info := types.QuestInfo{
		ID:       qid,
		Name:     entry.Title,
		SortArea: getInt(tbl, "sort"),
		Levels: types.Levels{
			Quest: entry.Level,
			Min:   getInt(tbl, "min"),
			Max:   getInt(tbl, "max"),
		},
		Links: types.Links{
			Prev: getInt(tbl, "prev"),
			Next: getInt(tbl, "next"),
		},
		Requirements: types.Requirements{
			Races:   getInt(tbl, "races"),
			Classes: getInt(tbl, "classes"),
		},
	}
	return entry, info
}
