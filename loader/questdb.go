package loader

import (
	"fmt"
	"sort"

	"github.com/shururuun/TourGuide-Utils/types"
)

// QuestDB is the immutable quest database: quests grouped under headers,
// usually one header per zone.
type QuestDB struct {
	headers map[string][]types.QuestEntry
	order   []string
	quests  map[int]types.QuestEntry
	info    map[int]types.QuestInfo
}

func newQuestDB() *QuestDB {
	return &QuestDB{
		headers: map[string][]types.QuestEntry{},
		quests:  map[int]types.QuestEntry{},
		info:    map[int]types.QuestInfo{},
	}
}

func (db *QuestDB) addHeader(name string) {
	if _, ok := db.headers[name]; !ok {
		db.headers[name] = []types.QuestEntry{}
		db.order = append(db.order, name)
	}
}

// add stores a quest. A quest listed under several headers is kept in each
// of them; lookups by id return the last definition.
func (db *QuestDB) add(e types.QuestEntry, info types.QuestInfo, ve *ValidationError) {
	for _, existing := range db.headers[e.Header] {
		if existing.ID == e.ID {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"quest %d defined twice in header %q", e.ID, e.Header))
			return
		}
	}
	if prev, ok := db.quests[e.ID]; ok {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"quest %d listed in headers %q and %q", e.ID, prev.Header, e.Header))
	}
	db.headers[e.Header] = append(db.headers[e.Header], e)
	db.quests[e.ID] = e
	db.info[e.ID] = info
}

func (db *QuestDB) finish() {
	for name, list := range db.headers {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		db.headers[name] = list
	}
}

// Known reports whether a quest id exists under any header.
func (db *QuestDB) Known(qid int) bool {
	_, ok := db.quests[qid]
	return ok
}

// Entry returns the database entry of a quest.
func (db *QuestDB) Entry(qid int) (types.QuestEntry, bool) {
	e, ok := db.quests[qid]
	return e, ok
}

// Quest returns the static metadata of a quest. It never fails.
func (db *QuestDB) Quest(qid int) (types.QuestInfo, bool, error) {
	info, ok := db.info[qid]
	return info, ok, nil
}

// Header returns the quests of a header sorted by id.
func (db *QuestDB) Header(name string) ([]types.QuestEntry, bool) {
	list, ok := db.headers[name]
	return list, ok
}

// Headers returns the header names in definition order.
func (db *QuestDB) Headers() []string {
	return append([]string(nil), db.order...)
}

// Len returns the number of distinct quests.
func (db *QuestDB) Len() int {
	return len(db.quests)
}
