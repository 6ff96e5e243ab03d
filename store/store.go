// Package store reads quest and spawn data from a world database kept in
// sqlite. It implements the quest and location sources of the enrichment
// layer.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/shururuun/TourGuide-Utils/internal/log"
	"github.com/shururuun/TourGuide-Utils/types"
)

// ErrNotOpen is returned by queries on a closed store.
var ErrNotOpen = errors.New("store: database not open")

// npcFlagFlightMaster marks creatures offering flight paths.
const npcFlagFlightMaster = 0x2000

// Store is a read-mostly handle on the world database.
type Store struct {
	db   *sql.DB
	path string
	sb   squirrel.StatementBuilderType
}

// Open opens the sqlite database at path. ":memory:" opens a private
// in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// Every connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Debug("world database opened", "path", path)
	return &Store{
		db:   db,
		path: path,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the database. Closing twice is not an error.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// DB returns the underlying handle, or nil once closed.
func (s *Store) DB() *sql.DB {
	return s.db
}

// CreateSchema creates the tables the store reads if they do not exist.
func (s *Store) CreateSchema() error {
	if s.db == nil {
		return ErrNotOpen
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// questQuery selects the quest columns joined with their addon row.
func (s *Store) questQuery() squirrel.SelectBuilder {
	return s.sb.Select(
		"qt.ID", "qt.LogTitle", "qt.QuestLevel", "qt.MinLevel", "qa.MaxLevel",
		"qt.QuestSortID", "qt.QuestInfoID",
		"qa.PrevQuestID", "qa.NextQuestID", "qa.ExclusiveGroup", "qt.RewardNextQuest",
		"qt.RewardXPDifficulty", "qt.AllowableRaces", "qa.AllowableClasses",
	).
		From("quest_template AS qt").
		Join("quest_template_addon AS qa ON qt.ID = qa.ID")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuest(row scanner) (types.QuestInfo, error) {
	var q types.QuestInfo
	err := row.Scan(
		&q.ID, &q.Name, &q.Levels.Quest, &q.Levels.Min, &q.Levels.Max,
		&q.SortArea, &q.InfoID,
		&q.Links.Prev, &q.Links.Next, &q.Links.ExclusiveGroup, &q.Links.RewardNext,
		&q.XPDifficulty, &q.Requirements.Races, &q.Requirements.Classes,
	)
	return q, err
}

// Quest returns the metadata of one quest.
func (s *Store) Quest(qid int) (types.QuestInfo, bool, error) {
	if s.db == nil {
		return types.QuestInfo{}, false, ErrNotOpen
	}
	query, args, err := s.questQuery().Where(squirrel.Eq{"qt.ID": qid}).ToSql()
	if err != nil {
		return types.QuestInfo{}, false, err
	}
	q, err := scanQuest(s.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return types.QuestInfo{}, false, nil
	}
	if err != nil {
		return types.QuestInfo{}, false, fmt.Errorf("quest %d: %w", qid, err)
	}
	return q, true, nil
}

// AllQuests returns every quest ordered by id.
func (s *Store) AllQuests() ([]types.QuestInfo, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}
	query, args, err := s.questQuery().OrderBy("qt.ID").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying quests: %w", err)
	}
	defer rows.Close()

	var out []types.QuestInfo
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("reading quest: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
