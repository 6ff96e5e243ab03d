package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/shururuun/TourGuide-Utils/types"
)

// spawnKind names the template and spawn tables of an object kind.
type spawnKind struct {
	template string
	spawn    string
	prefix   string
}

var (
	creatures   = spawnKind{template: "creature_template", spawn: "creature", prefix: "creature"}
	gameobjects = spawnKind{template: "gameobject_template", spawn: "gameobject", prefix: "gameobject"}
)

// spawns selects the spawn points of a kind with their template names.
func (s *Store) spawns(k spawnKind) squirrel.SelectBuilder {
	return s.sb.Select("t.entry", "t.name", "s.map", "s.position_x", "s.position_y").
		From(k.template + " AS t").
		Join(k.spawn + " AS s ON t.entry = s.id")
}

func (s *Store) locations(q squirrel.SelectBuilder) ([]types.Location, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var out []types.Location
	for rows.Next() {
		var l types.Location
		if err := rows.Scan(&l.Entry, &l.Name, &l.Map, &l.X, &l.Y); err != nil {
			return nil, fmt.Errorf("reading location: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// questRelation lists spawns of creatures and game objects linked to a
// quest through the given relation ("queststarter" or "questender").
func (s *Store) questRelation(qid int, relation string) ([]types.Location, error) {
	var out []types.Location
	for _, k := range []spawnKind{creatures, gameobjects} {
		q := s.spawns(k).
			Join(k.prefix + "_" + relation + " AS r ON r.id = t.entry").
			Where(squirrel.Eq{"r.quest": qid}).
			OrderBy("s.guid")
		locs, err := s.locations(q)
		if err != nil {
			return nil, fmt.Errorf("quest %d %s: %w", qid, relation, err)
		}
		out = append(out, locs...)
	}
	return out, nil
}

// Starters returns where a quest can be picked up.
func (s *Store) Starters(qid int) ([]types.Location, error) {
	return s.questRelation(qid, "queststarter")
}

// Enders returns where a quest can be turned in.
func (s *Store) Enders(qid int) ([]types.Location, error) {
	return s.questRelation(qid, "questender")
}

// FlightMasters returns the flight masters of a map.
func (s *Store) FlightMasters(mapID int) ([]types.Location, error) {
	q := s.spawns(creatures).
		Where(squirrel.Eq{"s.map": mapID}).
		Where(squirrel.Expr("t.npcflag & ? != 0", npcFlagFlightMaster)).
		OrderBy("s.guid")
	return s.locations(q)
}

// FindCreatures returns the spawns of creatures whose name contains name.
func (s *Store) FindCreatures(name string) ([]types.Location, error) {
	q := s.spawns(creatures).
		Where(squirrel.Like{"t.name": "%" + name + "%"}).
		OrderBy("t.entry", "s.guid")
	return s.locations(q)
}
