package store

// schema is the subset of the world database the store reads. Column names
// follow the AzerothCore world schema.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS quest_template (
		ID INTEGER PRIMARY KEY,
		LogTitle TEXT NOT NULL DEFAULT '',
		QuestLevel INTEGER NOT NULL DEFAULT 0,
		MinLevel INTEGER NOT NULL DEFAULT 0,
		QuestSortID INTEGER NOT NULL DEFAULT 0,
		QuestInfoID INTEGER NOT NULL DEFAULT 0,
		RewardNextQuest INTEGER NOT NULL DEFAULT 0,
		RewardXPDifficulty INTEGER NOT NULL DEFAULT 0,
		AllowableRaces INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS quest_template_addon (
		ID INTEGER PRIMARY KEY,
		MaxLevel INTEGER NOT NULL DEFAULT 0,
		AllowableClasses INTEGER NOT NULL DEFAULT 0,
		PrevQuestID INTEGER NOT NULL DEFAULT 0,
		NextQuestID INTEGER NOT NULL DEFAULT 0,
		ExclusiveGroup INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS creature_template (
		entry INTEGER PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		npcflag INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS creature (
		guid INTEGER PRIMARY KEY,
		id INTEGER NOT NULL,
		map INTEGER NOT NULL DEFAULT 0,
		position_x REAL NOT NULL DEFAULT 0,
		position_y REAL NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS creature_queststarter (
		id INTEGER NOT NULL,
		quest INTEGER NOT NULL,
		PRIMARY KEY (id, quest)
	)`,
	`CREATE TABLE IF NOT EXISTS creature_questender (
		id INTEGER NOT NULL,
		quest INTEGER NOT NULL,
		PRIMARY KEY (id, quest)
	)`,
	`CREATE TABLE IF NOT EXISTS gameobject_template (
		entry INTEGER PRIMARY KEY,
		name TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS gameobject (
		guid INTEGER PRIMARY KEY,
		id INTEGER NOT NULL,
		map INTEGER NOT NULL DEFAULT 0,
		position_x REAL NOT NULL DEFAULT 0,
		position_y REAL NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS gameobject_queststarter (
		id INTEGER NOT NULL,
		quest INTEGER NOT NULL,
		PRIMARY KEY (id, quest)
	)`,
	`CREATE TABLE IF NOT EXISTS gameobject_questender (
		id INTEGER NOT NULL,
		quest INTEGER NOT NULL,
		PRIMARY KEY (id, quest)
	)`,
}
