// Package types defines the shared data structures for the TourGuide filter.
// It holds plain data types only.
package types

// TagValue is the normalized value of a single step tag. Flag tags carry no
// text; their presence alone is meaningful.
type TagValue struct {
	Text string
	Flag bool
}

// StepRecord is the parsed form of one guide step line.
type StepRecord struct {
	Action  byte   // one-character action code, e.g. 'A', 'T', ';'
	Subject string // free text after the action code
	Tags    map[string]TagValue
	Order   []string // tag codes in the order they were first set
	Note    string   // N tag, always emitted last
}

// Zone is a named rectangular region of one map in world coordinates.
// Left > Right and Top > Bottom for every zone in the built-in tables.
type Zone struct {
	Name   string
	ID     int // 0 for the continent-spanning zones
	Map    int
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// WorldPosition is an absolute position on one of the maps.
type WorldPosition struct {
	Map int
	X   float64
	Y   float64
}

// ZoneCoordinate is a zone-relative percentage position (0-100).
type ZoneCoordinate struct {
	X    float64
	Y    float64
	Zone string
}

// Levels holds the level data of a quest.
type Levels struct {
	Quest int
	Min   int
	Max   int
}

// Links holds the quest chain data of a quest.
type Links struct {
	Prev           int
	Next           int
	ExclusiveGroup int
	RewardNext     int
}

// Requirements holds race and class bitmasks; zero means unrestricted.
type Requirements struct {
	Races   int
	Classes int
}

// QuestInfo is the metadata of one quest as provided by a quest source.
type QuestInfo struct {
	ID           int
	Name         string
	SortArea     int
	InfoID       int
	Levels       Levels
	Links        Links
	Requirements Requirements
	XPDifficulty int
}

// Location is a named world position, e.g. a quest giver or flight master.
type Location struct {
	Entry int
	Name  string
	Map   int
	X     float64
	Y     float64
}

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind string

const (
	KindStructural DiagnosticKind = "structural"
	KindTag        DiagnosticKind = "tag"
	KindSemantic   DiagnosticKind = "semantic"
	KindNotice     DiagnosticKind = "notice"
)

// Diagnostic is a recoverable problem found while filtering a guide.
type Diagnostic struct {
	File    string
	Line    int
	Kind    DiagnosticKind
	Message string
	Note    bool // also emit a FIXME comment line into the guide output
}

// QuestEntry is one quest of the quest database file.
type QuestEntry struct {
	ID     int
	Title  string
	Level  int
	Header string
}
