// Package tui provides a Bubble Tea browser for reviewing a filtered guide
// and its FIXME notes.
package tui

// searches remembers submitted search terms, newest last, for recall with
// Up/Down in the search prompt.
type searches struct {
	terms []string
	limit int
	pos   int // len(terms) while not recalling
}

func newSearches(limit int) *searches {
	return &searches{limit: limit}
}

// add remembers a term. Repeating the newest term does not add it again.
func (s *searches) add(term string) {
	if n := len(s.terms); n == 0 || s.terms[n-1] != term {
		s.terms = append(s.terms, term)
		if len(s.terms) > s.limit {
			s.terms = s.terms[len(s.terms)-s.limit:]
		}
	}
	s.pos = len(s.terms)
}

// last returns the newest term.
func (s *searches) last() (string, bool) {
	if len(s.terms) == 0 {
		return "", false
	}
	return s.terms[len(s.terms)-1], true
}

// older steps back through the terms, stopping at the oldest.
func (s *searches) older() (string, bool) {
	if len(s.terms) == 0 {
		return "", false
	}
	if s.pos > 0 {
		s.pos--
	}
	return s.terms[s.pos], true
}

// newer steps forward; past the newest term it reports false.
func (s *searches) newer() (string, bool) {
	if s.pos >= len(s.terms)-1 {
		s.pos = len(s.terms)
		return "", false
	}
	s.pos++
	return s.terms[s.pos], true
}
