package reconcile

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scorer measures the edit distance between two normalized names. Lower is more similar.
type Scorer interface {
	Score(a, b string) int
}

// LevenshteinScorer scores names by Levenshtein distance over runes.
type LevenshteinScorer struct{}

// Score implements Scorer.
func (LevenshteinScorer) Score(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Matcher pairs source records with directory entries.
type Matcher struct {
	Scorer      Scorer
	MaxDistance int
}

// NewMatcher creates a matcher accepting fuzzy candidates within maxDistance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{Scorer: LevenshteinScorer{}, MaxDistance: maxDistance}
}

type candidate struct {
	entry *DirectoryEntry
	name  string
	runes int
}

// Match returns one pair per record, in employee id order.
// Exact employee id matches win over any fuzzy candidate. An entry already claimed by
// an exact match, or by an earlier fuzzy match, is never offered to another record.
// When several records share an employee id only the first in sort order is matched;
// the others are returned unmatched with Duplicate set.
func (m *Matcher) Match(records []SourceRecord, entries []DirectoryEntry) []MatchedPair {
	ordered := make([]SourceRecord, len(records))
	copy(ordered, records)
	sortRecords(ordered)

	byID := indexByEmployeeID(entries)
	claimed := make(map[string]struct{}, len(ordered))
	seen := make(map[string]struct{}, len(ordered))
	pairs := make([]MatchedPair, len(ordered))

	for i, rec := range ordered {
		pairs[i] = MatchedPair{Source: rec, Kind: MatchUnmatched}
		id := strings.TrimSpace(rec.EmployeeID)
		if id != "" {
			if _, dup := seen[id]; dup {
				pairs[i].Duplicate = true
				continue
			}
			seen[id] = struct{}{}
		}
		if entry, ok := byID[id]; ok {
			pairs[i].Entry = entry
			pairs[i].Kind = MatchExactKey
			claimed[entry.UniquePath] = struct{}{}
		}
	}

	pool := m.candidates(entries)
	for i := range pairs {
		if pairs[i].Kind != MatchUnmatched || pairs[i].Duplicate {
			continue
		}
		entry, dist, ok := m.best(pairs[i].Source.FullName, pool, claimed)
		if !ok {
			continue
		}
		pairs[i].Entry = entry
		pairs[i].Kind = MatchFuzzyName
		pairs[i].Distance = dist
		claimed[entry.UniquePath] = struct{}{}
	}

	return pairs
}

func (m *Matcher) candidates(entries []DirectoryEntry) []candidate {
	pool := make([]candidate, 0, len(entries))
	for i := range entries {
		name := NormalizeName(entries[i].DisplayName)
		if name == "" {
			continue
		}
		pool = append(pool, candidate{entry: &entries[i], name: name, runes: utf8.RuneCountInString(name)})
	}
	// path order makes the first best candidate the tie winner
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].entry.UniquePath < pool[j].entry.UniquePath
	})
	return pool
}

func (m *Matcher) best(fullName string, pool []candidate, claimed map[string]struct{}) (*DirectoryEntry, int, bool) {
	name := NormalizeName(fullName)
	if name == "" || m.MaxDistance < 0 {
		return nil, 0, false
	}
	nameRunes := utf8.RuneCountInString(name)

	var (
		best     *DirectoryEntry
		bestDist int
	)
	for _, c := range pool {
		if _, taken := claimed[c.entry.UniquePath]; taken {
			continue
		}
		// edit distance is at least the length difference
		if abs(c.runes-nameRunes) > m.MaxDistance {
			continue
		}
		dist := m.Scorer.Score(name, c.name)
		if dist > m.MaxDistance {
			continue
		}
		if best == nil || dist < bestDist {
			best, bestDist = c.entry, dist
		}
	}

	return best, bestDist, best != nil
}

// indexByEmployeeID keeps the lexicographically smallest path when ids collide.
func indexByEmployeeID(entries []DirectoryEntry) map[string]*DirectoryEntry {
	idx := make(map[string]*DirectoryEntry, len(entries))
	for i := range entries {
		id := strings.TrimSpace(entries[i].EmployeeID)
		if id == "" {
			continue
		}
		if cur, ok := idx[id]; ok && cur.UniquePath <= entries[i].UniquePath {
			continue
		}
		idx[id] = &entries[i]
	}
	return idx
}

// sortRecords orders by employee id, then by the remaining fields so that the first
// of several rows sharing an id does not depend on the order the store returned them in.
func sortRecords(records []SourceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch {
		case a.EmployeeID != b.EmployeeID:
			return a.EmployeeID < b.EmployeeID
		case a.FullName != b.FullName:
			return a.FullName < b.FullName
		case a.Department != b.Department:
			return a.Department < b.Department
		case a.PositionTitle != b.PositionTitle:
			return a.PositionTitle < b.PositionTitle
		case a.SupervisorEmployeeID != b.SupervisorEmployeeID:
			return a.SupervisorEmployeeID < b.SupervisorEmployeeID
		case a.PhoneNumber != b.PhoneNumber:
			return a.PhoneNumber < b.PhoneNumber
		default:
			return a.Gender < b.Gender
		}
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
