package recommender

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNameNotFound reports that a free-text query matched no catalog entry.
var ErrNameNotFound = errors.New("anime name not found")

// MaxCandidates caps the list returned for an ambiguous query.
const MaxCandidates = 10

// Candidate is one possible match for an ambiguous query.
type Candidate struct {
	AnimeID int    `json:"anime_id"`
	Name    string `json:"name"`
}

// NameIndex resolves free-text anime names to ids. It is built once from the
// catalog and is read-only afterwards, so concurrent lookups need no locking.
type NameIndex struct {
	exact   map[string]int
	entries []indexEntry
}

type indexEntry struct {
	normalized string
	animeID    int
	name       string
}

// NormalizeName maps a display name or query onto its lookup key: NFKC fold,
// trimmed, lowercased.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// NewNameIndex builds the lookup structures from the catalog. Entries without
// a name are skipped; on duplicate normalized names the first entry wins.
func NewNameIndex(items []Item) *NameIndex {
	ix := &NameIndex{
		exact:   make(map[string]int, len(items)),
		entries: make([]indexEntry, 0, len(items)),
	}
	for _, it := range items {
		key := NormalizeName(it.Name)
		if key == "" {
			continue
		}
		if _, dup := ix.exact[key]; !dup {
			ix.exact[key] = it.AnimeID
		}
		ix.entries = append(ix.entries, indexEntry{normalized: key, animeID: it.AnimeID, name: it.Name})
	}
	return ix
}

// Resolve maps a query to an anime id. An exact normalized match wins
// immediately. Otherwise every entry whose name contains the query is
// collected: no match returns ErrNameNotFound, a unique match returns its id,
// and multiple matches return up to MaxCandidates candidates ordered shortest
// name first so the canonical title tends to lead.
func (ix *NameIndex) Resolve(query string) (int, []Candidate, error) {
	key := NormalizeName(query)
	if key == "" {
		return 0, nil, ErrNameNotFound
	}
	if id, ok := ix.exact[key]; ok {
		return id, nil, nil
	}

	var matches []Candidate
	for _, e := range ix.entries {
		if strings.Contains(e.normalized, key) {
			matches = append(matches, Candidate{AnimeID: e.animeID, Name: e.name})
		}
	}
	switch len(matches) {
	case 0:
		return 0, nil, ErrNameNotFound
	case 1:
		return matches[0].AnimeID, nil, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i].Name) != len(matches[j].Name) {
			return len(matches[i].Name) < len(matches[j].Name)
		}
		return matches[i].Name < matches[j].Name
	})
	if len(matches) > MaxCandidates {
		matches = matches[:MaxCandidates]
	}
	return 0, matches, nil
}
