package pokedex

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// TagAll is the wildcard tag filter matching every record.
const TagAll = "all"

// Store is the explicit application state: the acquired collection plus the
// live filter inputs. There are no ambient globals; callers pass the Store
// to whatever consumes the filtered subset.
//
// Acquisition populates the store exactly once. Reads may come from
// concurrent HTTP handlers afterwards, hence the lock.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	query    string
	tag      string
	selected int // 0 = nothing selected
}

// NewStore creates an empty store with the wildcard tag filter.
func NewStore() *Store {
	return &Store{tag: TagAll}
}

// SetRecords installs the acquired collection. Acquisition is one-shot, so
// this is called exactly once per run; later growth is not supported.
func (s *Store) SetRecords(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// Len returns the size of the full collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// SetQuery updates the live text query.
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// SetTag updates the live tag filter. Empty means wildcard.
func (s *Store) SetTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tag == "" {
		tag = TagAll
	}
	s.tag = tag
}

// Select marks one record as the detail-view selection and returns it.
func (s *Store) Select(id int) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			s.selected = id
			return r, true
		}
	}
	return Record{}, false
}

// Selected returns the current detail-view selection, if any.
func (s *Store) Selected() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == 0 {
		return Record{}, false
	}
	for _, r := range s.records {
		if r.ID == s.selected {
			return r, true
		}
	}
	return Record{}, false
}

// Dismiss clears the detail-view selection.
func (s *Store) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = 0
}

// Filtered applies the current query/tag state. See ApplyFilter.
func (s *Store) Filtered() []Record {
	s.mu.RLock()
	query, tag := s.query, s.tag
	s.mu.RUnlock()
	return s.ApplyFilter(query, tag)
}

// ApplyFilter returns the subset of the collection matching both filters, in
// the collection's existing order. A record matches the query if its
// lowercased name contains the lowercased query, or its identifier's decimal
// string contains the query, or its stat-total's decimal string contains the
// query. A record matches the tag if the tag is the wildcard or appears in
// the record's type list. Pure and idempotent: no mutation, no re-sort.
func (s *Store) ApplyFilter(query, tag string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	result := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if matchesQuery(r, query) && matchesTag(r, tag) {
			result = append(result, r)
		}
	}
	return result
}

// Types returns the distinct sorted tag set of the collection, for
// populating a filter control.
func (s *Store) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, r := range s.records {
		for _, t := range r.Types {
			seen[t] = struct{}{}
		}
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func matchesQuery(r Record, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strconv.Itoa(r.ID), query) {
		return true
	}
	return strings.Contains(strconv.Itoa(r.StatTotal), query)
}

func matchesTag(r Record, tag string) bool {
	if tag == "" || tag == TagAll {
		return true
	}
	for _, t := range r.Types {
		if t == tag {
			return true
		}
	}
	return false
}
