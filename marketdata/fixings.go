// Package marketdata holds the index-fixing store and curve-calibration
// market-data inputs spec §4.7/§6 requires, generalizing the teacher's
// marketdata/krx CD91 fixing feed into a multi-index store.
//
// Grounded on original_source/crates/convex-bonds/src/indices/
// fixing_store.rs (IndexFixingStore: BTreeMap<index, BTreeMap<date, rate>>,
// range queries, last-fixing-before lookback for overnight compounding).
package marketdata

import (
	"sort"

	"github.com/meenmo/molib/date"
)

// Fixing is a single historical rate observation for an index.
type Fixing struct {
	Date   date.Date
	Index  string
	Rate   float64
	Source string
}

// FixingStore stores and retrieves historical rate fixings by index and
// date, per the teacher's krx.ReferenceRateFeed generalized to any index.
type FixingStore struct {
	byIndex map[string]map[date.Date]Fixing
}

// NewFixingStore returns an empty store.
func NewFixingStore() *FixingStore {
	return &FixingStore{byIndex: make(map[string]map[date.Date]Fixing)}
}

// Add inserts or overwrites a fixing.
func (s *FixingStore) Add(f Fixing) {
	bucket, ok := s.byIndex[f.Index]
	if !ok {
		bucket = make(map[date.Date]Fixing)
		s.byIndex[f.Index] = bucket
	}
	bucket[f.Date] = f
}

// AddMany inserts a batch of fixings.
func (s *FixingStore) AddMany(fixings []Fixing) {
	for _, f := range fixings {
		s.Add(f)
	}
}

// Get returns the fixing for index on d, if any.
func (s *FixingStore) Get(index string, d date.Date) (float64, bool) {
	bucket, ok := s.byIndex[index]
	if !ok {
		return 0, false
	}
	f, ok := bucket[d]
	return f.Rate, ok
}

// sortedDates returns an index's fixing dates in ascending order.
func (s *FixingStore) sortedDates(index string) []date.Date {
	bucket, ok := s.byIndex[index]
	if !ok {
		return nil
	}
	dates := make([]date.Date, 0, len(bucket))
	for d := range bucket {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Range returns all fixings for index between start and end (inclusive), in
// chronological order.
func (s *FixingStore) Range(index string, start, end date.Date) []Fixing {
	var out []Fixing
	for _, d := range s.sortedDates(index) {
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, s.byIndex[index][d])
	}
	return out
}

// LastBefore returns the most recent fixing on or before d, or false if none
// exists — used to look up the reset preceding a floating period's start.
func (s *FixingStore) LastBefore(index string, d date.Date) (Fixing, bool) {
	dates := s.sortedDates(index)
	var best date.Date
	found := false
	for _, dd := range dates {
		if dd.After(d) {
			break
		}
		best, found = dd, true
	}
	if !found {
		return Fixing{}, false
	}
	return s.byIndex[index][best], true
}

// HasIndex reports whether the store holds any fixings for index.
func (s *FixingStore) HasIndex(index string) bool {
	bucket, ok := s.byIndex[index]
	return ok && len(bucket) > 0
}

// Count returns the number of fixings stored for index.
func (s *FixingStore) Count(index string) int {
	return len(s.byIndex[index])
}
