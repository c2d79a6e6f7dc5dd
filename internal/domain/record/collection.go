package record

import "sort"

// CategoryAll is the tab value that disables category filtering.
const CategoryAll = "すべて"

// SortDescendingByDate returns the records ordered newest-first. The sort
// is stable: records with equal dates keep their segmentation order.
// Unrecognized dates (zero Sortable) sort last.
func SortDescendingByDate(records []ParsedRecord) []ParsedRecord {
	out := make([]ParsedRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sortable.After(out[j].Sortable)
	})
	return out
}

// DayGroup is one calendar-day bucket of records, in the order they fell
// into it.
type DayGroup struct {
	Key     string         `json:"key"`
	Records []ParsedRecord `json:"records"`
}

// GroupByDay buckets records by group key, preserving the input order both
// across buckets (first occurrence) and within each bucket. It does not
// re-sort; callers group an already-sorted collection.
func GroupByDay(records []ParsedRecord) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup

	for _, r := range records {
		i, ok := index[r.GroupKey]
		if !ok {
			i = len(groups)
			index[r.GroupKey] = i
			groups = append(groups, DayGroup{Key: r.GroupKey})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// FilterByCategory returns the records whose tab category matches. The
// すべて category returns the input unchanged.
func FilterByCategory(records []ParsedRecord, category string) []ParsedRecord {
	if category == CategoryAll || category == "" {
		return records
	}
	var out []ParsedRecord
	for _, r := range records {
		if r.Meta.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// AvailableCategories lists the distinct non-empty categories in order of
// first occurrence, for the tab bar.
func AvailableCategories(records []ParsedRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		c := r.Meta.Category
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// SelectionState tracks which records are checked for summarization. Its
// lifecycle is independent of the parsed collection: it survives tab-filter
// changes and is reset only on a full refetch.
type SelectionState map[int]bool

func NewSelectionState(records []ParsedRecord) SelectionState {
	s := make(SelectionState, len(records))
	for _, r := range records {
		s[r.RecordID] = false
	}
	return s
}

func (s SelectionState) Toggle(recordID int) {
	s[recordID] = !s[recordID]
}

// SelectAll marks the given (currently visible) records selected. Records
// outside the visible set keep their state.
func (s SelectionState) SelectAll(visible []ParsedRecord) {
	for _, r := range visible {
		s[r.RecordID] = true
	}
}

// SelectNone clears selection for the given (currently visible) records
// only.
func (s SelectionState) SelectNone(visible []ParsedRecord) {
	for _, r := range visible {
		s[r.RecordID] = false
	}
}

func (s SelectionState) Count() int {
	n := 0
	for _, selected := range s {
		if selected {
			n++
		}
	}
	return n
}

// SelectedIDs returns the selected record ids in ascending order.
func (s SelectionState) SelectedIDs() []int {
	var ids []int
	for id, selected := range s {
		if selected {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
