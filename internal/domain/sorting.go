package domain

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder specifies the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// IsValid checks if the sort order is valid.
func (s SortOrder) IsValid() bool {
	return s == SortOrderAsc || s == SortOrderDesc
}

// String returns the string representation of the sort order.
func (s SortOrder) String() string {
	return string(s)
}

// Label returns the option text shown in the sort selector.
func (s SortOrder) Label() string {
	if s == SortOrderDesc {
		return "Sort Z-A"
	}
	return "Sort A-Z"
}

// Toggle returns the opposite direction.
func (s SortOrder) Toggle() SortOrder {
	if s == SortOrderDesc {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// ParseSortOrder parses a string into a SortOrder.
func ParseSortOrder(order string) (SortOrder, error) {
	o := SortOrder(order)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid sort order: %s", order)
	}
	return o, nil
}

// collate.Collator keeps internal buffers and is not safe for concurrent use.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

// CompareNames compares two names with English collation: case and
// accents are secondary to the base letters, as in a phone book.
func CompareNames(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// SortByName returns a new slice ordered by name. Equal names keep their
// relative order.
func SortByName(contacts []Contact, order SortOrder) []Contact {
	sorted := Clone(contacts)
	if len(sorted) < 2 {
		return sorted
	}
	desc := order == SortOrderDesc
	sort.SliceStable(sorted, func(i, j int) bool {
		c := CompareNames(sorted[i].Name, sorted[j].Name)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}
