// Package vlan defines the VLAN identifier domain: valid ID bounds, explicit
// ID-to-ID mapping tables, contiguous range translations, and the rule set
// that combines them with explicit-first precedence.
package vlan

import (
	"fmt"
	"sort"

	"github.com/petrosquatr/vlan-replacer/internal/errors"
)

// Valid VLAN IDs on 802.1Q trunks. 0 and 4095 are reserved.
const (
	MinID = 1
	MaxID = 4094
)

// ValidateID checks that id is a usable VLAN identifier.
func ValidateID(id int) error {
	if id < MinID || id > MaxID {
		return fmt.Errorf("invalid VLAN ID %d: must be in range %d-%d", id, MinID, MaxID)
	}
	return nil
}

// ExplicitMapping is an immutable table of individual old -> new VLAN ID
// pairs. Every key and value is a valid VLAN ID; this holds for the whole
// lifetime of the value because the pair table is copied at construction.
type ExplicitMapping struct {
	pairs map[int]int
}

// NewExplicitMapping builds a mapping table from individual pairs, rejecting
// any key or value outside the valid VLAN ID range.
func NewExplicitMapping(pairs map[int]int) (*ExplicitMapping, error) {
	table := make(map[int]int, len(pairs))
	for oldID, newID := range pairs {
		if err := ValidateID(oldID); err != nil {
			return nil, fmt.Errorf("mapping key: %w", err)
		}
		if err := ValidateID(newID); err != nil {
			return nil, fmt.Errorf("mapping value for key %d: %w", oldID, err)
		}
		table[oldID] = newID
	}
	return &ExplicitMapping{pairs: table}, nil
}

// Lookup returns the replacement for id and whether one is defined.
func (m *ExplicitMapping) Lookup(id int) (int, bool) {
	if m == nil {
		return 0, false
	}
	newID, ok := m.pairs[id]
	return newID, ok
}

// IDs returns the mapped original VLAN IDs in ascending order.
func (m *ExplicitMapping) IDs() []int {
	if m == nil {
		return nil
	}
	ids := make([]int, 0, len(m.pairs))
	for id := range m.pairs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Size returns the number of individual pairs in the table.
func (m *ExplicitMapping) Size() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// RangeMapping translates a closed interval of VLAN IDs onto another interval
// of the same size by a constant offset. Translate(v) = NewStart + (v -
// OldStart) for every v in [OldStart, OldEnd], which makes the translation a
// bijection between the two intervals.
type RangeMapping struct {
	oldStart, oldEnd int
	newStart, newEnd int
}

// NewRangeMapping validates both intervals and their sizes. Each endpoint
// must be a valid VLAN ID, each interval must run start < end, and both
// intervals must contain the same number of IDs.
func NewRangeMapping(oldStart, oldEnd, newStart, newEnd int) (*RangeMapping, error) {
	for _, id := range []int{oldStart, oldEnd, newStart, newEnd} {
		if err := ValidateID(id); err != nil {
			return nil, errors.NewConfigError(err.Error(), nil)
		}
	}
	if oldStart >= oldEnd {
		return nil, errors.NewConfigError(
			fmt.Sprintf("old range start (%d) must be less than old range end (%d)", oldStart, oldEnd), nil)
	}
	if newStart >= newEnd {
		return nil, errors.NewConfigError(
			fmt.Sprintf("new range start (%d) must be less than new range end (%d)", newStart, newEnd), nil)
	}
	oldSize := oldEnd - oldStart + 1
	newSize := newEnd - newStart + 1
	if oldSize != newSize {
		return nil, errors.NewConfigError(
			fmt.Sprintf("range sizes do not match: old range %d-%d has %d VLANs, new range %d-%d has %d VLANs",
				oldStart, oldEnd, oldSize, newStart, newEnd, newSize), nil)
	}
	return &RangeMapping{
		oldStart: oldStart,
		oldEnd:   oldEnd,
		newStart: newStart,
		newEnd:   newEnd,
	}, nil
}

// Contains reports whether id falls inside the old interval.
func (r *RangeMapping) Contains(id int) bool {
	if r == nil {
		return false
	}
	return id >= r.oldStart && id <= r.oldEnd
}

// Translate maps id through the range offset. The second return value is
// false when id is outside the old interval.
func (r *RangeMapping) Translate(id int) (int, bool) {
	if !r.Contains(id) {
		return 0, false
	}
	return id + r.Offset(), true
}

// Offset returns the constant added to every translated ID.
func (r *RangeMapping) Offset() int {
	return r.newStart - r.oldStart
}

// Size returns the number of VLAN IDs in each interval.
func (r *RangeMapping) Size() int {
	if r == nil {
		return 0
	}
	return r.oldEnd - r.oldStart + 1
}

func (r *RangeMapping) OldStart() int { return r.oldStart }
func (r *RangeMapping) OldEnd() int   { return r.oldEnd }
func (r *RangeMapping) NewStart() int { return r.newStart }
func (r *RangeMapping) NewEnd() int   { return r.newEnd }
