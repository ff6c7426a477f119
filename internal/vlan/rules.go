package vlan

import "github.com/petrosquatr/vlan-replacer/internal/errors"

// Source identifies which kind of rule produced a replacement.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceRange    Source = "range"
)

// RuleSet combines an optional explicit mapping table with an optional range
// translation. At least one must be present. When an ID is covered by both,
// the explicit entry wins.
type RuleSet struct {
	explicit *ExplicitMapping
	ranged   *RangeMapping
}

// NewRuleSet builds a rule set from the configured sources. Passing two nil
// sources is a configuration error: with no rules there is nothing to
// replace.
func NewRuleSet(explicit *ExplicitMapping, ranged *RangeMapping) (*RuleSet, error) {
	if explicit.Size() == 0 && ranged == nil {
		return nil, errors.NewConfigError(
			"no replacement rules configured: provide a mapping file or a VLAN range", nil)
	}
	return &RuleSet{explicit: explicit, ranged: ranged}, nil
}

// Resolve returns the replacement for id and the rule source that produced
// it. ok is false when no rule covers id.
func (rs *RuleSet) Resolve(id int) (newID int, src Source, ok bool) {
	if rs == nil {
		return 0, "", false
	}
	if newID, ok := rs.explicit.Lookup(id); ok {
		return newID, SourceExplicit, true
	}
	if newID, ok := rs.ranged.Translate(id); ok {
		return newID, SourceRange, true
	}
	return 0, "", false
}

// Explicit returns the explicit mapping table, possibly nil.
func (rs *RuleSet) Explicit() *ExplicitMapping {
	if rs == nil {
		return nil
	}
	return rs.explicit
}

// Range returns the range translation, possibly nil.
func (rs *RuleSet) Range() *RangeMapping {
	if rs == nil {
		return nil
	}
	return rs.ranged
}

// HasExplicit reports whether an explicit mapping table is configured.
func (rs *RuleSet) HasExplicit() bool {
	return rs != nil && rs.explicit.Size() > 0
}

// HasRange reports whether a range translation is configured.
func (rs *RuleSet) HasRange() bool {
	return rs != nil && rs.ranged != nil
}
