// Package report accumulates replacement records during a run and renders
// the final human-readable summary: totals, per-source replacement pairs,
// and the requested VLANs that never appeared in the configuration.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/petrosquatr/vlan-replacer/internal/vlan"
)

// Change represents a single VLAN ID substitution with the rule source that
// produced it. Records keep the order in which matches were found.
type Change struct {
	OldID  int         `json:"old_id"`
	NewID  int         `json:"new_id"`
	Source vlan.Source `json:"source"`
}

// Report tracks every substitution of a run plus the reconciled sets of
// requested-but-unmatched VLANs. A VLAN counts as matched when it was seen
// in the text at all, whichever rule ended up replacing it.
type Report struct {
	changes         []Change
	requested       *vlan.RuleSet
	missingExplicit []int
	missingRange    []int
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Record appends one substitution in match order.
func (r *Report) Record(oldID, newID int, src vlan.Source) {
	r.changes = append(r.changes, Change{OldID: oldID, NewID: newID, Source: src})
}

// Reconcile computes the unmatched sets from the rule set and the IDs seen
// as pattern matches. Explicit keys never seen and every ID of the old range
// never seen are collected in ascending order. An ID replaced through the
// explicit table still counts as seen for the range accounting.
func (r *Report) Reconcile(rules *vlan.RuleSet, seen map[int]bool) {
	r.requested = rules
	r.missingExplicit = nil
	r.missingRange = nil

	if rules.HasExplicit() {
		for _, id := range rules.Explicit().IDs() {
			if !seen[id] {
				r.missingExplicit = append(r.missingExplicit, id)
			}
		}
	}
	if rules.HasRange() {
		rng := rules.Range()
		for id := rng.OldStart(); id <= rng.OldEnd(); id++ {
			if !seen[id] {
				r.missingRange = append(r.missingRange, id)
			}
		}
	}
}

// Changes returns all substitution records in match order.
func (r *Report) Changes() []Change {
	return r.changes
}

// HasChanges reports whether at least one substitution was recorded.
func (r *Report) HasChanges() bool {
	return len(r.changes) > 0
}

// TotalReplacements returns the number of substitutions performed, counting
// repeated occurrences of the same VLAN separately.
func (r *Report) TotalReplacements() int {
	return len(r.changes)
}

// DistinctOldIDs returns how many different VLAN IDs were replaced. This is
// the headline number of the summary.
func (r *Report) DistinctOldIDs() int {
	distinct := make(map[int]bool, len(r.changes))
	for _, c := range r.changes {
		distinct[c.OldID] = true
	}
	return len(distinct)
}

// CountBySource returns the number of substitutions a rule source produced,
// counting repeated occurrences separately.
func (r *Report) CountBySource(src vlan.Source) int {
	count := 0
	for _, c := range r.changes {
		if c.Source == src {
			count++
		}
	}
	return count
}

// DistinctPairs returns one old -> new pair per distinct original ID for the
// given source, sorted by original ID.
func (r *Report) DistinctPairs(src vlan.Source) []Change {
	byOld := make(map[int]int)
	for _, c := range r.changes {
		if c.Source == src {
			byOld[c.OldID] = c.NewID
		}
	}

	pairs := make([]Change, 0, len(byOld))
	for oldID, newID := range byOld {
		pairs = append(pairs, Change{OldID: oldID, NewID: newID, Source: src})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].OldID < pairs[j].OldID })
	return pairs
}

// MissingExplicit returns the explicit-mapping keys never seen in the text,
// ascending. Valid after Reconcile.
func (r *Report) MissingExplicit() []int {
	return r.missingExplicit
}

// MissingRange returns the old-range IDs never seen in the text, ascending.
// Valid after Reconcile.
func (r *Report) MissingRange() []int {
	return r.missingRange
}

// Requested returns the rule set this report was reconciled against.
func (r *Report) Requested() *vlan.RuleSet {
	return r.requested
}

// Printer renders a report as plain text. All lines are written to a single
// writer so output can go to stdout or a capture buffer alike.
type Printer struct {
	writer io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// Print writes the full replacement summary: the headline count, the
// explicit and range pair sections with their truncation rules, and the
// not-found section for every configured rule source.
func (p *Printer) Print(rep *Report) error {
	if rep.HasChanges() {
		fmt.Fprintf(p.writer, "\nTotal replacements: %d VLAN IDs\n", rep.DistinctOldIDs())
	} else {
		fmt.Fprintf(p.writer, "\nNo VLAN IDs were replaced.\n")
	}

	if pairs := rep.DistinctPairs(vlan.SourceExplicit); len(pairs) > 0 {
		fmt.Fprintf(p.writer, "\nIndividual mappings applied: %d\n", len(pairs))
		p.printPairsCompact(pairs)
	}
	if missing := rep.MissingExplicit(); len(missing) > 0 {
		fmt.Fprintf(p.writer, "\nVLANs in mapping file not found in config: %d\n", len(missing))
		p.printIDList(missing)
	}

	if pairs := rep.DistinctPairs(vlan.SourceRange); len(pairs) > 0 {
		fmt.Fprintf(p.writer, "\nRange-based replacements: %d\n", len(pairs))
		p.printPairsWindowed(pairs)
	}
	if missing := rep.MissingRange(); len(missing) > 0 {
		rng := rep.Requested().Range()
		fmt.Fprintf(p.writer, "\nVLANs in range %d-%d not found in config: %d\n",
			rng.OldStart(), rng.OldEnd(), len(missing))
		p.printIDList(missing)
	}

	return nil
}

// printPairsCompact lists up to 10 pairs, then a single "and N more" line.
func (p *Printer) printPairsCompact(pairs []Change) {
	if len(pairs) <= 10 {
		for _, pair := range pairs {
			fmt.Fprintf(p.writer, "  %d -> %d\n", pair.OldID, pair.NewID)
		}
		return
	}
	for _, pair := range pairs[:10] {
		fmt.Fprintf(p.writer, "  %d -> %d\n", pair.OldID, pair.NewID)
	}
	fmt.Fprintf(p.writer, "  ... and %d more\n", len(pairs)-10)
}

// printPairsWindowed shows both ends of long runs: everything up to 20
// pairs behaves like the compact form, beyond that the first and last 10
// frame an elision count.
func (p *Printer) printPairsWindowed(pairs []Change) {
	if len(pairs) <= 20 {
		p.printPairsCompact(pairs)
		return
	}
	fmt.Fprintf(p.writer, "First 10:\n")
	for _, pair := range pairs[:10] {
		fmt.Fprintf(p.writer, "  %d -> %d\n", pair.OldID, pair.NewID)
	}
	fmt.Fprintf(p.writer, "  ... (%d more replacements)\n", len(pairs)-20)
	fmt.Fprintf(p.writer, "Last 10:\n")
	for _, pair := range pairs[len(pairs)-10:] {
		fmt.Fprintf(p.writer, "  %d -> %d\n", pair.OldID, pair.NewID)
	}
}

// printIDList prints a comma-separated ID list, eliding the middle when it
// would run past 20 entries.
func (p *Printer) printIDList(ids []int) {
	if len(ids) <= 20 {
		fmt.Fprintf(p.writer, "  %s\n", joinIDs(ids))
		return
	}
	fmt.Fprintf(p.writer, "  %s, ... %s\n", joinIDs(ids[:10]), joinIDs(ids[len(ids)-10:]))
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
