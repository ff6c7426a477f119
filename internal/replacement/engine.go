// Package replacement provides a middleware-based VLAN ID rewriting engine.
// It implements a composable processing pipeline over the configuration text:
// rules are validated, every vlanid directive is located in one scan, matched
// tokens are spliced in a single pass, and the unmatched VLANs are reconciled
// into the report.
package replacement

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/petrosquatr/vlan-replacer/internal/errors"
	"github.com/petrosquatr/vlan-replacer/internal/report"
	"github.com/petrosquatr/vlan-replacer/internal/vlan"
)

// vlanDirective matches the Fortigate interface setting carrying a VLAN ID.
// Only the numeric token is rewritten; the surrounding text never changes.
var vlanDirective = regexp.MustCompile(`set vlanid (\d+)`)

// match records one located directive: the bounds of the numeric token
// within the input and the parsed VLAN ID.
type match struct {
	tokenStart int
	tokenEnd   int
	id         int
}

// Result contains the complete outcome of rewriting one configuration.
type Result struct {
	Output   string
	Report   *report.Report
	Modified bool
}

// Middleware defines a processing step in the replacement pipeline.
type Middleware func(ProcessContext) ProcessContext

// ProcessContext carries state through the replacement pipeline. Each stage
// reads what earlier stages produced and fills in its own part; a stage that
// sets Err aborts the run.
type ProcessContext struct {
	Rules   *vlan.RuleSet
	Input   string
	Matches []match
	Output  string
	Report  *report.Report
	Err     error
}

// Engine rewrites VLAN IDs using a middleware pipeline. The pipeline keeps
// scanning, splicing and accounting separated while sharing one pass over
// the input.
type Engine struct {
	middleware []Middleware
}

// NewEngine creates an engine with the standard pipeline: rule validation,
// directive scan, token rewrite, unmatched reconciliation.
func NewEngine() *Engine {
	engine := &Engine{
		middleware: []Middleware{},
	}

	engine.Use(validateRulesMiddleware)
	engine.Use(scanMiddleware)
	engine.Use(rewriteMiddleware)
	engine.Use(reconcileMiddleware)

	return engine
}

// Use adds a middleware to the processing pipeline.
func (e *Engine) Use(middleware Middleware) {
	e.middleware = append(e.middleware, middleware)
}

// Process rewrites every matched VLAN ID in input according to rules.
// The input is read once; all text outside replaced tokens is preserved
// byte for byte. The returned report carries each substitution in match
// order plus the reconciled unmatched sets.
func (e *Engine) Process(input string, rules *vlan.RuleSet) (*Result, error) {
	ctx := ProcessContext{
		Rules:  rules,
		Input:  input,
		Output: input,
		Report: report.New(),
	}

	for _, mw := range e.middleware {
		ctx = mw(ctx)
		if ctx.Err != nil {
			return nil, ctx.Err
		}
	}

	return &Result{
		Output:   ctx.Output,
		Report:   ctx.Report,
		Modified: ctx.Report.HasChanges(),
	}, nil
}

func validateRulesMiddleware(ctx ProcessContext) ProcessContext {
	if ctx.Rules == nil || (!ctx.Rules.HasExplicit() && !ctx.Rules.HasRange()) {
		ctx.Err = errors.NewConfigError(
			"no replacement rules configured: provide a mapping file or a VLAN range", nil)
	}
	return ctx
}

// scanMiddleware locates every vlanid directive and parses its numeric
// token. Digit runs too large for an int are skipped: they cannot name a
// VLAN and are left untouched by the rewrite stage.
func scanMiddleware(ctx ProcessContext) ProcessContext {
	indexes := vlanDirective.FindAllStringSubmatchIndex(ctx.Input, -1)
	if len(indexes) == 0 {
		return ctx
	}

	ctx.Matches = make([]match, 0, len(indexes))
	for _, idx := range indexes {
		tokenStart, tokenEnd := idx[2], idx[3]
		id, err := strconv.Atoi(ctx.Input[tokenStart:tokenEnd])
		if err != nil {
			continue
		}
		ctx.Matches = append(ctx.Matches, match{
			tokenStart: tokenStart,
			tokenEnd:   tokenEnd,
			id:         id,
		})
	}

	return ctx
}

// rewriteMiddleware splices the replacement IDs into the output in one pass,
// recording each substitution. Matches no rule covers are copied through
// unchanged.
func rewriteMiddleware(ctx ProcessContext) ProcessContext {
	if len(ctx.Matches) == 0 {
		return ctx
	}

	var builder strings.Builder
	builder.Grow(len(ctx.Input))

	last := 0
	for _, m := range ctx.Matches {
		newID, src, ok := ctx.Rules.Resolve(m.id)
		if !ok {
			continue
		}
		builder.WriteString(ctx.Input[last:m.tokenStart])
		builder.WriteString(strconv.Itoa(newID))
		last = m.tokenEnd
		ctx.Report.Record(m.id, newID, src)
	}
	builder.WriteString(ctx.Input[last:])

	ctx.Output = builder.String()
	return ctx
}

// reconcileMiddleware feeds the set of seen VLAN IDs into the report so the
// requested-but-unmatched sets can be derived. Every scanned ID counts as
// seen, including ones resolved through the explicit table while also lying
// inside the old range.
func reconcileMiddleware(ctx ProcessContext) ProcessContext {
	seen := make(map[int]bool, len(ctx.Matches))
	for _, m := range ctx.Matches {
		seen[m.id] = true
	}
	ctx.Report.Reconcile(ctx.Rules, seen)
	return ctx
}

// ProcessReader rewrites content from an io.Reader, for callers that do not
// hold the whole configuration as a string.
func ProcessReader(reader io.Reader, rules *vlan.RuleSet) (*Result, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return NewEngine().Process(string(content), rules)
}
