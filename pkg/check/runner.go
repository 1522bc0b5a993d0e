package check

// Runner executes rules strictly sequentially, in registry order, feeding
// each rule's findings into an append-only sink. A failing rule never stops
// the run: every independent rule still executes and reports its own result.
type Runner struct {
	ctx      *Context
	rules    []RuleDef
	disabled map[string]bool
	only     map[string]bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRules overrides the rule list (default: the global registry).
func WithRules(rules []RuleDef) RunnerOption {
	return func(r *Runner) { r.rules = rules }
}

// WithDisabled skips the given rule IDs. Skipping never reorders the
// remaining rules.
func WithDisabled(ids []string) RunnerOption {
	return func(r *Runner) {
		for _, id := range ids {
			r.disabled[id] = true
		}
	}
}

// WithOnly restricts the run to the given rule IDs.
func WithOnly(ids []string) RunnerOption {
	return func(r *Runner) {
		for _, id := range ids {
			r.only[id] = true
		}
	}
}

// NewRunner creates a runner over the global registry.
func NewRunner(ctx *Context, opts ...RunnerOption) *Runner {
	r := &Runner{
		ctx:      ctx,
		disabled: make(map[string]bool),
		only:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rules == nil {
		r.rules = All()
	}
	return r
}

// Section is one numbered block of the report: a rule group with the
// findings its rules produced, in execution order.
type Section struct {
	Index    int       `json:"index"`
	Group    string    `json:"group"`
	Findings []Finding `json:"findings"`
}

// Result is the outcome of a full run.
type Result struct {
	Sections []Section `json:"sections"`
	Report   Report    `json:"report"`
}

// Run executes the selected rules and aggregates their findings. Sections
// follow group boundaries in registry order; the report is folded from the
// sink after all rules have run.
func (r *Runner) Run() *Result {
	sink := &Sink{}
	result := &Result{}

	var current *Section
	for _, rule := range r.rules {
		if r.skipped(rule.ID) {
			continue
		}
		if current == nil || current.Group != rule.Group {
			result.Sections = append(result.Sections, Section{
				Index: len(result.Sections) + 1,
				Group: rule.Group,
			})
			current = &result.Sections[len(result.Sections)-1]
		}
		findings := rule.Check(r.ctx)
		sink.Add(findings...)
		current.Findings = append(current.Findings, findings...)
	}

	result.Report = sink.Report()
	return result
}

func (r *Runner) skipped(id string) bool {
	if r.disabled[id] {
		return true
	}
	if len(r.only) > 0 && !r.only[id] {
		return true
	}
	return false
}
