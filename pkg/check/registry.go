package check

import (
	"fmt"
	"sync"
)

// globalRegistry is the single global registry for consistency rules.
// Unlike a map-backed registry, it preserves registration order: the rule
// sequence is also the execution and output order, which keeps reports
// reproducible across runs.
var globalRegistry = &Registry{
	index: make(map[string]int),
}

// Registry stores registered rules in registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []RuleDef
	index map[string]int // rule ID -> position in rules
}

// RuleDef is a data-driven rule definition. Rules are self-contained and
// order-independent; each carries its own static configuration (scope paths,
// expected keys, exemption lists) inside its Check closure.
type RuleDef struct {
	ID          string // Unique identifier, e.g., "LC01"
	Name        string // Human-readable name, e.g., "locale-extra-fields"
	Group       string // Report section, e.g., "i18n", "theme", "build"
	Description string // Human-readable description
	Check       Check  // The check function
}

// Check is the function signature for rule checks. A rule returns zero or
// more findings; it must not abort the run for a missing artifact.
type Check func(ctx *Context) []Finding

// Register adds a rule to the global registry. Call this from init()
// functions in rule packages. Registering a duplicate ID panics: the
// registry is defined once at process start and never mutated after.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if _, ok := globalRegistry.index[rule.ID]; ok {
		panic(fmt.Sprintf("check: duplicate rule ID %q", rule.ID))
	}
	globalRegistry.index[rule.ID] = len(globalRegistry.rules)
	globalRegistry.rules = append(globalRegistry.rules, rule)
}

// All returns all registered rules in registration order.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	out := make([]RuleDef, len(globalRegistry.rules))
	copy(out, globalRegistry.rules)
	return out
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	i, ok := globalRegistry.index[id]
	if !ok {
		return RuleDef{}, false
	}
	return globalRegistry.rules[i], true
}

// Groups returns the distinct rule groups in first-registration order.
func Groups() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	seen := make(map[string]bool)
	var groups []string
	for _, r := range globalRegistry.rules {
		if !seen[r.Group] {
			seen[r.Group] = true
			groups = append(groups, r.Group)
		}
	}
	return groups
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = nil
	globalRegistry.index = make(map[string]int)
}
