// Package guard holds the allow/deny decision consulted by every
// intercepted mutating operation of a frozen-capable wrapper.
//
// The guard is a stateless predicate: it reads the per-instance frozen
// flag and the immutable protection configuration passed to it, and never
// records anything itself.
package guard

import "lazy-freeze/utils"

type DecisionEnum int

const (
	Allow DecisionEnum = iota
	Deny
)

// Config is the protection configuration fixed at wrap time. It is
// immutable afterwards and safe to share read-only across instances.
type Config struct {
	// All protects every field and container operation once frozen.
	All bool
	// Fields restricts protection to the named fields when All is false.
	Fields utils.Set[string]
	// Items extends a selective field list to container and in-place
	// operations, which carry no field name and would otherwise pass.
	Items bool
}

// ProtectAll is the default configuration: everything is denied once
// frozen.
func ProtectAll() Config { return Config{All: true} }

// ProtectFields denies only the named fields once frozen; every other
// field stays writable indefinitely.
func ProtectFields(fields ...string) Config {
	return Config{Fields: utils.NewSet(fields...)}
}

// Result is the outcome of a guard evaluation.
type Result struct {
	Decision DecisionEnum
	// Reason phrases the denied operation for error messages, e.g.
	// `modify attribute "Age" of`. Empty on allow.
	Reason string
}

// Allowed returns true if the decision permits the operation.
func (r Result) Allowed() bool { return r.Decision == Allow }

// Evaluate decides whether a mutating operation may proceed.
//
// detail names the field for field-scoped operations; for item operations
// it carries the rendered key and is used only for the denial phrase,
// never for protection matching. Denial happens iff the instance is
// frozen and the operation falls under the configured protection:
// everything under All, listed fields for field-scoped operations, and
// container/in-place operations only under All or Items.
func Evaluate(frozen bool, cfg Config, detail string, op OpEnum) Result {
	if !frozen {
		return Result{Decision: Allow}
	}

	protected := cfg.All
	if !protected {
		if op.FieldScoped() {
			protected = cfg.Fields.Has(detail)
		} else {
			protected = cfg.Items
		}
	}

	if !protected {
		return Result{Decision: Allow}
	}

	return Result{Decision: Deny, Reason: op.Phrase(detail)}
}
