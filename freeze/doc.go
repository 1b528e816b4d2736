// Package freeze guards a mutable value behind a façade that becomes
// (fully or selectively) immutable the first time its hash is computed.
//
// Hash-keyed containers silently corrupt when a key mutates after
// insertion. Wrap resolves the value's own hash implementation once, at
// wrap time, and routes the fixed set of mutating operations through a
// guard that denies the protected ones after the first Hash call:
//
//	p := Person{Name: "Alice", Age: 30}
//	g, err := freeze.Wrap(&p)
//	...
//	g.Set("Age", 31) // allowed, not hashed yet
//	g.Hash()         // freezes the instance
//	g.Set("Age", 32) // denied with *MutationError
//
// Protection defaults to every field and container operation. It can be
// restricted to named fields with WithProtected, extended back over
// container operations with WithProtectedItems, and WithDebug records
// the call site of the freezing Hash call for later denial messages.
//
// The façade never alters the wrapped value's own hash or equality
// semantics and never copies it; reads, comparisons, printing and
// iteration go to the value itself, untouched.
package freeze
