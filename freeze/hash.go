package freeze

// Hasher is the hashing contract a wrapped type must provide. The façade
// never computes hashes itself; it delegates to this method, which should
// be consistent with the type's equality, and only observes its first
// completion.
type Hasher interface {
	Hash() uint64
}

// Hash computes the wrapped value's hash and, on first completion,
// freezes the instance. The value always comes from the resolved
// implementation and is recomputed on every call unless WithHashCache
// was given. A panic inside the implementation propagates unchanged and
// leaves the instance mutable.
//
// A hash implementation that mutates the value it is hashing is
// undefined behavior.
func (g *Guarded[T]) Hash() uint64 {
	if g.cache && g.frozen.Load() {
		return g.cached.Load()
	}

	value := g.hasher.Hash()

	if g.cache {
		g.cached.Store(value)
	}

	if g.debug && g.origin.Load() == nil {
		g.origin.Store(captureOrigin(1, *g.target))
	}

	g.frozen.Store(true)

	return value
}
