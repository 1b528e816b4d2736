package freeze

import "lazy-freeze/guard"

// Option configures a Wrap call.
type Option func(*wrapConfig)

type wrapConfig struct {
	debug     bool
	cacheHash bool
	selective bool
	fields    []string
	items     bool
}

// WithDebug captures the call site of the freezing Hash call, plus a dump
// of the value as it froze, and appends the call site to later denial
// messages.
func WithDebug() Option {
	return func(c *wrapConfig) { c.debug = true }
}

// WithProtected restricts protection to the named fields; every other
// field stays writable after the hash is taken. Without this option every
// field and container operation is protected.
func WithProtected(fields ...string) Option {
	return func(c *wrapConfig) {
		c.selective = true
		c.fields = append(c.fields, fields...)
	}
}

// WithProtectedItems extends a selective field list to item and in-place
// operations. Those carry no field name, so under WithProtected alone
// they pass through once frozen; this option denies them instead. It has
// no effect without WithProtected.
func WithProtectedItems() Option {
	return func(c *wrapConfig) { c.items = true }
}

// WithHashCache returns the first computed hash from every later Hash
// call instead of delegating again. Only safe when everything the hash
// reads is protected.
func WithHashCache() Option {
	return func(c *wrapConfig) { c.cacheHash = true }
}

func (c *wrapConfig) guardConfig() (guard.Config, error) {
	if !c.selective {
		return guard.ProtectAll(), nil
	}

	if len(c.fields) == 0 {
		return guard.Config{}, ErrNoProtectedFields
	}

	cfg := guard.ProtectFields(c.fields...)
	cfg.Items = c.items

	return cfg, nil
}
