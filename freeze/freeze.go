package freeze

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"lazy-freeze/guard"
)

// Guarded is the forwarding façade produced by Wrap. It holds the
// original value and routes every mutating operation through the guard;
// reads and the hash computation itself delegate to the value untouched.
//
// The per-instance frozen flag is atomic, so concurrent first hashes
// settle on frozen == true without a data race; which of the racing
// callers ends up in the debug origin is not specified.
type Guarded[T any] struct {
	target *T
	hasher Hasher
	cfg    guard.Config
	shape  ShapeEnum
	tname  string
	debug  bool
	cache  bool

	frozen atomic.Bool
	origin atomic.Pointer[Origin]
	cached atomic.Uint64
}

// Wrap augments target with lazy-freeze protection. The returned façade
// allows every operation until the first Hash call and denies protected
// mutations afterwards with a *MutationError.
//
// The effective hash implementation is resolved here, once: target must
// satisfy Hasher with a value or pointer receiver, declared on the type
// itself or promoted from an embedded type. Targets without one are
// rejected with ErrNotHashable.
func Wrap[T any](target *T, opts ...Option) (*Guarded[T], error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	var wcfg wrapConfig
	for _, o := range opts {
		o(&wcfg)
	}

	cfg, err := wcfg.guardConfig()
	if err != nil {
		return nil, err
	}

	rtype := reflect.TypeFor[T]()

	hasher, ok := any(target).(Hasher)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotHashable, typeName(rtype))
	}

	return &Guarded[T]{
		target: target,
		hasher: hasher,
		cfg:    cfg,
		shape:  shapeOf(rtype),
		tname:  typeName(rtype),
		debug:  wcfg.debug,
		cache:  wcfg.cacheHash,
	}, nil
}

// MustWrap is Wrap that panics on a construction error, for fixtures and
// package-level values.
func MustWrap[T any](target *T, opts ...Option) *Guarded[T] {
	g, err := Wrap(target, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// Value returns the wrapped instance for reads and comparisons. The
// façade intercepts only mutations routed through it; the value itself
// stays the caller's own object.
func (g *Guarded[T]) Value() *T { return g.target }

// Frozen reports whether the first hash has been taken.
func (g *Guarded[T]) Frozen() bool { return g.frozen.Load() }

// Origin returns the freeze-time capture, nil before freezing or when
// the wrapper was built without WithDebug.
func (g *Guarded[T]) Origin() *Origin { return g.origin.Load() }

// Shape reports how the wrapped value was classified at wrap time.
func (g *Guarded[T]) Shape() ShapeEnum { return g.shape }

// check consults the guard; nil means the operation may proceed.
func (g *Guarded[T]) check(detail string, op guard.OpEnum) error {
	res := guard.Evaluate(g.frozen.Load(), g.cfg, detail, op)
	if res.Allowed() {
		return nil
	}

	return &MutationError{Type: g.tname, Op: op, Detail: detail, Origin: g.origin.Load()}
}

// Set assigns value to the named field of a struct target.
func (g *Guarded[T]) Set(field string, value any) error {
	if g.shape != ShapeStruct {
		return fmt.Errorf("%w: Set on %s", ErrOpNotSupported, g.shape)
	}

	if err := g.check(field, guard.OpSetField); err != nil {
		return err
	}

	fv, err := g.settableField(field)
	if err != nil {
		return err
	}

	rv, err := coerce(value, fv.Type())
	if err != nil {
		return fmt.Errorf("field %s.%s: %w", g.tname, field, err)
	}

	fv.Set(rv)

	return nil
}

// Clear resets the named field of a struct target to its zero value, the
// closest analog of attribute deletion on an open object.
func (g *Guarded[T]) Clear(field string) error {
	if g.shape != ShapeStruct {
		return fmt.Errorf("%w: Clear on %s", ErrOpNotSupported, g.shape)
	}

	if err := g.check(field, guard.OpClearField); err != nil {
		return err
	}

	fv, err := g.settableField(field)
	if err != nil {
		return err
	}

	fv.Set(reflect.Zero(fv.Type()))

	return nil
}

// Get reads the named field of a struct target. Reads are never guarded.
func (g *Guarded[T]) Get(field string) (any, error) {
	if g.shape != ShapeStruct {
		return nil, fmt.Errorf("%w: Get on %s", ErrOpNotSupported, g.shape)
	}

	fv := reflect.ValueOf(g.target).Elem().FieldByName(field)
	if !fv.IsValid() || !fv.CanInterface() {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoSuchField, g.tname, field)
	}

	return fv.Interface(), nil
}

// SetItem assigns an element of a map or slice target. Slice keys are
// int indexes. The operation is not attributable to a single field; under
// a selective protection list it passes through unless WithProtectedItems
// was given.
func (g *Guarded[T]) SetItem(key, value any) error {
	switch g.shape {
	default:
		return fmt.Errorf("%w: SetItem on %s", ErrOpNotSupported, g.shape)
	case ShapeMap, ShapeSlice:
	}

	if err := g.check(fmt.Sprint(key), guard.OpSetItem); err != nil {
		return err
	}

	tv := reflect.ValueOf(g.target).Elem()

	if g.shape == ShapeMap {
		if tv.IsNil() {
			return fmt.Errorf("cannot set item of a nil %s", g.tname)
		}

		kv, err := coerce(key, tv.Type().Key())
		if err != nil {
			return fmt.Errorf("%s key: %w", g.tname, err)
		}

		vv, err := coerce(value, tv.Type().Elem())
		if err != nil {
			return fmt.Errorf("%s value: %w", g.tname, err)
		}

		tv.SetMapIndex(kv, vv)

		return nil
	}

	i, err := sliceIndex(key, tv.Len())
	if err != nil {
		return err
	}

	vv, err := coerce(value, tv.Type().Elem())
	if err != nil {
		return fmt.Errorf("%s element: %w", g.tname, err)
	}

	tv.Index(i).Set(vv)

	return nil
}

// DeleteItem removes a map key, or splices an element out of a slice.
func (g *Guarded[T]) DeleteItem(key any) error {
	switch g.shape {
	default:
		return fmt.Errorf("%w: DeleteItem on %s", ErrOpNotSupported, g.shape)
	case ShapeMap, ShapeSlice:
	}

	if err := g.check(fmt.Sprint(key), guard.OpDeleteItem); err != nil {
		return err
	}

	tv := reflect.ValueOf(g.target).Elem()

	if g.shape == ShapeMap {
		if tv.IsNil() {
			// deleting from a nil map is a no-op, same as the builtin
			return nil
		}

		kv, err := coerce(key, tv.Type().Key())
		if err != nil {
			return fmt.Errorf("%s key: %w", g.tname, err)
		}

		tv.SetMapIndex(kv, reflect.Value{})

		return nil
	}

	i, err := sliceIndex(key, tv.Len())
	if err != nil {
		return err
	}

	spliced := reflect.AppendSlice(tv.Slice(0, i), tv.Slice(i+1, tv.Len()))
	tv.Set(spliced)

	return nil
}

// Append grows a slice target in place, the add-and-assign analog. Either
// every value is appended or none is.
func (g *Guarded[T]) Append(values ...any) error {
	if g.shape != ShapeSlice {
		return fmt.Errorf("%w: Append on %s", ErrOpNotSupported, g.shape)
	}

	if err := g.check("", guard.OpInPlace); err != nil {
		return err
	}

	tv := reflect.ValueOf(g.target).Elem()

	grown := tv
	for _, v := range values {
		vv, err := coerce(v, tv.Type().Elem())
		if err != nil {
			return fmt.Errorf("%s element: %w", g.tname, err)
		}

		grown = reflect.Append(grown, vv)
	}

	tv.Set(grown)

	return nil
}

// Mutate runs fn against the wrapped value, for updates that do not fit
// the field and item operations. The guard treats it as a whole-value
// in-place update.
func (g *Guarded[T]) Mutate(fn func(*T)) error {
	if err := g.check("", guard.OpInPlace); err != nil {
		return err
	}

	fn(g.target)

	return nil
}

func (g *Guarded[T]) settableField(field string) (reflect.Value, error) {
	fv := reflect.ValueOf(g.target).Elem().FieldByName(field)
	if !fv.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s", ErrNoSuchField, g.tname, field)
	}

	if !fv.CanSet() {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s is unexported", ErrNoSuchField, g.tname, field)
	}

	return fv, nil
}

func coerce(v any, rtype reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(rtype), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(rtype) {
		return reflect.Value{}, fmt.Errorf("%w: want %s, got %T", ErrBadValue, rtype, v)
	}

	return rv, nil
}

func sliceIndex(key any, length int) (int, error) {
	i, ok := key.(int)
	if !ok {
		return 0, fmt.Errorf("%w: slice index must be int, got %T", ErrBadValue, key)
	}

	if i < 0 || i >= length {
		return 0, fmt.Errorf("index %d out of range with length %d", i, length)
	}

	return i, nil
}
