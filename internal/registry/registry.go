// Package registry is a thread-safe object registry for the native-interop
// surface spec §9 sketches: objects are stored behind opaque handles and
// can optionally be looked up by name.
//
// Grounded on original_source/crates/convex-ffi/src/registry.rs
// (Registry: AtomicU64 handle counter starting at 100, RwLock<HashMap>
// for objects and names, register/with_object/get_type/get_name/lookup/
// release/list_objects/count/clear), translated from Rust's
// Box<dyn Any + Send + Sync> type erasure to Go generics (registry.With
// takes the concrete type parameter at the call site instead of a runtime
// downcast) and from RwLock to sync.RWMutex.
package registry

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle identifies a registered object. Zero is the invalid handle.
type Handle uint64

// InvalidHandle is returned/compared against to detect a missing handle.
const InvalidHandle Handle = 0

// ObjectType discriminates what kind of domain object a handle refers to,
// mirroring the teacher's ObjectType enum.
type ObjectType int32

const (
	Unknown ObjectType = iota
	CurveType
	FixedBondType
	ZeroBondType
	FloatingRateNoteType
	CallableBondType
	CashFlowsType
	PriceResultType
	RiskResultType
	SpreadResultType
	YASResultType
)

// IsCurve reports whether t is the curve object type.
func (t ObjectType) IsCurve() bool { return t == CurveType }

// IsBond reports whether t is one of the bond variant object types.
func (t ObjectType) IsBond() bool {
	switch t {
	case FixedBondType, ZeroBondType, FloatingRateNoteType, CallableBondType:
		return true
	default:
		return false
	}
}

type entry struct {
	objectType ObjectType
	name       string
	uuid       uuid.UUID
	object     any
}

// Registry is a thread-safe store of domain objects addressable by
// Handle and, optionally, by name.
type Registry struct {
	nextHandle atomic.Uint64
	mu         sync.RWMutex
	objects    map[Handle]*entry
	names      map[string]Handle
}

// New returns an empty registry. Handles start at 100 for cleaner IDs in
// logs/handles (#100, #101, ...), per the teacher's convention.
func New() *Registry {
	r := &Registry{
		objects: make(map[Handle]*entry),
		names:   make(map[string]Handle),
	}
	r.nextHandle.Store(100)
	return r
}

// Register stores object under objectType, optionally named. If name is
// non-empty and an object with that name already exists, it is updated in
// place and its existing handle is returned; otherwise a fresh handle is
// minted.
func (r *Registry) Register(object any, objectType ObjectType, name string) Handle {
	if name != "" {
		r.mu.RLock()
		existing, ok := r.names[name]
		r.mu.RUnlock()
		if ok {
			r.mu.Lock()
			if e, ok := r.objects[existing]; ok {
				e.object = object
				e.objectType = objectType
				r.mu.Unlock()
				return existing
			}
			r.mu.Unlock()
		}
	}

	handle := Handle(r.nextHandle.Add(1) - 1) // fetch-then-increment; first call yields 100

	r.mu.Lock()
	r.objects[handle] = &entry{objectType: objectType, name: name, uuid: uuid.New(), object: object}
	if name != "" {
		r.names[name] = handle
	}
	r.mu.Unlock()

	return handle
}

// With looks up handle and, if present and of type T, invokes f with the
// stored object, returning f's result and true. Otherwise returns the zero
// value of R and false.
func With[T any, R any](r *Registry, handle Handle, f func(T) R) (R, bool) {
	var zero R
	r.mu.RLock()
	e, ok := r.objects[handle]
	r.mu.RUnlock()
	if !ok {
		return zero, false
	}
	obj, ok := e.object.(T)
	if !ok {
		return zero, false
	}
	return f(obj), true
}

// Type returns the object type stored at handle, or Unknown if absent.
func (r *Registry) Type(handle Handle) ObjectType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.objects[handle]
	if !ok {
		return Unknown
	}
	return e.objectType
}

// Name returns the name registered for handle, or "" if unnamed/absent.
func (r *Registry) Name(handle Handle) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.objects[handle]
	if !ok {
		return ""
	}
	return e.name
}

// UUID returns the stable identity token minted for handle at registration,
// for cross-process correlation independent of the process-local integer
// handle sequence.
func (r *Registry) UUID(handle Handle) (uuid.UUID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.objects[handle]
	if !ok {
		return uuid.UUID{}, false
	}
	return e.uuid, true
}

// Lookup returns the handle registered under name, if any.
func (r *Registry) Lookup(name string) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.names[name]
	return h, ok
}

// Release removes handle from the registry, returning true if it existed.
func (r *Registry) Release(handle Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.objects[handle]
	if !ok {
		return false
	}
	delete(r.objects, handle)
	if e.name != "" {
		delete(r.names, e.name)
	}
	return true
}

// ObjectSummary is one row of ListObjects' output.
type ObjectSummary struct {
	Handle Handle
	Type   ObjectType
	Name   string
}

// ListObjects returns a summary of every registered object, optionally
// filtered to a single ObjectType. Pass filter=nil for no filter.
func (r *Registry) ListObjects(filter *ObjectType) []ObjectSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []ObjectSummary
	for h, e := range r.objects {
		if filter != nil && *filter != e.objectType {
			continue
		}
		out = append(out, ObjectSummary{Handle: h, Type: e.objectType, Name: e.name})
	}
	return out
}

// Count returns the number of registered objects.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

// Clear removes every registered object.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects = make(map[Handle]*entry)
	r.names = make(map[string]Handle)
}
