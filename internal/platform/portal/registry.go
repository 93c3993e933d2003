// internal/platform/portal/registry.go

// Package portal holds a name-keyed registry of renderable payloads that the
// client shell projects outside their declaring position in the view tree
// (bottom sheets, overlays). The registry stores identity and lifecycle only;
// how a payload is drawn is the consumer's business.
package portal

import (
	"sort"
	"strings"
	"sync"
)

// Entry is one registered slot: a unique name and its opaque payload.
type Entry struct {
	Name    string `json:"name"`
	Payload any    `json:"payload"`
}

// Registry is an explicitly constructed store (no package-level singleton;
// the composition root owns one and injects it). All operations are
// mutex-guarded so concurrent callers observe fully-settled state.
type Registry struct {
	mu         sync.RWMutex
	components map[string]any
	subs       map[int]func([]Entry)
	nextSubID  int
}

func NewRegistry() *Registry {
	return &Registry{
		components: map[string]any{},
		subs:       map[int]func([]Entry){},
	}
}

// AddComponent inserts or overwrites the entry for name (last write wins).
// An empty name is ignored.
func (r *Registry) AddComponent(name string, payload any) {
	if r == nil {
		return
	}

	key := strings.TrimSpace(name)
	if key == "" {
		return
	}

	r.mu.Lock()
	r.components[key] = payload
	r.mu.Unlock()

	r.notify()
}

// RemoveComponent deletes the entry for name; no-op when absent.
func (r *Registry) RemoveComponent(name string) {
	if r == nil {
		return
	}

	key := strings.TrimSpace(name)
	if key == "" {
		return
	}

	r.mu.Lock()
	_, existed := r.components[key]
	delete(r.components, key)
	r.mu.Unlock()

	if existed {
		r.notify()
	}
}

// Components returns a snapshot of the registry at call time, sorted by name
// for stable output.
func (r *Registry) Components() []Entry {
	if r == nil {
		return []Entry{}
	}

	r.mu.RLock()
	out := make([]Entry, 0, len(r.components))
	for name, payload := range r.components {
		out = append(out, Entry{Name: name, Payload: payload})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Subscribe registers fn to be called with a fresh snapshot after every
// mutation. The returned func unsubscribes; calling it twice is safe.
// Non-reactive consumers (tests, services) can observe changes without a
// UI framework's re-render cycle.
func (r *Registry) Subscribe(fn func([]Entry)) (unsubscribe func()) {
	if r == nil || fn == nil {
		return func() {}
	}

	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// notify invokes subscribers outside the lock with a settled snapshot.
func (r *Registry) notify() {
	r.mu.RLock()
	fns := make([]func([]Entry), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()

	if len(fns) == 0 {
		return
	}

	snap := r.Components()
	for _, fn := range fns {
		fn(snap)
	}
}
