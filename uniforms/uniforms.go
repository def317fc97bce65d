// Package uniforms holds the live uniform set of the grid shader:
// named scalar/vector/boolean values, each independently mutable at
// any time without touching the compiled program.
//
// Writes land in a pending area; Apply promotes them to the live
// values once per frame. The draw call only ever sees applied values,
// so configuration updates never alias with an in-flight frame.
package uniforms

import (
	"sort"
	"sync"
)

// Kind discriminates the boxed value types a uniform entry can hold.
type Kind uint8

const (
	Float Kind = iota
	Vec2
	Vec3
	Bool
)

// Value is one boxed uniform entry.
type Value struct {
	Kind    Kind
	X, Y, Z float64
	B       bool
}

// Set maps uniform names to boxed values with pending-write semantics.
// Safe for concurrent use; event handlers write, the frame loop applies.
type Set struct {
	mu      sync.Mutex
	live    map[string]Value
	pending map[string]Value
}

func NewSet() *Set {
	return &Set{
		live:    make(map[string]Value),
		pending: make(map[string]Value),
	}
}

func (s *Set) put(name string, v Value) {
	s.mu.Lock()
	s.pending[name] = v
	s.mu.Unlock()
}

func (s *Set) SetFloat(name string, v float64) {
	s.put(name, Value{Kind: Float, X: v})
}

func (s *Set) SetVec2(name string, x, y float64) {
	s.put(name, Value{Kind: Vec2, X: x, Y: y})
}

func (s *Set) SetVec3(name string, x, y, z float64) {
	s.put(name, Value{Kind: Vec3, X: x, Y: y, Z: z})
}

func (s *Set) SetBool(name string, v bool) {
	s.put(name, Value{Kind: Bool, B: v})
}

// Apply promotes all pending writes to the live values and returns the
// names whose live value changed, sorted. Called once per frame before
// the draw.
func (s *Set) Apply() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed []string
	for name, v := range s.pending {
		if cur, ok := s.live[name]; !ok || cur != v {
			s.live[name] = v
			changed = append(changed, name)
		}
		delete(s.pending, name)
	}
	sort.Strings(changed)
	return changed
}

// Get returns the applied value of a uniform.
func (s *Set) Get(name string) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.live[name]
	return v, ok
}

// Float returns the applied scalar value of a uniform, 0 if absent.
func (s *Set) Float(name string) float64 {
	v, _ := s.Get(name)
	return v.X
}

// Bool returns the applied boolean value of a uniform, false if absent.
func (s *Set) Bool(name string) bool {
	v, _ := s.Get(name)
	return v.B
}

// Names returns all applied uniform names, sorted.
func (s *Set) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.live))
	for name := range s.live {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
