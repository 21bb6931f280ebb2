package collections

import (
	"fmt"
	"sync"
)

// MethodFunc is the signature of a named capability stored in a [MethodSet].
type MethodFunc func(args ...any) any

// Invoker is implemented by elements that expose named capabilities to
// [Invoke]. Implementations return an error wrapping [ErrMethodNotFound]
// when name is unknown.
type Invoker interface {
	Invoke(name string, args ...any) (any, error)
}

// MethodSet is a goroutine-safe registry of named capabilities. It
// implements [Invoker], so a MethodSet (or a type embedding one) can be the
// element type of a Sequence passed to [Invoke].
//
//	greeter := collections.NewMethodSet()
//	greeter.Register("hello", func(args ...any) any { return "hello " + args[0].(string) })
//	out, _ := collections.Invoke(collections.Of(greeter),
//	    collections.Named[*collections.MethodSet, string]("hello"), "bob")
type MethodSet struct {
	mu      sync.RWMutex
	methods map[string]MethodFunc
}

// NewMethodSet returns an empty MethodSet.
func NewMethodSet() *MethodSet {
	return &MethodSet{methods: make(map[string]MethodFunc)}
}

// Register adds fn under name, replacing any previous registration.
func (s *MethodSet) Register(name string, fn MethodFunc) *MethodSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.methods == nil {
		s.methods = make(map[string]MethodFunc)
	}
	s.methods[name] = fn
	return s
}

// Has reports whether a capability is registered under name.
func (s *MethodSet) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.methods[name]
	return ok
}

// Invoke calls the capability registered under name with args.
// Returns [ErrMethodNotFound] if nothing is registered under name.
func (s *MethodSet) Invoke(name string, args ...any) (any, error) {
	s.mu.RLock()
	fn, ok := s.methods[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMethodNotFound, name)
	}
	return fn(args...), nil
}
