// Package proto provides named registries of shared, immutable prototypes.
// A library is populated once at start-up and read-only afterwards, so it
// carries no locking.
package proto

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknown is the cause carried by a failed lookup.
var ErrUnknown = errors.New("unknown prototype")

// Library maps names to shared prototypes of kind P.
type Library[P any] struct {
	kind    string
	entries map[string]*P
}

// NewLibrary creates an empty library. kind names the prototype family
// ("tile", "decoration") in error messages.
func NewLibrary[P any](kind string) *Library[P] {
	return &Library[P]{
		kind:    kind,
		entries: make(map[string]*P),
	}
}

// Kind returns the prototype family name.
func (l *Library[P]) Kind() string {
	return l.kind
}

// Register inserts p under name, replacing any previous prototype.
// Holders of the previous pointer keep it; only later lookups see p.
func (l *Library[P]) Register(name string, p *P) {
	if p == nil {
		panic(fmt.Sprintf("proto: nil %s prototype %q", l.kind, name))
	}
	l.entries[name] = p
}

// Lookup returns the prototype registered under name.
// An unknown name is a content-authoring bug and panics.
func (l *Library[P]) Lookup(name string) *P {
	p, ok := l.entries[name]
	if !ok {
		panic(fmt.Errorf("proto: %w: %s %q", ErrUnknown, l.kind, name))
	}
	return p
}

// Find returns the prototype registered under name, if any.
func (l *Library[P]) Find(name string) (*P, bool) {
	p, ok := l.entries[name]
	return p, ok
}

// Get is like Find but reports a missing name as an error wrapping ErrUnknown.
func (l *Library[P]) Get(name string) (*P, error) {
	p, ok := l.entries[name]
	if !ok {
		return nil, fmt.Errorf("proto: %w: %s %q", ErrUnknown, l.kind, name)
	}
	return p, nil
}

// Names returns all registered names, sorted.
func (l *Library[P]) Names() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered prototypes.
func (l *Library[P]) Len() int {
	return len(l.entries)
}
