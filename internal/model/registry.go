package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Factory builds a course of one variant. extra is the variant-specific
// input as a user types it: a comma separated list of languages or tools,
// or the name of a science field.
type Factory func(info Info, extra string) (*Course, error)

// Registry maps variant type names to their factories.
//
// Names are case-folded, so "ProgrammingCourse" and "programmingcourse"
// resolve to the same entry. Nothing is registered implicitly: use
// DefaultRegistry for the built-in variants or Register your own.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the three built-in variants.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, entry := range builtins {
		if err := r.Register(entry.kind.TypeName(), entry.factory); err != nil {
			panic(err)
		}
	}
	return r
}

var builtins = []struct {
	kind    Kind
	factory Factory
}{
	{KindProgramming, func(info Info, extra string) (*Course, error) {
		return NewProgrammingCourse(info, SplitList(extra))
	}},
	{KindDesign, func(info Info, extra string) (*Course, error) {
		return NewDesignCourse(info, SplitList(extra))
	}},
	{KindScience, func(info Info, extra string) (*Course, error) {
		return NewScienceCourse(info, strings.TrimSpace(extra))
	}},
}

// Register adds a factory under name. Empty and duplicate names are rejected.
func (r *Registry) Register(name string, f Factory) error {
	key := registryKey(name)
	if key == "" {
		return errors.New("registry: empty variant name")
	}
	if f == nil {
		return fmt.Errorf("registry: nil factory for %q", name)
	}
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("registry: variant %q already registered", name)
	}
	r.factories[key] = f
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[registryKey(name)]
	return f, ok
}

// Build creates a course of the given kind through its registered factory.
func (r *Registry) Build(kind Kind, info Info, extra string) (*Course, error) {
	f, ok := r.Lookup(kind.TypeName())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind.TypeName())
	}
	return f(info, extra)
}

// Names returns the registered keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func registryKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SplitList splits comma separated user input into trimmed, non-empty items.
//
// Example:
//
//	SplitList("Go, Rust,,  Python ") // []string{"Go", "Rust", "Python"}
func SplitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
