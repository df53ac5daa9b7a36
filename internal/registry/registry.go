// Package registry maps template kinds to factories that build templates
// from declarative definitions. Built-in kinds register themselves in init(),
// letting scene documents and the CLI name templates without hardcoded
// constructors.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

// ErrUnknownKind is returned by Create for an unregistered kind.
var ErrUnknownKind = errors.New("registry: unknown template kind")

// KindInfo contains metadata about a registered kind.
type KindInfo struct {
	Kind  template.Kind
	Title string
}

// Factory builds a template from a definition.
type Factory func(def Definition) (template.Template, error)

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[template.Kind]entry)
	mu      sync.RWMutex
)

// Register adds a factory for kind.
// Panics if the kind is already registered.
func Register(kind template.Kind, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[kind]; exists {
		panic(fmt.Sprintf("registry: kind %q already registered", kind))
	}
	entries[kind] = entry{title: title, factory: f}
}

// List returns every registered kind, sorted by name.
func List() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(entries))
	for kind, e := range entries {
		result = append(result, KindInfo{Kind: kind, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Create builds the template described by def.
func Create(def Definition) (template.Template, error) {
	mu.RLock()
	e, ok := entries[def.Kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, def.Kind)
	}
	t, err := e.factory(def)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", def.Kind, err)
	}
	return t, nil
}

// Exists checks if a kind is registered.
func Exists(kind template.Kind) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[kind]
	return ok
}
