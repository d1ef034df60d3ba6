// Package materials holds the material calculator registry and the
// built-in calculator plugins. Each plugin turns room metrics plus
// material parameters into a purchasable quantity and cost; the registry
// dispatches by category so adding a material type means registering a
// new implementer, never touching the dispatcher.
package materials

import (
	"fmt"
	"sort"

	"github.com/renocalc/renocalc/internal/model"
)

// Calculator is the capability contract every material plugin satisfies.
// Compute returns nil when required inputs (area, tile dimensions,
// coverage rate, ...) are zero or absent. A nil result means "not yet
// computable", not an error.
type Calculator interface {
	Category() string
	Compute(m model.RoomMetrics, params map[string]string) *model.MaterialResult
}

// UnknownCategoryError reports dispatch to a category with no registered
// plugin. This is a configuration bug: a populated registry never sees it.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no material calculator registered for category %q", e.Category)
}

// Registry maps category names to calculator plugins. Category names are
// unique; re-registering a category replaces the prior plugin (last
// write wins), which makes hot-swapping a plugin in tests trivial.
type Registry struct {
	plugins map[string]Calculator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: map[string]Calculator{}}
}

// NewDefaultRegistry returns a registry with all built-in plugins registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(PlasterCalculator{})
	r.Register(PaintCalculator{})
	r.Register(WallpaperCalculator{})
	r.Register(TileCalculator{})
	r.Register(PrimerCalculator{})
	r.Register(LaminateCalculator{})
	r.Register(SkirtingCalculator{})
	return r
}

// Register adds or replaces the plugin for its category.
func (r *Registry) Register(c Calculator) {
	r.plugins[c.Category()] = c
}

// Unregister removes the plugin for a category. Removing an absent
// category is a no-op.
func (r *Registry) Unregister(category string) {
	delete(r.plugins, category)
}

// Categories returns all registered category names sorted lexicographically.
func (r *Registry) Categories() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a plugin is registered for the category.
func (r *Registry) Has(category string) bool {
	_, ok := r.plugins[category]
	return ok
}

// Calculate dispatches metrics and params to the plugin registered for
// category and returns its result unmodified. A missing category yields
// an UnknownCategoryError.
func (r *Registry) Calculate(category string, m model.RoomMetrics, params map[string]string) (*model.MaterialResult, error) {
	plugin, ok := r.plugins[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: category}
	}
	return plugin.Compute(m, params), nil
}
