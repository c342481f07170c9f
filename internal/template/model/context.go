package model

import (
	"maps"
	"slices"
)

// Context is the immutable key to value mapping every template render sees.
// It is built once, after all parameters are collected.
type Context struct {
	values map[string]Value
}

// NewContext creates a Context from values. The map is copied.
func NewContext(values map[string]Value) Context {
	return Context{values: maps.Clone(values)}
}

// Get returns the value stored under key.
func (c Context) Get(key string) (Value, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Name returns the reserved project name value.
func (c Context) Name() string {
	return c.values[KeyName].Str()
}

// Keys returns every key in sorted order.
func (c Context) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Data returns a fresh map of native Go values suitable for template execution.
// Mutating the returned map does not affect the Context.
func (c Context) Data() map[string]any {
	data := make(map[string]any, len(c.values))
	for k, v := range c.values {
		data[k] = v.Native()
	}
	return data
}
