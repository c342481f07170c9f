package model

import "slices"

// ParamKind is the declared type of a template parameter.
type ParamKind string

const (
	// KindString is free-form text.
	KindString ParamKind = "string"
	// KindInteger is a signed 64-bit integer.
	KindInteger ParamKind = "integer"
	// KindFloat is a 64-bit floating point number.
	KindFloat ParamKind = "float"
	// KindBoolean is a yes/no answer.
	KindBoolean ParamKind = "boolean"
	// KindSelect is a single choice among Values.
	KindSelect ParamKind = "select"
	// KindMultiSelect is any subset of Values.
	KindMultiSelect ParamKind = "multiselect"
)

// ParamKinds lists every supported kind in documentation order.
var ParamKinds = []ParamKind{KindString, KindInteger, KindFloat, KindBoolean, KindSelect, KindMultiSelect}

// Valid reports whether k is a supported kind.
func (k ParamKind) Valid() bool {
	return slices.Contains(ParamKinds, k)
}

// ParameterSpec is a declared template parameter. The set of implementations is
// closed: StringParam, IntegerParam, FloatParam, BooleanParam, SelectParam and
// MultiSelectParam. Each carries only the fields meaningful for its kind.
type ParameterSpec interface {
	// Key is the template variable name.
	Key() string
	// Kind is the declared parameter type.
	Kind() ParamKind
	// Message is the prompt text.
	Message() string
	// Required reports whether an empty answer must be retried.
	Required() bool
	// DefaultValue returns the declared default, if any.
	DefaultValue() (Value, bool)

	sealed()
}

// ParamBase holds the fields common to every parameter kind.
type ParamBase struct {
	Name       string
	Prompt     string
	IsRequired bool
}

func (b ParamBase) Key() string     { return b.Name }
func (b ParamBase) Message() string { return b.Prompt }
func (b ParamBase) Required() bool  { return b.IsRequired }
func (ParamBase) sealed()           {}

// StringParam is a free-form text parameter.
type StringParam struct {
	ParamBase
	Default *string
}

func (StringParam) Kind() ParamKind { return KindString }

func (p StringParam) DefaultValue() (Value, bool) {
	if p.Default == nil {
		return Value{}, false
	}
	return StringValue(*p.Default), true
}

// IntegerParam is an integer parameter.
type IntegerParam struct {
	ParamBase
	Default *int64
}

func (IntegerParam) Kind() ParamKind { return KindInteger }

func (p IntegerParam) DefaultValue() (Value, bool) {
	if p.Default == nil {
		return Value{}, false
	}
	return IntegerValue(*p.Default), true
}

// FloatParam is a floating point parameter.
type FloatParam struct {
	ParamBase
	Default *float64
}

func (FloatParam) Kind() ParamKind { return KindFloat }

func (p FloatParam) DefaultValue() (Value, bool) {
	if p.Default == nil {
		return Value{}, false
	}
	return FloatValue(*p.Default), true
}

// BooleanParam is a yes/no parameter.
type BooleanParam struct {
	ParamBase
	Default *bool
}

func (BooleanParam) Kind() ParamKind { return KindBoolean }

func (p BooleanParam) DefaultValue() (Value, bool) {
	if p.Default == nil {
		return Value{}, false
	}
	return BooleanValue(*p.Default), true
}

// SelectParam is a single choice among Values. Values order is the display order.
type SelectParam struct {
	ParamBase
	Values  []string
	Default *string
}

func (SelectParam) Kind() ParamKind { return KindSelect }

func (p SelectParam) DefaultValue() (Value, bool) {
	if p.Default == nil {
		return Value{}, false
	}
	return StringValue(*p.Default), true
}

// MultiSelectParam is any subset of Values. A nil Default means no default;
// an empty non-nil Default is an explicit empty selection.
type MultiSelectParam struct {
	ParamBase
	Values  []string
	Default []string
}

func (MultiSelectParam) Kind() ParamKind { return KindMultiSelect }

func (p MultiSelectParam) DefaultValue() (Value, bool) {
	if p.Default == nil {
		return Value{}, false
	}
	return ListValue(p.Default), true
}

// Choices returns the allowed values for select kinds and nil otherwise.
func Choices(spec ParameterSpec) []string {
	switch p := spec.(type) {
	case SelectParam:
		return p.Values
	case MultiSelectParam:
		return p.Values
	default:
		return nil
	}
}
