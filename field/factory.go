/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package field

import (
	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/registry"
)

// Factory resolves field types to field implementations.
type Factory struct {
	types *registry.Registry[Constructor]
}

// NewFactory returns a factory knowing the built-in field types.
func NewFactory() *Factory {
	f := &Factory{types: registry.New[Constructor](registry.DomainField)}
	for _, b := range []struct {
		key   string
		label string
		ctor  Constructor
	}{
		{"standard", "Standard", NewStandard},
		{"textarea", "Textarea", NewTextarea},
		{"select", "Select", NewSelect},
		{"multiselect", "Multiselect", NewMultiselect},
		{"radio", "Radio", NewRadio},
		{"checkbox", "Checkbox", NewCheckbox},
		{"map", "Map", NewMap},
	} {
		_ = f.types.Register(b.key, b.label, b.ctor)
	}
	return f
}

// Register adds or replaces a field type.
func (f *Factory) Register(fieldType, label string, ctor Constructor) error {
	if ctor == nil {
		return errors.NewValidationError("constructor", "field constructor must not be nil")
	}
	return f.types.Register(fieldType, label, ctor)
}

// Types returns field type → label.
func (f *Factory) Types() map[string]string {
	return f.types.Labels()
}

// Field builds the field of spec, typed by fieldType or else spec.Type.
// Unknown types yield a Standard field when standard is set.
func (f *Factory) Field(spec Spec, fieldType string, standard bool) (Field, bool) {
	if fieldType == "" {
		fieldType = spec.Type
	}
	if fieldType == "" {
		return nil, false
	}
	if ctor, ok := f.types.Resolve(fieldType); ok {
		return ctor(spec), true
	}
	if standard {
		return NewStandard(spec), true
	}
	return nil, false
}

// Sanitize cleans value as fieldType would. Unknown types return (nil, false).
func (f *Factory) Sanitize(fieldType string, value any) (any, bool) {
	ctor, ok := f.types.Resolve(fieldType)
	if !ok {
		return nil, false
	}
	return ctor(Spec{Type: fieldType}).Sanitize(value), true
}
