/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package field

import (
	"fmt"
	"regexp"
	"strings"
)

// Spec describes a settings field.
type Spec struct {
	ID          string
	Name        string
	Title       string
	Description string
	Type        string
	Multiselect bool
	Options     map[string]string
	Default     any
}

// Field sanitises submitted values of one field type.
type Field interface {
	Type() string
	Spec() Spec
	// Default is the value used when nothing was stored.
	Default() any
	Sanitize(value any) any
}

// Constructor builds a field from its spec.
type Constructor func(Spec) Field

type base struct {
	spec Spec
}

func (b base) Spec() Spec   { return b.spec }
func (b base) Default() any { return b.spec.Default }

// Standard is a single line input.
type Standard struct{ base }

func NewStandard(s Spec) Field     { return Standard{base{s}} }
func (Standard) Type() string      { return "standard" }
func (Standard) Sanitize(v any) any { return SanitizeText(v) }

// Textarea is a multi line input, sanitised to a single line.
type Textarea struct{ base }

func NewTextarea(s Spec) Field     { return Textarea{base{s}} }
func (Textarea) Type() string      { return "textarea" }
func (Textarea) Sanitize(v any) any { return SanitizeText(v) }

// Radio is a choice among options.
type Radio struct{ base }

func NewRadio(s Spec) Field     { return Radio{base{s}} }
func (Radio) Type() string      { return "radio" }
func (Radio) Sanitize(v any) any { return SanitizeText(v) }

// Map holds a geocoded location entered on a map.
type Map struct{ base }

func NewMap(s Spec) Field     { return Map{base{s}} }
func (Map) Type() string      { return "map" }
func (Map) Sanitize(v any) any { return SanitizeText(v) }

// Checkbox stores "yes" or "no".
type Checkbox struct{ base }

func NewCheckbox(s Spec) Field { return Checkbox{base{s}} }
func (Checkbox) Type() string  { return "checkbox" }

// Sanitize maps nil, false and "no" to "no" and any other value to "yes".
func (Checkbox) Sanitize(v any) any {
	switch x := v.(type) {
	case nil:
		return "no"
	case bool:
		if !x {
			return "no"
		}
	case string:
		if x == "no" {
			return "no"
		}
	}
	return "yes"
}

// Select is a choice among options, or several with Multiselect.
type Select struct{ base }

func NewSelect(s Spec) Field { return Select{base{s}} }

// NewMultiselect builds a select accepting several options.
func NewMultiselect(s Spec) Field {
	s.Multiselect = true
	return Select{base{s}}
}

func (s Select) Type() string {
	if s.spec.Multiselect {
		return "multiselect"
	}
	return "select"
}

// Default of a multiselect is always a list.
func (s Select) Default() any {
	if s.spec.Multiselect {
		return toStrings(s.spec.Default)
	}
	return s.spec.Default
}

// Sanitize cleans each value; multiselects drop the values left empty.
func (s Select) Sanitize(v any) any {
	if !s.spec.Multiselect {
		return SanitizeText(v)
	}
	out := []string{}
	for _, item := range toStrings(v) {
		if clean := SanitizeText(item); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

var (
	scriptStyle = regexp.MustCompile(`(?is)<(script|style)[^>]*?>.*?</(script|style)>`)
	tags        = regexp.MustCompile(`<[^>]*>`)
	octets      = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
	whitespace  = regexp.MustCompile(`[\r\n\t ]+`)
)

// SanitizeText reduces a value to a single line of plain text: invalid UTF-8
// and markup are stripped, stray "<" escaped, percent-encoded octets removed
// and whitespace runs collapsed.
func SanitizeText(v any) string {
	s := toString(v)
	s = strings.ToValidUTF8(s, "")
	s = scriptStyle.ReplaceAllString(s, "")
	s = tags.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "<", "&lt;")
	for octets.MatchString(s) {
		s = octets.ReplaceAllString(s, "")
	}
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func toStrings(v any) []string {
	switch x := v.(type) {
	case nil:
		return []string{}
	case []string:
		return append([]string{}, x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			out = append(out, toString(item))
		}
		return out
	case string:
		if x == "" {
			return []string{}
		}
		return []string{x}
	}
	return []string{toString(v)}
}
