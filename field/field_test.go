/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain", "Montreal", "Montreal"},
		{"trims and collapses", "  a \t\n  b  ", "a b"},
		{"strips tags", "<b>bold</b> text", "bold text"},
		{"drops scripts", "x<script>alert(1)</script>y", "xy"},
		{"escapes stray less-than", "1 < 2", "1 &lt; 2"},
		{"removes octets", "a%20b%zz", "ab%zz"},
		{"invalid utf8", "ok\xffok", "okok"},
		{"number", 42, "42"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.in))
		})
	}
}

func TestCheckbox(t *testing.T) {
	c := NewCheckbox(Spec{Default: "yes"})
	assert.Equal(t, "checkbox", c.Type())
	assert.Equal(t, "yes", c.Default())
	assert.Equal(t, "no", c.Sanitize(nil))
	assert.Equal(t, "no", c.Sanitize(false))
	assert.Equal(t, "no", c.Sanitize("no"))
	assert.Equal(t, "yes", c.Sanitize("on"))
	assert.Equal(t, "yes", c.Sanitize(true))
	assert.Equal(t, "yes", c.Sanitize(""))
}

func TestSelect(t *testing.T) {
	single := NewSelect(Spec{Default: "post"})
	assert.Equal(t, "select", single.Type())
	assert.Equal(t, "page", single.Sanitize(" <i>page</i> "))

	multi := NewSelect(Spec{Multiselect: true, Default: "post"})
	assert.Equal(t, "multiselect", multi.Type())
	assert.Equal(t, []string{"post"}, multi.Default())
	assert.Equal(t, []string{"post", "page"}, multi.Sanitize([]any{"post", "  ", "<p></p>", "page"}))
	assert.Equal(t, []string{"post"}, multi.Sanitize("post"))
	assert.Equal(t, []string{}, multi.Sanitize(nil))
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	t.Run("sanitize by type", func(t *testing.T) {
		v, ok := f.Sanitize("checkbox", nil)
		require.True(t, ok)
		assert.Equal(t, "no", v)

		v, ok = f.Sanitize("textarea", "line one\nline two")
		require.True(t, ok)
		assert.Equal(t, "line one line two", v)

		v, ok = f.Sanitize("multiselect", []string{"a", ""})
		require.True(t, ok)
		assert.Equal(t, []string{"a"}, v)

		v, ok = f.Sanitize("color", "red")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("field lookup", func(t *testing.T) {
		fld, ok := f.Field(Spec{Type: "radio"}, "", false)
		require.True(t, ok)
		assert.Equal(t, "radio", fld.Type())

		fld, ok = f.Field(Spec{Type: "color"}, "", true)
		require.True(t, ok)
		assert.Equal(t, "standard", fld.Type())

		_, ok = f.Field(Spec{Type: "color"}, "", false)
		assert.False(t, ok)

		_, ok = f.Field(Spec{}, "", true)
		assert.False(t, ok)

		fld, ok = f.Field(Spec{Type: "radio"}, "map", false)
		require.True(t, ok)
		assert.Equal(t, "map", fld.Type())
	})

	t.Run("custom type", func(t *testing.T) {
		require.NoError(t, f.Register("upper", "Upper", NewStandard))
		assert.Contains(t, f.Types(), "upper")
		assert.Error(t, f.Register("broken", "Broken", nil))
	})
}
