package inventory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name   string
		format func(*bytes.Buffer, []string)
		in     []string
		want   string
	}{
		{"supertypes nil", formatSupertypes, nil, " > "},
		{"supertypes keep order", formatSupertypes, []string{"b", "a"}, " > b, a"},
		{"defaults nil", formatDefaultValues, nil, ""},
		{"defaults empty", formatDefaultValues, []string{}, ""},
		{"defaults", formatDefaultValues, []string{"x", "y"}, " = x, y"},
		{"constraints nil", formatConstraints, nil, ""},
		{"constraints", formatConstraints, []string{"[0,10]"}, " < [0,10]"},
		{"required nil", formatRequiredTypes, nil, ""},
		{"required keep order", formatRequiredTypes, []string{"nt:z", "nt:a"}, " (nt:z, nt:a)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.format(&buf, tt.in)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
