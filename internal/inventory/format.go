package inventory

import (
	"bytes"
	"strings"
)

// formatSupertypes always writes the " > " separator, even with no supertypes.
func formatSupertypes(buf *bytes.Buffer, names []string) {
	buf.WriteString(" > ")
	buf.WriteString(strings.Join(names, ", "))
}

func formatDefaultValues(buf *bytes.Buffer, values []string) {
	if len(values) == 0 {
		return
	}
	buf.WriteString(" = ")
	buf.WriteString(strings.Join(values, ", "))
}

func formatConstraints(buf *bytes.Buffer, constraints []string) {
	if len(constraints) == 0 {
		return
	}
	buf.WriteString(" < ")
	buf.WriteString(strings.Join(constraints, ", "))
}

func formatRequiredTypes(buf *bytes.Buffer, names []string) {
	if len(names) == 0 {
		return
	}
	buf.WriteString(" (")
	buf.WriteString(strings.Join(names, ", "))
	buf.WriteString(")")
}

// formatFlag appends " name" when set.
func formatFlag(buf *bytes.Buffer, set bool, name string) {
	if set {
		buf.WriteByte(' ')
		buf.WriteString(name)
	}
}
