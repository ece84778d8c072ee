package types

import (
	"errors"
	"fmt"
)

// On-parent-version action codes. They describe what happens to a property or
// child node when its parent node is checked in.
const (
	OnParentVersionCopy       = 1
	OnParentVersionVersion    = 2
	OnParentVersionInitialize = 3
	OnParentVersionCompute    = 4
	OnParentVersionIgnore     = 5
	OnParentVersionAbort      = 6
)

// ErrUnknownOnParentVersion is returned when an action code or name is not one
// of the defined actions.
var ErrUnknownOnParentVersion = errors.New("unknown on-parent-version action")

var onParentVersionNames = map[int]string{
	OnParentVersionCopy:       "COPY",
	OnParentVersionVersion:    "VERSION",
	OnParentVersionInitialize: "INITIALIZE",
	OnParentVersionCompute:    "COMPUTE",
	OnParentVersionIgnore:     "IGNORE",
	OnParentVersionAbort:      "ABORT",
}

// NameFromValue returns the canonical uppercase name of an action code.
func NameFromValue(code int) (string, error) {
	name, ok := onParentVersionNames[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownOnParentVersion, code)
	}
	return name, nil
}

// ValueFromName returns the action code for a canonical name. Matching is
// exact: "copy" is not accepted.
func ValueFromName(name string) (int, error) {
	for code, n := range onParentVersionNames {
		if n == name {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOnParentVersion, name)
}
