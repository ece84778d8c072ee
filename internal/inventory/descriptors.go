package inventory

import (
	"context"
	"io"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

const descriptorsFailure = "Unable to output repository descriptors."

// DescriptorsPrinter lists repository descriptors as "key = value" lines in
// the order the repository reports the keys.
type DescriptorsPrinter struct{}

func (DescriptorsPrinter) Name() string  { return "descriptors" }
func (DescriptorsPrinter) Title() string { return "Repository Descriptors" }

func (DescriptorsPrinter) Print(_ context.Context, w io.Writer, repo types.Repository) error {
	out := &reportWriter{w: w}

	keys, err := repo.DescriptorKeys()
	if err != nil {
		out.fail(descriptorsFailure, err)
		return out.err
	}
	for _, key := range keys {
		value, err := repo.Descriptor(key)
		if err != nil {
			out.fail(descriptorsFailure, err)
			return out.err
		}
		out.printf("%s = %s\n", key, value)
	}
	return out.err
}
