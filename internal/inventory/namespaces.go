package inventory

import (
	"context"
	"io"
	"slices"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

const namespacesFailure = "Unable to output namespace mappings."

// NamespacesPrinter lists the prefixes visible to a session, sorted, with
// their URIs and whether each is registered globally. The empty prefix is
// skipped.
type NamespacesPrinter struct{}

func (NamespacesPrinter) Name() string  { return "namespaces" }
func (NamespacesPrinter) Title() string { return "Namespaces" }

func (NamespacesPrinter) Print(ctx context.Context, w io.Writer, repo types.Repository) error {
	out := &reportWriter{w: w}

	session, err := repo.Login(ctx)
	if err != nil {
		out.fail(namespacesFailure, err)
		return out.err
	}
	defer logout(session)

	global, err := session.RegistryPrefixes()
	if err != nil {
		out.fail(namespacesFailure, err)
		return out.err
	}
	local, err := session.NamespacePrefixes()
	if err != nil {
		out.fail(namespacesFailure, err)
		return out.err
	}
	local = slices.Clone(local)
	slices.Sort(local)

	for _, prefix := range local {
		if prefix == "" {
			continue
		}
		uri, err := session.NamespaceURI(prefix)
		if err != nil {
			out.fail(namespacesFailure, err)
			return out.err
		}
		scope := "[local]"
		if slices.Contains(global, prefix) {
			scope = "[global]"
		}
		out.printf("%10s = %s %s\n", prefix, uri, scope)
	}
	return out.err
}
