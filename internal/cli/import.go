package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nodetypes/internal/schemafile"
	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <schema.yaml>",
		Short: "Import node types and namespaces from a YAML schema file",
		Long: "Merge the node types and namespaces declared in a YAML schema file into\n" +
			"the repository. A node type replaces any stored type of the same name.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := schemafile.LoadFile(args[0])
			if err != nil {
				return userError(err)
			}

			backend, err := opts.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			if err := backend.Import(schema.NodeTypes, schema.Namespaces); err != nil {
				if errors.Is(err, types.ErrInvalidName) || errors.Is(err, types.ErrDuplicateName) {
					return userError(err)
				}
				return sysError(fmt.Errorf("import %s: %w", args[0], err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d node types and %d namespaces from %s\n",
				len(schema.NodeTypes), len(schema.Namespaces), args[0])
			return nil
		},
	}
}
