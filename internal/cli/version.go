package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nodetypes/pkg/nodetypes"
)

const modulePath = "github.com/mesh-intelligence/nodetypes"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nodetypes version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "nodetypes v%s\nmodule: %s\n", nodetypes.Version, modulePath)
			return nil
		},
	}
}
