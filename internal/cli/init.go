package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the schema repository",
		Long:  "Create the configuration and data directories, then seed the schema\nrepository with the built-in node types, namespaces, and descriptors.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := opts.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			dataDir, err := opts.resolveDataDir()
			if err != nil {
				return sysError(err)
			}
			logrus.WithField("data_dir", dataDir).Debug("repository initialized")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Schema repository initialized")
			fmt.Fprintln(out, "  config:", opts.configDir)
			fmt.Fprintln(out, "  data:  ", dataDir)
			return nil
		},
	}
}
