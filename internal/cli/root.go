// Package cli implements the nodetypes command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/nodetypes/internal/paths"
	"github.com/mesh-intelligence/nodetypes/pkg/nodetypes"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootOptions holds global flag values and the loaded configuration,
// shared by all subcommands of one root command.
type rootOptions struct {
	configDir string
	dataDir   string
	debug     bool

	config *viper.Viper
}

// NewRootCmd creates the top-level "nodetypes" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:     "nodetypes",
		Short:   "Inventory reports for a node type schema repository",
		Long:    "nodetypes keeps a local node type schema repository and prints\ndeterministic text reports about its node types, descriptors, and namespaces.",
		Version: nodetypes.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/nodetypes)")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default: $(CWD)/.nodetypes-db)")
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "turn on debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newPrintCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newCheckCmd(opts))

	return root
}

// setup resolves the config directory, loads config.yaml, and configures
// logging. It runs before every subcommand.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(o.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	o.config = cfg
	o.configDir = configDir

	if err := setupLogging(cmd.ErrOrStderr(), o.debug, cfg.GetString(cfgKeyLogLevel)); err != nil {
		return userError(err)
	}
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args and returns the process exit code. Errors are
// printed to stderr.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitCode(err)
}

// exitError carries the exit code a command failure maps to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error to a process exit code. Errors that did not come
// from a command, such as flag parsing failures, are user errors.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
