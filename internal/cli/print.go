package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nodetypes/internal/inventory"
	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

func newPrintCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [report]",
		Short: "Print inventory reports",
		Long: "Print one inventory report, or all of them with a title line each.\n\nReports: " +
			strings.Join(reportNames(), ", "),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: reportNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return opts.printReports(cmd, inventory.Printers(), true)
			}
			p, err := lookupPrinter(args[0])
			if err != nil {
				return err
			}
			return opts.printReports(cmd, []inventory.Printer{p}, false)
		},
	}

	for _, p := range inventory.Printers() {
		cmd.AddCommand(&cobra.Command{
			Use:   p.Name(),
			Short: "Print the " + strings.ToLower(p.Title()) + " report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.printReports(cmd, []inventory.Printer{p}, false)
			},
		})
	}
	return cmd
}

func (o *rootOptions) printReports(cmd *cobra.Command, printers []inventory.Printer, titled bool) error {
	backend, err := o.attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	out := cmd.OutOrStdout()
	for i, p := range printers {
		if titled {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "=== %s ===\n", p.Title())
		}
		if err := p.Print(cmd.Context(), out, backend); err != nil {
			return sysError(fmt.Errorf("write %s report: %w", p.Name(), err))
		}
	}
	return nil
}

// render runs one printer into a string.
func render(ctx context.Context, p inventory.Printer, repo types.Repository) (string, error) {
	var sb strings.Builder
	if err := p.Print(ctx, &sb, repo); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func lookupPrinter(name string) (inventory.Printer, error) {
	p, ok := inventory.Lookup(name)
	if !ok {
		return nil, userError(fmt.Errorf("unknown report %q (choose from %s)", name, strings.Join(reportNames(), ", ")))
	}
	return p, nil
}

func reportNames() []string {
	var names []string
	for _, p := range inventory.Printers() {
		names = append(names, p.Name())
	}
	return names
}
