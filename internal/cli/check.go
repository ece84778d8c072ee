package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/nodetypes/internal/inventory"
	"github.com/mesh-intelligence/nodetypes/internal/reportdiff"
)

// errReportDrift is returned when a report no longer matches its baseline.
var errReportDrift = errors.New("report differs from baseline")

type checkOptions struct {
	baseline string
	update   bool
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var co checkOptions

	cmd := &cobra.Command{
		Use:   "check --baseline <file> [report]",
		Short: "Compare a report against a saved baseline",
		Long: "Render a report (node-types by default) and diff it line by line\n" +
			"against a saved baseline. Exits non-zero when they differ.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := inventory.NodeTypePrinter{}.Name()
			if len(args) == 1 {
				name = args[0]
			}
			p, err := lookupPrinter(name)
			if err != nil {
				return err
			}
			return opts.check(cmd, p, co)
		},
	}
	cmd.Flags().StringVar(&co.baseline, "baseline", "", "saved report to compare against")
	cmd.Flags().BoolVar(&co.update, "update", false, "overwrite the baseline with the current report")
	_ = cmd.MarkFlagRequired("baseline")
	return cmd
}

func (o *rootOptions) check(cmd *cobra.Command, p inventory.Printer, co checkOptions) error {
	backend, err := o.attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	current, err := render(cmd.Context(), p, backend)
	if err != nil {
		return sysError(fmt.Errorf("render %s report: %w", p.Name(), err))
	}

	out := cmd.OutOrStdout()
	if co.update {
		if err := os.WriteFile(co.baseline, []byte(current), 0o644); err != nil {
			return sysError(fmt.Errorf("write baseline: %w", err))
		}
		fmt.Fprintf(out, "Baseline %s updated\n", co.baseline)
		return nil
	}

	baseline, err := os.ReadFile(co.baseline)
	if err != nil {
		return userError(fmt.Errorf("read baseline: %w", err))
	}

	res := reportdiff.Compare(string(baseline), current)
	if !res.Changed() {
		fmt.Fprintf(out, "%s report matches %s\n", p.Name(), co.baseline)
		return nil
	}
	if err := res.Write(out, reportdiff.ColorEnabled(out)); err != nil {
		return sysError(err)
	}
	inserted, deleted := res.Counts()
	return userError(fmt.Errorf("%w: %s (%d added, %d removed)", errReportDrift, co.baseline, inserted, deleted))
}
