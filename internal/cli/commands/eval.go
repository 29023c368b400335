package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revlift-labs/irlight/internal/analysis/constprop"
	"github.com/revlift-labs/irlight/internal/loader"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <fixture.yaml>",
		Short: "Evaluate fixture blocks and report propagated constants",
		Long: `Run every block of an IR fixture through the constant propagation
pass of its dialect and report the registers, memory cells, and
transfer targets that resolved to constants.

Engine diagnostics (unsupported nodes and operators) go to stderr;
raise --verbose to see them.`,
		Example: `  # Evaluate a low IR fixture
  irlight eval testdata/add.yaml

  # Report as JSON
  irlight eval testdata/add.yaml --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0])
		},
	}
	return cmd
}

func runEval(cmd *cobra.Command, path string) error {
	f, err := loader.Load(path)
	if err != nil {
		return err
	}

	pass := constprop.New(f.Arch, getLogger())
	var results []*constprop.Result

	switch f.Dialect {
	case loader.DialectLow:
		for _, blk := range f.Low {
			res, err := pass.RunLow(blk)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}
			results = append(results, res)
		}
	case loader.DialectHigh:
		for _, blk := range f.High {
			res, err := pass.RunHigh(blk)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}
			results = append(results, res)
		}
	}

	return renderResults(cmd.OutOrStdout(), results, getConfig().Output)
}
