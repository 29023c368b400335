package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/revlift-labs/irlight/internal/loader"
	"github.com/revlift-labs/irlight/pkg/highir"
	"github.com/revlift-labs/irlight/pkg/lowir"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <fixture.yaml>",
		Short: "List the blocks and statements of a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, path string) error {
	f, err := loader.Load(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "dialect: %s, arch: %s/%d\n", f.Dialect, f.Arch.Name, f.Arch.Bits)

	switch f.Dialect {
	case loader.DialectLow:
		for _, blk := range f.Low {
			fmt.Fprintf(w, "block %#x (%d statements)\n", blk.Addr, len(blk.Statements))
			inspectLow(w, blk)
		}
	case loader.DialectHigh:
		for _, blk := range f.High {
			fmt.Fprintf(w, "block %#x (%d statements)\n", blk.Addr, len(blk.Statements))
			inspectHigh(w, blk)
		}
	}
	return nil
}

func inspectLow(w io.Writer, blk *lowir.Block) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Idx", "Ins", "Statement"})

	var insAddr uint64
	for idx, stmt := range blk.Statements {
		if m, ok := stmt.(*lowir.InsnMark); ok {
			insAddr = m.Addr + m.Delta
		}
		t.AppendRow(table.Row{idx, fmt.Sprintf("%#x", insAddr), fmt.Sprintf("%T", stmt)})
	}
	t.Render()
}

func inspectHigh(w io.Writer, blk *highir.Block) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Idx", "Ins", "Statement"})

	for idx, stmt := range blk.Statements {
		t.AppendRow(table.Row{idx, fmt.Sprintf("%#x", stmt.Address()), fmt.Sprintf("%T", stmt)})
	}
	t.Render()
}
