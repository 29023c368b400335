package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/revlift-labs/irlight/internal/analysis/constprop"
	"github.com/revlift-labs/irlight/pkg/core"
)

func renderResults(w io.Writer, results []*constprop.Result, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, res := range results {
		fmt.Fprintf(w, "block %#x (run %s)\n", res.BlockAddr, res.ID)

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Kind", "Where", "Value"})

		for _, off := range slices.Sorted(maps.Keys(res.Registers)) {
			t.AppendRow(table.Row{"register", fmt.Sprintf("+%d", off), renderValue(res.Registers[off])})
		}
		for _, addr := range slices.Sorted(maps.Keys(res.Memory)) {
			t.AppendRow(table.Row{"memory", fmt.Sprintf("%#x", addr), renderValue(res.Memory[addr])})
		}
		for i, target := range res.Jumps {
			t.AppendRow(table.Row{"jump", fmt.Sprintf("#%d", i), renderValue(target)})
		}
		for i, target := range res.Calls {
			t.AppendRow(table.Row{"call", fmt.Sprintf("#%d", i), renderValue(target)})
		}

		t.Render()
		fmt.Fprintln(w)
	}
	return nil
}

func renderValue(v core.Value) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%v", v)
}
