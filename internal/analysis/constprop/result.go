package constprop

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/revlift-labs/irlight/pkg/core"
)

// Result is a snapshot of what one block evaluation propagated.
type Result struct {
	// ID identifies one evaluation for reporting.
	ID        string
	BlockAddr uint64

	// Registers and Memory hold the constants still known at the end
	// of the block, by register offset and by address.
	Registers map[int]core.Value
	Memory    map[uint64]core.Value

	// Jumps and Calls are the observed transfer targets in statement
	// order; an unfoldable target is its reconstructed expression, an
	// undecidable one is nil.
	Jumps []core.Value
	Calls []core.Value
}

func (p *Pass) result(blockAddr uint64) *Result {
	return &Result{
		ID:        uuid.NewString(),
		BlockAddr: blockAddr,
		Registers: maps.Clone(p.regs),
		Memory:    maps.Clone(p.mem),
		Jumps:     slices.Clone(p.jumps),
		Calls:     slices.Clone(p.calls),
	}
}
