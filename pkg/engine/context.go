package engine

import (
	"github.com/revlift-labs/irlight/pkg/core"
	"github.com/revlift-labs/irlight/pkg/loc"
)

// Context is the transient evaluation state of one in-flight Process
// call: the bound analysis state and architecture, the temp-value
// table, and the position of the statement currently being processed.
// It is owned exclusively by that call and handed to capability
// implementations by pointer; nothing in it survives Process.
type Context struct {
	State core.State
	Arch  *core.Arch

	// Tmps maps temp ids to their stored values. The table lives for
	// exactly one Process call.
	Tmps map[int]core.Value

	BlockAddr uint64
	StmtIdx   int
	InsAddr   uint64
}

// Loc returns the code location of the statement currently being
// processed. It is meaningless outside an active Process call.
func (c *Context) Loc() loc.CodeLocation {
	return loc.CodeLocation{BlockAddr: c.BlockAddr, StmtIdx: c.StmtIdx, InsAddr: c.InsAddr}
}

func (c *Context) reset(state core.State, blockAddr uint64) {
	c.State = state
	c.Arch = state.Arch()
	c.Tmps = make(map[int]core.Value)
	c.BlockAddr = blockAddr
	c.StmtIdx = -1
	c.InsAddr = 0
}

// clear drops every field written during a Process call so no state
// leaks into the next call on the same engine.
func (c *Context) clear() {
	*c = Context{}
}
