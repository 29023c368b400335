// Package loc defines program-point locations shared by both IR dialects.
package loc

import "fmt"

// CodeLocation identifies a program point: the address of the enclosing
// block, the index of the statement within it, and the address of the
// machine instruction the statement was lifted from.
type CodeLocation struct {
	BlockAddr uint64
	StmtIdx   int
	InsAddr   uint64
}

// String renders the location as "<blockaddr[idx] ins addr>".
func (c CodeLocation) String() string {
	return fmt.Sprintf("<%#x[%d] ins %#x>", c.BlockAddr, c.StmtIdx, c.InsAddr)
}
