// Package highir defines the structured, architecture-independent
// high-level IR (dialect B) produced by raising lowir blocks.
//
// Unlike lowir there are no instruction markers: every statement
// carries the address of the machine instruction it was raised from,
// and every node carries provenance tags that survive rewriting.
package highir

// Tags is the provenance metadata attached to a node by the raising
// stage. When the engine reconstructs a node it carries the same tag
// map by reference; it never reads or writes individual tags, so a
// rebuilt node shares provenance with its source.
type Tags map[string]any

// Stmt is the marker interface for high IR statement nodes.
type Stmt interface {
	stmtNode()
	// Address returns the address of the machine instruction the
	// statement was raised from.
	Address() uint64
}

// Expr is the marker interface for high IR expression nodes.
type Expr interface {
	exprNode()
}

// Block is a straight-line sequence of statements sharing one entry
// address.
type Block struct {
	Addr       uint64
	Statements []Stmt
}
