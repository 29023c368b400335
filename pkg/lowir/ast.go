// Package lowir defines the microcode-style low-level IR (dialect A)
// produced by the lifter.
//
// A lifted machine instruction expands into several microcode
// statements; instruction boundaries survive only as InsnMark
// statements carrying the original address. Scratch results flow
// through numbered temporaries that are local to one block.
package lowir

// Stmt is the marker interface for low IR statement nodes.
type Stmt interface {
	stmtNode() // Marker method to distinguish statements
}

// Expr is the marker interface for low IR expression nodes.
type Expr interface {
	exprNode() // Marker method to distinguish expressions
}

// Block is a straight-line sequence of statements sharing one entry
// address. Blocks are produced upstream by the lifting pipeline and
// are never mutated by the engine.
type Block struct {
	Addr       uint64
	Statements []Stmt
}
