package lowir

import "github.com/revlift-labs/irlight/pkg/core"

// ---------- Expression Types ----------

// TempRead reads the numbered temporary Temp. Reading a temporary that
// has not been assigned in the current block yields unknown.
type TempRead struct {
	Temp int
}

func (*TempRead) exprNode() {}

// RegisterRead reads Bits bits from the register file at byte offset
// Offset.
type RegisterRead struct {
	Offset int
	Bits   uint8
}

func (*RegisterRead) exprNode() {}

// MemoryRead loads Bits bits from the address Addr evaluates to.
type MemoryRead struct {
	Addr Expr
	Bits uint8
}

func (*MemoryRead) exprNode() {}

// UnaryOp applies the opcode Op to one operand.
type UnaryOp struct {
	Op  string
	Arg Expr
}

func (*UnaryOp) exprNode() {}

// BinaryOp applies the opcode Op to two operands.
type BinaryOp struct {
	Op   string
	Args [2]Expr
}

func (*BinaryOp) exprNode() {}

// Const is a literal constant.
type Const struct {
	Value core.BitVec
}

func (*Const) exprNode() {}

// ITE selects between two operands on a guard. The base engine leaves
// it undecided.
type ITE struct {
	Cond    Expr
	IfTrue  Expr
	IfFalse Expr
}

func (*ITE) exprNode() {}
