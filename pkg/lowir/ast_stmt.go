package lowir

// ---------- Statement Types ----------

// InsnMark marks a machine-instruction boundary in the microcode
// stream. The statements that follow belong to the instruction at
// Addr+Delta until the next mark. This is the only way instruction
// addresses are recovered from the stream.
type InsnMark struct {
	Addr  uint64
	Delta uint64
}

func (*InsnMark) stmtNode() {}

// TempAssign stores the evaluation of Src into the numbered temporary
// Temp. Temp ids are unique within one block.
type TempAssign struct {
	Temp int
	Src  Expr
}

func (*TempAssign) stmtNode() {}

// RegisterWrite writes the evaluation of Src into the register file at
// byte offset Offset.
type RegisterWrite struct {
	Offset int
	Src    Expr
}

func (*RegisterWrite) stmtNode() {}

// MemoryWrite stores the evaluation of Src at the address Addr
// evaluates to.
type MemoryWrite struct {
	Addr Expr
	Src  Expr
}

func (*MemoryWrite) stmtNode() {}

// Exit is a guarded side-exit out of the block. The base engine does
// not interpret exits; analyses that track control flow handle them
// themselves.
type Exit struct {
	Guard  Expr
	Target uint64
}

func (*Exit) stmtNode() {}
