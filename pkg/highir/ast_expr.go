package highir

// ---------- Expression Types ----------

// Const is a literal constant of the given width.
type Const struct {
	Value uint64
	Bits  uint8
	Tags  Tags
}

func (*Const) exprNode() {}

// Temp references a numbered temporary. Reading a temporary that has
// not been assigned in the current block yields unknown.
type Temp struct {
	Idx  int
	Bits uint8
	Tags Tags
}

func (*Temp) exprNode() {}

// Load reads Bits bits from the address Addr evaluates to.
type Load struct {
	Addr Expr
	Bits uint8
	Tags Tags
}

func (*Load) exprNode() {}

// UnaryOp applies the named operator to one operand. Operator names
// are exact strings ("Neg", "Not", ...), not width families.
type UnaryOp struct {
	Op      string
	Operand Expr
	Tags    Tags
}

func (*UnaryOp) exprNode() {}

// BinaryOp applies the named operator to two operands in order.
type BinaryOp struct {
	Op       string
	Operands [2]Expr
	Tags     Tags
}

func (*BinaryOp) exprNode() {}

// ITE selects between two operands on a condition. The base engine
// leaves it undecided.
type ITE struct {
	Cond    Expr
	IfTrue  Expr
	IfFalse Expr
	Tags    Tags
}

func (*ITE) exprNode() {}
