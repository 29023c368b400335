package highir

import "fmt"

// String renderings are for diagnostics and reports only; they are
// not a parseable syntax.

func (c *Const) String() string { return fmt.Sprintf("%#x<%d>", c.Value, c.Bits) }

func (t *Temp) String() string { return fmt.Sprintf("t%d", t.Idx) }

func (l *Load) String() string { return fmt.Sprintf("load(%v, %d)", l.Addr, l.Bits) }

func (u *UnaryOp) String() string { return fmt.Sprintf("%s(%v)", u.Op, u.Operand) }

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%v %s %v)", b.Operands[0], b.Op, b.Operands[1])
}

func (i *ITE) String() string {
	return fmt.Sprintf("ite(%v, %v, %v)", i.Cond, i.IfTrue, i.IfFalse)
}
