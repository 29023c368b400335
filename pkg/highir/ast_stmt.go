package highir

// ---------- Statement Types ----------

// Assign stores the evaluation of Src into the temporary Dst.
type Assign struct {
	InsAddr uint64
	Dst     *Temp
	Src     Expr
	Tags    Tags
}

func (*Assign) stmtNode() {}

// Address implements Stmt.
func (a *Assign) Address() uint64 { return a.InsAddr }

// Store writes the evaluation of Src at the address Addr evaluates to.
type Store struct {
	InsAddr uint64
	Addr    Expr
	Src     Expr
	Tags    Tags
}

func (*Store) stmtNode() {}

// Address implements Stmt.
func (s *Store) Address() uint64 { return s.InsAddr }

// Jump transfers control to Target. The engine delegates jumps to the
// concrete analysis.
type Jump struct {
	InsAddr uint64
	Target  Expr
	Tags    Tags
}

func (*Jump) stmtNode() {}

// Address implements Stmt.
func (j *Jump) Address() uint64 { return j.InsAddr }

// Call invokes the function Target evaluates to. The engine delegates
// calls to the concrete analysis.
type Call struct {
	InsAddr uint64
	Target  Expr
	Tags    Tags
}

func (*Call) stmtNode() {}

// Address implements Stmt.
func (c *Call) Address() uint64 { return c.InsAddr }

// ConditionalJump branches on Cond. The base engine leaves it
// undecided; control-flow analyses handle it themselves.
type ConditionalJump struct {
	InsAddr     uint64
	Cond        Expr
	TrueTarget  Expr
	FalseTarget Expr
	Tags        Tags
}

func (*ConditionalJump) stmtNode() {}

// Address implements Stmt.
func (c *ConditionalJump) Address() uint64 { return c.InsAddr }
