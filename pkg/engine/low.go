package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/revlift-labs/irlight/pkg/core"
	"github.com/revlift-labs/irlight/pkg/loc"
	"github.com/revlift-labs/irlight/pkg/lowir"
)

// LowBinopHandler evaluates one binary operation. Handlers recurse
// through Expr and may consult the live Context.
type LowBinopHandler func(e *LowEngine, expr *lowir.BinaryOp) (core.Value, error)

// LowUnopHandler evaluates one unary operation.
type LowUnopHandler func(e *LowEngine, expr *lowir.UnaryOp) (core.Value, error)

// binopFamily routes every opcode sharing a prefix to one handler, so
// all width variants of an operation ("Add8" through "Add64") share
// one implementation.
type binopFamily struct {
	prefix string
	fn     LowBinopHandler
}

// LowEngine walks microcode-style lowir blocks. Instruction addresses
// are reconstructed from InsnMark statements; everything the base
// tables cannot decide degrades to unknown.
type LowEngine struct {
	caps   LowCapabilities
	logger *slog.Logger

	ctx   Context
	block *lowir.Block

	binops []binopFamily
	unops  map[string]LowUnopHandler
}

// NewLow returns a LowEngine bound to caps. The default binary table
// recognizes only the Add, Sub and Const families; every other family
// is unsupported until an analysis widens the table with
// RegisterBinop. A nil caps fails every capability with
// ErrNotImplemented.
func NewLow(caps LowCapabilities, cfg Config) *LowEngine {
	if caps == nil {
		caps = UnimplementedLowCapabilities{}
	}
	e := &LowEngine{
		caps:   caps,
		logger: cfg.logger(),
		unops:  make(map[string]LowUnopHandler),
	}
	e.binops = []binopFamily{
		{"Add", (*LowEngine).binAdd},
		{"Sub", (*LowEngine).binSub},
		{"Const", (*LowEngine).binConst},
	}
	return e
}

// RegisterBinop installs fn for every opcode starting with prefix,
// replacing an existing family with the same prefix. Families are
// tried in registration order.
func (e *LowEngine) RegisterBinop(prefix string, fn LowBinopHandler) {
	for i := range e.binops {
		if e.binops[i].prefix == prefix {
			e.binops[i].fn = fn
			return
		}
	}
	e.binops = append(e.binops, binopFamily{prefix, fn})
}

// RegisterUnop installs fn for the exact opcode op. Conversion opcodes
// always route to the generic conversion handler and cannot be
// overridden here.
func (e *LowEngine) RegisterUnop(op string, fn LowUnopHandler) {
	e.unops[op] = fn
}

// Process evaluates every statement of block in order against state.
// Results are observed entirely through capability side effects. The
// only errors are ErrNoBlock and capability failures; unsupported
// nodes and operators are logged and absorbed. The evaluation context
// is cleared on every return path.
func (e *LowEngine) Process(state core.State, block *lowir.Block) error {
	if block == nil {
		return ErrNoBlock
	}
	e.ctx.reset(state, block.Addr)
	e.block = block
	defer func() {
		e.block = nil
		e.ctx.clear()
	}()

	for idx, stmt := range block.Statements {
		e.ctx.StmtIdx = idx
		if m, ok := stmt.(*lowir.InsnMark); ok {
			e.ctx.InsAddr = m.Addr + m.Delta
		}
		if err := e.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Loc returns the location of the statement currently being processed.
// Meaningless outside an active Process call.
func (e *LowEngine) Loc() loc.CodeLocation { return e.ctx.Loc() }

// Context exposes the live evaluation context to registered handlers.
func (e *LowEngine) Context() *Context { return &e.ctx }

func (e *LowEngine) stmt(stmt lowir.Stmt) error {
	switch s := stmt.(type) {
	case *lowir.InsnMark:
		// Address already consumed by the statement loop.
		return nil
	case *lowir.TempAssign:
		v, err := e.Expr(s.Src)
		if err != nil || v == nil {
			return err
		}
		e.ctx.Tmps[s.Temp] = v
		return nil
	case *lowir.RegisterWrite:
		v, err := e.Expr(s.Src)
		if err != nil {
			return err
		}
		return e.caps.WriteRegister(s.Offset, v, &e.ctx)
	case *lowir.MemoryWrite:
		addr, err := e.Expr(s.Addr)
		if err != nil {
			return err
		}
		v, err := e.Expr(s.Src)
		if err != nil {
			return err
		}
		return e.caps.WriteMemory(addr, v, &e.ctx)
	default:
		e.logger.Warn("unsupported statement type",
			"type", fmt.Sprintf("%T", stmt), "loc", e.ctx.Loc())
		return nil
	}
}

// Expr evaluates one expression. A nil result is the explicit unknown.
// Registered operator handlers recurse through here.
func (e *LowEngine) Expr(expr lowir.Expr) (core.Value, error) {
	switch x := expr.(type) {
	case *lowir.Const:
		return x.Value, nil
	case *lowir.TempRead:
		v, ok := e.ctx.Tmps[x.Temp]
		if !ok {
			return nil, nil
		}
		return v, nil
	case *lowir.RegisterRead:
		return e.caps.ReadRegister(x.Offset, x.Bits, &e.ctx)
	case *lowir.MemoryRead:
		addr, err := e.Expr(x.Addr)
		if err != nil {
			return nil, err
		}
		return e.caps.ReadMemory(addr, x.Bits, &e.ctx)
	case *lowir.UnaryOp:
		return e.unaryOp(x)
	case *lowir.BinaryOp:
		return e.binaryOp(x)
	default:
		e.logger.Warn("unsupported expression type",
			"type", fmt.Sprintf("%T", expr), "loc", e.ctx.Loc())
		return nil, nil
	}
}

func (e *LowEngine) unaryOp(x *lowir.UnaryOp) (core.Value, error) {
	if lowir.IsConversion(x.Op) {
		return e.conversion(x)
	}
	h, ok := e.unops[x.Op]
	if !ok {
		e.logger.Warn("unsupported unary operator",
			"op", x.Op, "loc", e.ctx.Loc())
		return nil, nil
	}
	return h(e, x)
}

// conversion resizes the operand to the width named by the opcode:
// truncation when narrowing, zero-extension when widening.
func (e *LowEngine) conversion(x *lowir.UnaryOp) (core.Value, error) {
	v, err := e.Expr(x.Arg)
	if err != nil || v == nil {
		return nil, err
	}
	bits, ok := lowir.ConversionTarget(x.Op)
	if !ok {
		return nil, nil
	}
	bv, ok := v.(core.BitVec)
	if !ok {
		return nil, nil
	}
	return bv.Convert(bits), nil
}

func (e *LowEngine) binaryOp(x *lowir.BinaryOp) (core.Value, error) {
	for _, fam := range e.binops {
		if strings.HasPrefix(x.Op, fam.prefix) {
			return fam.fn(e, x)
		}
	}
	e.logger.Warn("unsupported binary operator",
		"op", x.Op, "loc", e.ctx.Loc())
	return nil, nil
}

// binAdd short-circuits to unknown if either operand is unknown, and
// degrades to unknown when the operands are not both BitVecs of one
// width.
func (e *LowEngine) binAdd(x *lowir.BinaryOp) (core.Value, error) {
	v0, err := e.Expr(x.Args[0])
	if err != nil || v0 == nil {
		return nil, err
	}
	v1, err := e.Expr(x.Args[1])
	if err != nil || v1 == nil {
		return nil, err
	}
	a, ok0 := v0.(core.BitVec)
	b, ok1 := v1.(core.BitVec)
	if !ok0 || !ok1 {
		return nil, nil
	}
	sum, ok := a.Add(b)
	if !ok {
		return nil, nil
	}
	return sum, nil
}

func (e *LowEngine) binSub(x *lowir.BinaryOp) (core.Value, error) {
	v0, err := e.Expr(x.Args[0])
	if err != nil || v0 == nil {
		return nil, err
	}
	v1, err := e.Expr(x.Args[1])
	if err != nil || v1 == nil {
		return nil, err
	}
	a, ok0 := v0.(core.BitVec)
	b, ok1 := v1.(core.BitVec)
	if !ok0 || !ok1 {
		return nil, nil
	}
	diff, ok := a.Sub(b)
	if !ok {
		return nil, nil
	}
	return diff, nil
}

// binConst extracts the literal from a constant-producing node.
func (e *LowEngine) binConst(x *lowir.BinaryOp) (core.Value, error) {
	if c, ok := x.Args[0].(*lowir.Const); ok {
		return c.Value, nil
	}
	return nil, nil
}
