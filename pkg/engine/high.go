package engine

import (
	"fmt"
	"log/slog"

	"github.com/revlift-labs/irlight/pkg/core"
	"github.com/revlift-labs/irlight/pkg/highir"
	"github.com/revlift-labs/irlight/pkg/loc"
)

// HighBinopHandler evaluates one binary operation. A handler may
// return a core.Value or a reconstructed highir.Expr; the fold
// handlers never return unknown.
type HighBinopHandler func(e *HighEngine, expr *highir.BinaryOp) (core.Value, error)

// HighUnopHandler evaluates one unary operation.
type HighUnopHandler func(e *HighEngine, expr *highir.UnaryOp) (core.Value, error)

// HighEngine walks structured highir blocks. Arithmetic follows
// fold-or-preserve: a subtree either collapses to a constant,
// simplifies in place, or survives as a reconstructed node carrying
// the original provenance tags. Arithmetic never evaluates to unknown.
type HighEngine struct {
	caps   HighCapabilities
	logger *slog.Logger

	ctx   Context
	block *highir.Block

	// Operator dispatch is by exact name, unlike the low engine's
	// prefix families.
	binops map[string]HighBinopHandler
	unops  map[string]HighUnopHandler
}

// NewHigh returns a HighEngine bound to caps. The default binary
// table recognizes Add and Sub; analyses widen it with RegisterBinop.
// A nil caps fails every capability with ErrNotImplemented.
func NewHigh(caps HighCapabilities, cfg Config) *HighEngine {
	if caps == nil {
		caps = UnimplementedHighCapabilities{}
	}
	e := &HighEngine{
		caps:   caps,
		logger: cfg.logger(),
		unops:  make(map[string]HighUnopHandler),
	}
	e.binops = map[string]HighBinopHandler{
		"Add": (*HighEngine).foldAdd,
		"Sub": (*HighEngine).foldSub,
	}
	return e
}

// RegisterBinop installs fn for the exact operator name op.
func (e *HighEngine) RegisterBinop(op string, fn HighBinopHandler) {
	e.binops[op] = fn
}

// RegisterUnop installs fn for the exact operator name op.
func (e *HighEngine) RegisterUnop(op string, fn HighUnopHandler) {
	e.unops[op] = fn
}

// Process evaluates every statement of block in order against state.
// Each statement carries its own instruction address; no marker
// reconstruction happens here. The evaluation context is cleared on
// every return path.
func (e *HighEngine) Process(state core.State, block *highir.Block) error {
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
		e.ctx.InsAddr = stmt.Address()
		if err := e.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Loc returns the location of the statement currently being processed.
// Meaningless outside an active Process call.
func (e *HighEngine) Loc() loc.CodeLocation { return e.ctx.Loc() }

// Context exposes the live evaluation context to registered handlers.
func (e *HighEngine) Context() *Context { return &e.ctx }

func (e *HighEngine) stmt(stmt highir.Stmt) error {
	switch s := stmt.(type) {
	case *highir.Assign:
		v, err := e.Expr(s.Src)
		if err != nil || v == nil {
			return err
		}
		e.ctx.Tmps[s.Dst.Idx] = v
		return nil
	case *highir.Store:
		addr, err := e.Expr(s.Addr)
		if err != nil {
			return err
		}
		v, err := e.Expr(s.Src)
		if err != nil {
			return err
		}
		return e.caps.WriteMemory(addr, v, &e.ctx)
	case *highir.Jump:
		target, err := e.Expr(s.Target)
		if err != nil {
			return err
		}
		return e.caps.Jump(target, &e.ctx)
	case *highir.Call:
		target, err := e.Expr(s.Target)
		if err != nil {
			return err
		}
		return e.caps.Call(target, &e.ctx)
	default:
		e.logger.Warn("unsupported statement type",
			"type", fmt.Sprintf("%T", stmt), "loc", e.ctx.Loc())
		return nil
	}
}

// Expr evaluates one expression. A nil result is the explicit unknown;
// arithmetic expressions never produce it.
func (e *HighEngine) Expr(expr highir.Expr) (core.Value, error) {
	switch x := expr.(type) {
	case *highir.Const:
		return core.NewBitVec(x.Value, x.Bits), nil
	case *highir.Temp:
		v, ok := e.ctx.Tmps[x.Idx]
		if !ok {
			return nil, nil
		}
		return v, nil
	case *highir.Load:
		addr, err := e.Expr(x.Addr)
		if err != nil {
			return nil, err
		}
		return e.caps.ReadMemory(addr, x.Bits, &e.ctx)
	case *highir.UnaryOp:
		h, ok := e.unops[x.Op]
		if !ok {
			e.logger.Warn("unsupported unary operator",
				"op", x.Op, "loc", e.ctx.Loc())
			return nil, nil
		}
		return h(e, x)
	case *highir.BinaryOp:
		h, ok := e.binops[x.Op]
		if !ok {
			e.logger.Warn("unsupported binary operator",
				"op", x.Op, "loc", e.ctx.Loc())
			return nil, nil
		}
		return h(e, x)
	default:
		e.logger.Warn("unsupported expression type",
			"type", fmt.Sprintf("%T", expr), "loc", e.ctx.Loc())
		return nil, nil
	}
}

func (e *HighEngine) foldAdd(x *highir.BinaryOp) (core.Value, error) {
	return e.foldBinop(x, core.BitVec.Add)
}

func (e *HighEngine) foldSub(x *highir.BinaryOp) (core.Value, error) {
	return e.foldBinop(x, core.BitVec.Sub)
}

// foldBinop implements fold-or-preserve. An operand that evaluates to
// unknown is replaced by its original, unevaluated expression. If the
// arithmetic then fails (a slot still holds an expression, or the
// constants disagree on width) the node is rebuilt with the same
// operator, the possibly partially folded operands in original order,
// and the original tags unchanged.
func (e *HighEngine) foldBinop(x *highir.BinaryOp, op func(a, b core.BitVec) (core.BitVec, bool)) (core.Value, error) {
	v0, err := e.Expr(x.Operands[0])
	if err != nil {
		return nil, err
	}
	v1, err := e.Expr(x.Operands[1])
	if err != nil {
		return nil, err
	}
	if v0 == nil {
		v0 = x.Operands[0]
	}
	if v1 == nil {
		v1 = x.Operands[1]
	}

	if a, ok := v0.(core.BitVec); ok {
		if b, ok := v1.(core.BitVec); ok {
			if r, ok := op(a, b); ok {
				return r, nil
			}
		}
	}

	return &highir.BinaryOp{
		Op:       x.Op,
		Operands: [2]highir.Expr{e.preserve(v0, x.Operands[0]), e.preserve(v1, x.Operands[1])},
		Tags:     x.Tags,
	}, nil
}

// preserve turns an operand slot back into an expression: folded
// constants are re-wrapped, reconstructed nodes pass through, and any
// value the engine cannot express structurally falls back to the
// original operand.
func (e *HighEngine) preserve(v core.Value, orig highir.Expr) highir.Expr {
	switch t := v.(type) {
	case highir.Expr:
		return t
	case core.BitVec:
		return &highir.Const{Value: t.Uint64(), Bits: t.Bits()}
	default:
		return orig
	}
}
