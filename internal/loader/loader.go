// Package loader reads IR fixture files: YAML documents describing
// blocks of one dialect, used by the CLI and tests to feed the engine
// without the lifting pipeline.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revlift-labs/irlight/pkg/core"
	"github.com/revlift-labs/irlight/pkg/highir"
	"github.com/revlift-labs/irlight/pkg/lowir"
)

// Dialect names accepted in fixture files.
const (
	DialectLow  = "low"
	DialectHigh = "high"
)

// File is one parsed fixture: an architecture plus the blocks of
// exactly one dialect.
type File struct {
	Dialect string
	Arch    *core.Arch
	Low     []*lowir.Block
	High    []*highir.Block
}

type rawFile struct {
	Dialect string     `yaml:"dialect"`
	Arch    rawArch    `yaml:"arch"`
	Blocks  []rawBlock `yaml:"blocks"`
}

type rawArch struct {
	Name string `yaml:"name"`
	Bits uint8  `yaml:"bits"`
}

type rawBlock struct {
	Addr       uint64    `yaml:"addr"`
	Statements []rawStmt `yaml:"statements"`
}

// rawStmt is the union of every statement shape; Stmt selects which
// fields apply.
type rawStmt struct {
	Stmt   string   `yaml:"stmt"`
	Addr   uint64   `yaml:"addr"`
	Delta  uint64   `yaml:"delta"`
	Ins    uint64   `yaml:"ins"`
	Temp   int      `yaml:"temp"`
	Bits   uint8    `yaml:"bits"`
	Offset int      `yaml:"offset"`
	Src    *rawExpr `yaml:"src"`
	To     *rawExpr `yaml:"to"`
	Target *rawExpr `yaml:"target"`
}

type rawExpr struct {
	Expr   string     `yaml:"expr"`
	Value  uint64     `yaml:"value"`
	Bits   uint8      `yaml:"bits"`
	Temp   int        `yaml:"temp"`
	Offset int        `yaml:"offset"`
	Op     string     `yaml:"op"`
	Addr   *rawExpr   `yaml:"addr"`
	Arg    *rawExpr   `yaml:"arg"`
	Args   []*rawExpr `yaml:"args"`
}

// Load reads and parses one fixture file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse builds a File from fixture YAML.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	arch := &core.Arch{Name: raw.Arch.Name, Bits: raw.Arch.Bits}
	if arch.Name == "" {
		arch.Name = "amd64"
	}
	if arch.Bits == 0 {
		arch.Bits = 64
	}
	b := builder{arch: arch}
	f := &File{Dialect: raw.Dialect, Arch: arch}

	switch raw.Dialect {
	case DialectLow:
		for i, rb := range raw.Blocks {
			blk, err := b.lowBlock(rb)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			f.Low = append(f.Low, blk)
		}
	case DialectHigh:
		for i, rb := range raw.Blocks {
			blk, err := b.highBlock(rb)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			f.High = append(f.High, blk)
		}
	default:
		return nil, fmt.Errorf("unknown dialect %q (want %q or %q)", raw.Dialect, DialectLow, DialectHigh)
	}
	return f, nil
}

type builder struct {
	arch *core.Arch
}

func (b builder) bits(declared uint8) uint8 {
	if declared == 0 {
		return b.arch.Bits
	}
	return declared
}

func (b builder) lowBlock(rb rawBlock) (*lowir.Block, error) {
	blk := &lowir.Block{Addr: rb.Addr}
	for i, rs := range rb.Statements {
		stmt, err := b.lowStmt(rs)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	return blk, nil
}

func (b builder) lowStmt(rs rawStmt) (lowir.Stmt, error) {
	switch rs.Stmt {
	case "mark":
		return &lowir.InsnMark{Addr: rs.Addr, Delta: rs.Delta}, nil
	case "tmp":
		src, err := b.lowExpr(rs.Src)
		if err != nil {
			return nil, err
		}
		return &lowir.TempAssign{Temp: rs.Temp, Src: src}, nil
	case "reg":
		src, err := b.lowExpr(rs.Src)
		if err != nil {
			return nil, err
		}
		return &lowir.RegisterWrite{Offset: rs.Offset, Src: src}, nil
	case "store":
		addr, err := b.lowExpr(rs.To)
		if err != nil {
			return nil, err
		}
		src, err := b.lowExpr(rs.Src)
		if err != nil {
			return nil, err
		}
		return &lowir.MemoryWrite{Addr: addr, Src: src}, nil
	default:
		return nil, fmt.Errorf("unknown low statement kind %q", rs.Stmt)
	}
}

func (b builder) lowExpr(re *rawExpr) (lowir.Expr, error) {
	if re == nil {
		return nil, fmt.Errorf("missing expression")
	}
	switch re.Expr {
	case "const":
		return &lowir.Const{Value: core.NewBitVec(re.Value, b.bits(re.Bits))}, nil
	case "tmp":
		return &lowir.TempRead{Temp: re.Temp}, nil
	case "reg":
		return &lowir.RegisterRead{Offset: re.Offset, Bits: b.bits(re.Bits)}, nil
	case "load":
		addr, err := b.lowExpr(re.Addr)
		if err != nil {
			return nil, err
		}
		return &lowir.MemoryRead{Addr: addr, Bits: b.bits(re.Bits)}, nil
	case "unop":
		arg, err := b.lowExpr(re.Arg)
		if err != nil {
			return nil, err
		}
		return &lowir.UnaryOp{Op: re.Op, Arg: arg}, nil
	case "binop":
		if len(re.Args) != 2 {
			return nil, fmt.Errorf("binop %q wants 2 args, got %d", re.Op, len(re.Args))
		}
		a0, err := b.lowExpr(re.Args[0])
		if err != nil {
			return nil, err
		}
		a1, err := b.lowExpr(re.Args[1])
		if err != nil {
			return nil, err
		}
		return &lowir.BinaryOp{Op: re.Op, Args: [2]lowir.Expr{a0, a1}}, nil
	default:
		return nil, fmt.Errorf("unknown low expression kind %q", re.Expr)
	}
}

func (b builder) highBlock(rb rawBlock) (*highir.Block, error) {
	blk := &highir.Block{Addr: rb.Addr}
	for i, rs := range rb.Statements {
		stmt, err := b.highStmt(rs)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	return blk, nil
}

func (b builder) highStmt(rs rawStmt) (highir.Stmt, error) {
	switch rs.Stmt {
	case "assign":
		src, err := b.highExpr(rs.Src)
		if err != nil {
			return nil, err
		}
		dst := &highir.Temp{Idx: rs.Temp, Bits: b.bits(rs.Bits)}
		return &highir.Assign{InsAddr: rs.Ins, Dst: dst, Src: src}, nil
	case "store":
		addr, err := b.highExpr(rs.To)
		if err != nil {
			return nil, err
		}
		src, err := b.highExpr(rs.Src)
		if err != nil {
			return nil, err
		}
		return &highir.Store{InsAddr: rs.Ins, Addr: addr, Src: src}, nil
	case "jump":
		target, err := b.highExpr(rs.Target)
		if err != nil {
			return nil, err
		}
		return &highir.Jump{InsAddr: rs.Ins, Target: target}, nil
	case "call":
		target, err := b.highExpr(rs.Target)
		if err != nil {
			return nil, err
		}
		return &highir.Call{InsAddr: rs.Ins, Target: target}, nil
	default:
		return nil, fmt.Errorf("unknown high statement kind %q", rs.Stmt)
	}
}

func (b builder) highExpr(re *rawExpr) (highir.Expr, error) {
	if re == nil {
		return nil, fmt.Errorf("missing expression")
	}
	switch re.Expr {
	case "const":
		return &highir.Const{Value: re.Value, Bits: b.bits(re.Bits)}, nil
	case "tmp":
		return &highir.Temp{Idx: re.Temp, Bits: b.bits(re.Bits)}, nil
	case "load":
		addr, err := b.highExpr(re.Addr)
		if err != nil {
			return nil, err
		}
		return &highir.Load{Addr: addr, Bits: b.bits(re.Bits)}, nil
	case "unop":
		arg, err := b.highExpr(re.Arg)
		if err != nil {
			return nil, err
		}
		return &highir.UnaryOp{Op: re.Op, Operand: arg}, nil
	case "binop":
		if len(re.Args) != 2 {
			return nil, fmt.Errorf("binop %q wants 2 args, got %d", re.Op, len(re.Args))
		}
		a0, err := b.highExpr(re.Args[0])
		if err != nil {
			return nil, err
		}
		a1, err := b.highExpr(re.Args[1])
		if err != nil {
			return nil, err
		}
		return &highir.BinaryOp{Op: re.Op, Operands: [2]highir.Expr{a0, a1}}, nil
	default:
		return nil, fmt.Errorf("unknown high expression kind %q", re.Expr)
	}
}
