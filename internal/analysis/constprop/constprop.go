// Package constprop implements a reference intra-block constant
// propagation pass over both IR dialects. It supplies the engine
// capabilities from plain register and memory maps and is used by the
// CLI and as an executable example of the capability contract.
package constprop

import (
	"fmt"
	"log/slog"

	"github.com/revlift-labs/irlight/pkg/core"
	"github.com/revlift-labs/irlight/pkg/engine"
	"github.com/revlift-labs/irlight/pkg/highir"
	"github.com/revlift-labs/irlight/pkg/lowir"
)

// Pass tracks concrete register and memory contents while a block is
// evaluated. One Pass evaluates one block; its maps are the analysis
// state the engine's capability calls read and write.
type Pass struct {
	arch   *core.Arch
	logger *slog.Logger

	regs map[int]core.Value
	mem  map[uint64]core.Value

	jumps []core.Value
	calls []core.Value
}

// New returns a Pass for the given architecture. A nil logger
// discards engine diagnostics.
func New(arch *core.Arch, logger *slog.Logger) *Pass {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pass{
		arch:   arch,
		logger: logger,
		regs:   make(map[int]core.Value),
		mem:    make(map[uint64]core.Value),
	}
}

// state adapts the pass to the engine's opaque state contract.
type state struct {
	arch *core.Arch
}

func (s state) Arch() *core.Arch { return s.arch }

// RunLow evaluates one low IR block and returns what propagated.
func (p *Pass) RunLow(block *lowir.Block) (*Result, error) {
	eng := engine.NewLow(p, engine.Config{Logger: p.logger})
	if err := eng.Process(state{arch: p.arch}, block); err != nil {
		return nil, fmt.Errorf("processing block %#x: %w", block.Addr, err)
	}
	return p.result(block.Addr), nil
}

// RunHigh evaluates one high IR block and returns what propagated.
func (p *Pass) RunHigh(block *highir.Block) (*Result, error) {
	eng := engine.NewHigh(p, engine.Config{Logger: p.logger})
	if err := eng.Process(state{arch: p.arch}, block); err != nil {
		return nil, fmt.Errorf("processing block %#x: %w", block.Addr, err)
	}
	return p.result(block.Addr), nil
}

// ReadRegister implements engine.LowCapabilities.
func (p *Pass) ReadRegister(offset int, _ uint8, _ *engine.Context) (core.Value, error) {
	v, ok := p.regs[offset]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// WriteRegister implements engine.LowCapabilities. An unknown value
// clobbers whatever constant the register held.
func (p *Pass) WriteRegister(offset int, v core.Value, _ *engine.Context) error {
	if v == nil {
		delete(p.regs, offset)
		return nil
	}
	p.regs[offset] = v
	return nil
}

// ReadMemory implements both capability contracts.
func (p *Pass) ReadMemory(addr core.Value, _ uint8, _ *engine.Context) (core.Value, error) {
	a, ok := addr.(core.BitVec)
	if !ok {
		return nil, nil
	}
	v, ok := p.mem[a.Uint64()]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// WriteMemory implements both capability contracts. A write through
// an unknown address could land anywhere, so the tracked memory is
// dropped wholesale.
func (p *Pass) WriteMemory(addr, v core.Value, ctx *engine.Context) error {
	a, ok := addr.(core.BitVec)
	if !ok {
		p.logger.Debug("write through unknown address clobbers memory", "loc", ctx.Loc())
		p.mem = make(map[uint64]core.Value)
		return nil
	}
	if v == nil {
		delete(p.mem, a.Uint64())
		return nil
	}
	p.mem[a.Uint64()] = v
	return nil
}

// Jump implements engine.HighCapabilities.
func (p *Pass) Jump(target core.Value, _ *engine.Context) error {
	p.jumps = append(p.jumps, target)
	return nil
}

// Call implements engine.HighCapabilities.
func (p *Pass) Call(target core.Value, _ *engine.Context) error {
	p.calls = append(p.calls, target)
	return nil
}
