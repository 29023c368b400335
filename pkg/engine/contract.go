package engine

import (
	"fmt"

	"github.com/revlift-labs/irlight/pkg/core"
)

// LowCapabilities is the contract a concrete analysis supplies to a
// LowEngine. The engine evaluates operand expressions and delegates
// every register and memory access here; the analysis observes writes
// as side effects and answers reads from its own abstract state.
//
// A read may legitimately answer (nil, nil): the value is unknown and
// evaluation of the surrounding expression degrades accordingly. An
// error aborts the whole Process call.
type LowCapabilities interface {
	ReadRegister(offset int, bits uint8, ctx *Context) (core.Value, error)
	WriteRegister(offset int, v core.Value, ctx *Context) error
	ReadMemory(addr core.Value, bits uint8, ctx *Context) (core.Value, error)
	WriteMemory(addr, v core.Value, ctx *Context) error
}

// HighCapabilities is the contract a concrete analysis supplies to a
// HighEngine. Jump and Call targets arrive evaluated; an unfoldable
// target arrives as the reconstructed expression node.
type HighCapabilities interface {
	ReadMemory(addr core.Value, bits uint8, ctx *Context) (core.Value, error)
	WriteMemory(addr, v core.Value, ctx *Context) error
	Jump(target core.Value, ctx *Context) error
	Call(target core.Value, ctx *Context) error
}

// UnimplementedLowCapabilities fails every capability with
// ErrNotImplemented. Embed it to implement only the capabilities an
// analysis needs; reaching one left unimplemented aborts Process with
// an error naming the capability.
type UnimplementedLowCapabilities struct{}

// ReadRegister implements LowCapabilities.
func (UnimplementedLowCapabilities) ReadRegister(int, uint8, *Context) (core.Value, error) {
	return nil, fmt.Errorf("ReadRegister: %w", ErrNotImplemented)
}

// WriteRegister implements LowCapabilities.
func (UnimplementedLowCapabilities) WriteRegister(int, core.Value, *Context) error {
	return fmt.Errorf("WriteRegister: %w", ErrNotImplemented)
}

// ReadMemory implements LowCapabilities.
func (UnimplementedLowCapabilities) ReadMemory(core.Value, uint8, *Context) (core.Value, error) {
	return nil, fmt.Errorf("ReadMemory: %w", ErrNotImplemented)
}

// WriteMemory implements LowCapabilities.
func (UnimplementedLowCapabilities) WriteMemory(core.Value, core.Value, *Context) error {
	return fmt.Errorf("WriteMemory: %w", ErrNotImplemented)
}

// UnimplementedHighCapabilities fails every capability with
// ErrNotImplemented.
type UnimplementedHighCapabilities struct{}

// ReadMemory implements HighCapabilities.
func (UnimplementedHighCapabilities) ReadMemory(core.Value, uint8, *Context) (core.Value, error) {
	return nil, fmt.Errorf("ReadMemory: %w", ErrNotImplemented)
}

// WriteMemory implements HighCapabilities.
func (UnimplementedHighCapabilities) WriteMemory(core.Value, core.Value, *Context) error {
	return fmt.Errorf("WriteMemory: %w", ErrNotImplemented)
}

// Jump implements HighCapabilities.
func (UnimplementedHighCapabilities) Jump(core.Value, *Context) error {
	return fmt.Errorf("Jump: %w", ErrNotImplemented)
}

// Call implements HighCapabilities.
func (UnimplementedHighCapabilities) Call(core.Value, *Context) error {
	return fmt.Errorf("Call: %w", ErrNotImplemented)
}
