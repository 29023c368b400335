package core

import (
	"encoding/json"
	"fmt"
)

// Value is the result of evaluating an expression. A nil Value is the
// explicit "unknown" result: the engine could not decide what the
// expression evaluates to. Unknown is distinct from every valid value,
// including a zero-width or zero-valued BitVec.
//
// Concrete analyses may store values of their own types (definition
// sets, intervals, symbolic terms) in temporaries and registers; the
// base engine folds arithmetic only over BitVec and treats everything
// else as unfoldable.
type Value any

// BitVec is a fixed-width concrete constant. Arithmetic wraps at the
// declared width. Operations on operands of different widths fail
// rather than silently extending either side.
type BitVec struct {
	value uint64
	bits  uint8
}

// NewBitVec returns a BitVec of the given width with value truncated
// to fit. Widths above 64 are clamped to 64.
func NewBitVec(value uint64, bits uint8) BitVec {
	if bits > 64 {
		bits = 64
	}
	return BitVec{value: value & widthMask(bits), bits: bits}
}

func widthMask(bits uint8) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// Uint64 returns the constant's value.
func (b BitVec) Uint64() uint64 { return b.value }

// Bits returns the constant's width in bits.
func (b BitVec) Bits() uint8 { return b.bits }

// Add returns the width-truncated sum. It reports false when the
// operand widths differ.
func (b BitVec) Add(o BitVec) (BitVec, bool) {
	if b.bits != o.bits {
		return BitVec{}, false
	}
	return NewBitVec(b.value+o.value, b.bits), true
}

// Sub returns the width-truncated difference. It reports false when
// the operand widths differ.
func (b BitVec) Sub(o BitVec) (BitVec, bool) {
	if b.bits != o.bits {
		return BitVec{}, false
	}
	return NewBitVec(b.value-o.value, b.bits), true
}

// Convert returns the constant resized to the given width: truncated
// when narrowing, zero-extended when widening.
func (b BitVec) Convert(bits uint8) BitVec {
	return NewBitVec(b.value, bits)
}

// String renders the constant as value<width>.
func (b BitVec) String() string {
	return fmt.Sprintf("%#x<%d>", b.value, b.bits)
}

// MarshalJSON renders the constant in its string form.
func (b BitVec) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}
