// Package engine evaluates one IR block at a time, partially folding
// expressions and forwarding every state access to the capability
// interfaces a concrete analysis supplies.
//
// There is one engine per dialect. LowEngine walks microcode-style
// lowir blocks and propagates unknown: an operand the base engine
// cannot decide poisons the whole expression. HighEngine walks
// structured highir blocks with fold-or-preserve semantics: subtrees
// that fold collapse to constants, subtrees that do not survive as
// reconstructed expression nodes. The divergence is deliberate:
// analyses over the high IR rewrite expressions in place, analyses
// over the low IR only consume values.
//
// Engines are not safe for concurrent use: each instance owns one
// evaluation context that is reset at the start of every Process call
// and cleared on every return path. Use one engine per goroutine.
package engine
