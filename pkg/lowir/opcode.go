package lowir

import (
	"strconv"
	"strings"
)

// OpDesc describes one opcode in the default catalog.
type OpDesc struct {
	// Conversion marks width-changing opcodes; the engine routes all
	// of them to one generic conversion handler.
	Conversion bool
}

// opcodes is the closed default catalog. Opcodes come in width
// families: any member of the "Add" family is named Add<bits>, and so
// on. Conversions are named Conv<from>to<to>.
var opcodes = map[string]OpDesc{
	"Add8": {}, "Add16": {}, "Add32": {}, "Add64": {},
	"Sub8": {}, "Sub16": {}, "Sub32": {}, "Sub64": {},
	"Mul8": {}, "Mul16": {}, "Mul32": {}, "Mul64": {},
	"And8": {}, "And16": {}, "And32": {}, "And64": {},
	"Or8": {}, "Or16": {}, "Or32": {}, "Or64": {},
	"Xor8": {}, "Xor16": {}, "Xor32": {}, "Xor64": {},
	"Shl8": {}, "Shl16": {}, "Shl32": {}, "Shl64": {},
	"Shr8": {}, "Shr16": {}, "Shr32": {}, "Shr64": {},
	"Not8": {}, "Not16": {}, "Not32": {}, "Not64": {},
	"Neg8": {}, "Neg16": {}, "Neg32": {}, "Neg64": {},
	"CmpEQ8": {}, "CmpEQ16": {}, "CmpEQ32": {}, "CmpEQ64": {},
	"CmpNE8": {}, "CmpNE16": {}, "CmpNE32": {}, "CmpNE64": {},
	"CmpLT32": {}, "CmpLT64": {},
	"CmpLE32": {}, "CmpLE64": {},
	"Conv8to16":  {Conversion: true},
	"Conv8to32":  {Conversion: true},
	"Conv8to64":  {Conversion: true},
	"Conv16to8":  {Conversion: true},
	"Conv16to32": {Conversion: true},
	"Conv16to64": {Conversion: true},
	"Conv32to8":  {Conversion: true},
	"Conv32to16": {Conversion: true},
	"Conv32to64": {Conversion: true},
	"Conv64to8":  {Conversion: true},
	"Conv64to16": {Conversion: true},
	"Conv64to32": {Conversion: true},
}

// LookupOp returns the catalog descriptor for op. It reports false for
// opcodes outside the default catalog.
func LookupOp(op string) (OpDesc, bool) {
	d, ok := opcodes[op]
	return d, ok
}

// IsConversion reports whether op is a width-changing conversion in
// the default catalog.
func IsConversion(op string) bool {
	d, ok := opcodes[op]
	return ok && d.Conversion
}

// ConversionTarget parses the destination width out of a conversion
// opcode name (Conv64to32 yields 32). It reports false when op is not
// a well-formed conversion name.
func ConversionTarget(op string) (uint8, bool) {
	if !strings.HasPrefix(op, "Conv") {
		return 0, false
	}
	from, to, ok := strings.Cut(op[len("Conv"):], "to")
	if !ok {
		return 0, false
	}
	if _, err := strconv.ParseUint(from, 10, 8); err != nil {
		return 0, false
	}
	bits, err := strconv.ParseUint(to, 10, 8)
	if err != nil || bits == 0 || bits > 64 {
		return 0, false
	}
	return uint8(bits), true
}
