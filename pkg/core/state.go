package core

// Arch describes the target architecture of the code under analysis.
type Arch struct {
	Name string
	// Bits is the word size, and the width register and memory reads
	// default to when a node does not carry its own.
	Bits uint8
}

// State is the analysis state bound to one Process call. The engine is
// oblivious to its contents beyond the architecture descriptor; the
// concrete analysis reads and writes its own state through the
// capability interfaces.
type State interface {
	Arch() *Arch
}
