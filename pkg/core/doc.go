// Package core defines the shared language of the irlight system.
//
// This package contains:
//   - Evaluation values (Value, BitVec)
//   - The opaque analysis state contract (State)
//   - The target architecture descriptor (Arch)
//
// The Golden Rule: pkg/core imports ONLY stdlib. The IR packages and
// the engine depend on core, not the reverse.
package core
