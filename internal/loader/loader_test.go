package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revlift-labs/irlight/internal/loader"
	"github.com/revlift-labs/irlight/pkg/core"
	"github.com/revlift-labs/irlight/pkg/highir"
	"github.com/revlift-labs/irlight/pkg/lowir"
)

const lowFixture = `
dialect: low
arch: { name: amd64, bits: 64 }
blocks:
  - addr: 0x1000
    statements:
      - { stmt: mark, addr: 0x1000, delta: 0 }
      - stmt: tmp
        temp: 0
        src: { expr: const, value: 5 }
      - stmt: reg
        offset: 16
        src:
          expr: binop
          op: Add64
          args:
            - { expr: tmp, temp: 0 }
            - { expr: const, value: 3 }
      - stmt: store
        to: { expr: const, value: 0x8000 }
        src: { expr: load, addr: { expr: const, value: 0x9000 }, bits: 32 }
`

func TestParseLowFixture(t *testing.T) {
	f, err := loader.Parse([]byte(lowFixture))
	require.NoError(t, err)
	assert.Equal(t, loader.DialectLow, f.Dialect)
	assert.Equal(t, &core.Arch{Name: "amd64", Bits: 64}, f.Arch)
	require.Len(t, f.Low, 1)

	blk := f.Low[0]
	assert.Equal(t, uint64(0x1000), blk.Addr)
	require.Len(t, blk.Statements, 4)

	mark, ok := blk.Statements[0].(*lowir.InsnMark)
	require.True(t, ok)
	assert.Equal(t, uint64(0x1000), mark.Addr)

	tmp, ok := blk.Statements[1].(*lowir.TempAssign)
	require.True(t, ok)
	c, ok := tmp.Src.(*lowir.Const)
	require.True(t, ok)
	assert.Equal(t, core.NewBitVec(5, 64), c.Value, "const width defaults to the arch word size")

	reg, ok := blk.Statements[2].(*lowir.RegisterWrite)
	require.True(t, ok)
	binop, ok := reg.Src.(*lowir.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "Add64", binop.Op)

	store, ok := blk.Statements[3].(*lowir.MemoryWrite)
	require.True(t, ok)
	ld, ok := store.Src.(*lowir.MemoryRead)
	require.True(t, ok)
	assert.Equal(t, uint8(32), ld.Bits)
}

const highFixture = `
dialect: high
blocks:
  - addr: 0x2000
    statements:
      - stmt: assign
        ins: 0x2000
        temp: 0
        src:
          expr: binop
          op: Add
          args:
            - { expr: const, value: 5 }
            - { expr: const, value: 3 }
      - stmt: jump
        ins: 0x2004
        target: { expr: tmp, temp: 0 }
      - stmt: call
        ins: 0x2008
        target: { expr: const, value: 0x401000 }
`

func TestParseHighFixture(t *testing.T) {
	f, err := loader.Parse([]byte(highFixture))
	require.NoError(t, err)
	assert.Equal(t, loader.DialectHigh, f.Dialect)
	require.Len(t, f.High, 1)

	blk := f.High[0]
	require.Len(t, blk.Statements, 3)

	assign, ok := blk.Statements[0].(*highir.Assign)
	require.True(t, ok)
	assert.Equal(t, uint64(0x2000), assign.Address())
	assert.Equal(t, 0, assign.Dst.Idx)

	jump, ok := blk.Statements[1].(*highir.Jump)
	require.True(t, ok)
	assert.Equal(t, uint64(0x2004), jump.Address())

	_, ok = blk.Statements[2].(*highir.Call)
	require.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		wantErr string
	}{
		{"unknown dialect", "dialect: mid\nblocks: []\n", "unknown dialect"},
		{"unknown statement", "dialect: low\nblocks:\n  - addr: 1\n    statements:\n      - { stmt: phi }\n", "unknown low statement kind"},
		{"missing src", "dialect: low\nblocks:\n  - addr: 1\n    statements:\n      - { stmt: tmp, temp: 0 }\n", "missing expression"},
		{"bad binop arity", "dialect: high\nblocks:\n  - addr: 1\n    statements:\n      - stmt: jump\n        target: { expr: binop, op: Add, args: [ { expr: const, value: 1 } ] }\n", "wants 2 args"},
		{"not yaml", "{", "parsing fixture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tt.fixture))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
