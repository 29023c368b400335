package constprop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revlift-labs/irlight/internal/analysis/constprop"
	"github.com/revlift-labs/irlight/internal/testutil"
	"github.com/revlift-labs/irlight/pkg/core"
	"github.com/revlift-labs/irlight/pkg/highir"
	"github.com/revlift-labs/irlight/pkg/lowir"
)

var amd64 = &core.Arch{Name: "amd64", Bits: 64}

func TestRunLowPropagatesThroughRegisters(t *testing.T) {
	p := constprop.New(amd64, testutil.NewTestLogger(t))

	block := &lowir.Block{
		Addr: 0x1000,
		Statements: []lowir.Stmt{
			&lowir.InsnMark{Addr: 0x1000},
			&lowir.RegisterWrite{Offset: 16, Src: &lowir.Const{Value: core.NewBitVec(40, 64)}},
			&lowir.InsnMark{Addr: 0x1000, Delta: 4},
			&lowir.TempAssign{Temp: 0, Src: &lowir.BinaryOp{
				Op: "Add64",
				Args: [2]lowir.Expr{
					&lowir.RegisterRead{Offset: 16, Bits: 64},
					&lowir.Const{Value: core.NewBitVec(2, 64)},
				},
			}},
			&lowir.RegisterWrite{Offset: 24, Src: &lowir.TempRead{Temp: 0}},
		},
	}

	res, err := p.RunLow(block)
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, uint64(0x1000), res.BlockAddr)
	assert.Equal(t, core.NewBitVec(40, 64), res.Registers[16])
	assert.Equal(t, core.NewBitVec(42, 64), res.Registers[24])
}

func TestRunLowUnknownClobbersRegister(t *testing.T) {
	p := constprop.New(amd64, nil)

	block := &lowir.Block{
		Addr: 0x1000,
		Statements: []lowir.Stmt{
			&lowir.RegisterWrite{Offset: 0, Src: &lowir.Const{Value: core.NewBitVec(1, 64)}},
			// Mul is not in the base family table, so this write is unknown.
			&lowir.RegisterWrite{Offset: 0, Src: &lowir.BinaryOp{
				Op: "Mul64",
				Args: [2]lowir.Expr{
					&lowir.Const{Value: core.NewBitVec(2, 64)},
					&lowir.Const{Value: core.NewBitVec(3, 64)},
				},
			}},
		},
	}

	res, err := p.RunLow(block)
	require.NoError(t, err)
	assert.NotContains(t, res.Registers, 0)
}

func TestRunHighRecordsTransfers(t *testing.T) {
	p := constprop.New(amd64, testutil.NewTestLogger(t))

	block := &highir.Block{
		Addr: 0x2000,
		Statements: []highir.Stmt{
			&highir.Store{
				InsAddr: 0x2000,
				Addr:    &highir.Const{Value: 0x8000, Bits: 64},
				Src: &highir.BinaryOp{Op: "Add", Operands: [2]highir.Expr{
					&highir.Const{Value: 5, Bits: 64},
					&highir.Const{Value: 3, Bits: 64},
				}},
			},
			&highir.Call{InsAddr: 0x2004, Target: &highir.Const{Value: 0x401000, Bits: 64}},
			&highir.Jump{InsAddr: 0x2008, Target: &highir.Load{
				Addr: &highir.Const{Value: 0x8000, Bits: 64},
				Bits: 64,
			}},
		},
	}

	res, err := p.RunHigh(block)
	require.NoError(t, err)
	assert.Equal(t, core.NewBitVec(8, 64), res.Memory[0x8000])
	require.Len(t, res.Calls, 1)
	assert.Equal(t, core.NewBitVec(0x401000, 64), res.Calls[0])
	require.Len(t, res.Jumps, 1)
	assert.Equal(t, core.NewBitVec(8, 64), res.Jumps[0], "the jump reads back the stored constant")
}

func TestRunHighUnfoldableJumpTargetSurvivesAsNode(t *testing.T) {
	p := constprop.New(amd64, nil)

	unfoldable := &highir.Load{Addr: &highir.Temp{Idx: 9, Bits: 64}, Bits: 64}
	block := &highir.Block{
		Addr: 0x3000,
		Statements: []highir.Stmt{
			&highir.Jump{InsAddr: 0x3000, Target: &highir.BinaryOp{
				Op:       "Add",
				Operands: [2]highir.Expr{&highir.Const{Value: 0x4000, Bits: 64}, unfoldable},
			}},
		},
	}

	res, err := p.RunHigh(block)
	require.NoError(t, err)
	require.Len(t, res.Jumps, 1)
	node, ok := res.Jumps[0].(*highir.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "Add", node.Op)
}

func TestResultsAreIndependentSnapshots(t *testing.T) {
	p := constprop.New(amd64, nil)

	block := &lowir.Block{
		Addr: 0x1000,
		Statements: []lowir.Stmt{
			&lowir.RegisterWrite{Offset: 0, Src: &lowir.Const{Value: core.NewBitVec(1, 64)}},
		},
	}

	first, err := p.RunLow(block)
	require.NoError(t, err)
	second, err := p.RunLow(block)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	first.Registers[99] = core.NewBitVec(7, 64)
	assert.NotContains(t, second.Registers, 99)
}
