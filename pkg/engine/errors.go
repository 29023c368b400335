package engine

import "errors"

// ErrNotImplemented reports that evaluation reached a mandatory
// capability the concrete analysis never implemented. Unlike an
// unsupported node or operator, which is logged and absorbed, this is
// a configuration defect in the analysis and aborts the Process call.
var ErrNotImplemented = errors.New("capability not implemented")

// ErrNoBlock reports a Process call without a block.
var ErrNoBlock = errors.New("no block to process")
