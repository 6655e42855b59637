package window

import (
	"github.com/chronobio/thermograph/schema"
)

type chain struct {
	ops []Operator
}

// Chain applies operators left to right.
func Chain(ops ...Operator) Operator {
	return chain{ops: ops}
}

func (c chain) ProcessWindows(windows []schema.Window) []schema.Window {
	for _, op := range c.ops {
		windows = op.ProcessWindows(windows)
	}
	return windows
}
