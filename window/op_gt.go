package window

import (
	"github.com/chronobio/thermograph/schema"
)

// OpGt keeps windows whose average temperature exceeds X.
type OpGt struct {
	X float64
}

func (o OpGt) ProcessWindows(windows []schema.Window) []schema.Window {
	result := make([]schema.Window, 0, len(windows))
	for _, w := range windows {
		if w.AvgTemp > o.X {
			result = append(result, w)
		}
	}
	return result
}
