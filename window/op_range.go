package window

import (
	"github.com/chronobio/thermograph/schema"
)

// OpRange keeps windows whose DayFraction lies in [From, To]. It backs the
// brush/zoom time-range selection.
type OpRange struct {
	From float64
	To   float64
}

func (o OpRange) ProcessWindows(windows []schema.Window) []schema.Window {
	result := make([]schema.Window, 0, len(windows))
	for _, w := range windows {
		if w.DayFraction < o.From || w.DayFraction > o.To {
			continue
		}
		result = append(result, w)
	}
	return result
}
