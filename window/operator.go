package window

import (
	"github.com/chronobio/thermograph/schema"
)

// Operator transforms an aggregated window sequence for display. Operators
// never mutate their input; each produces a fresh sequence.
type Operator interface {
	ProcessWindows(windows []schema.Window) []schema.Window
}

type Identity struct{}

func (i Identity) ProcessWindows(windows []schema.Window) []schema.Window {
	return windows
}

// UnitOf reports the display unit an operator leaves the series in.
// Readings are stored in Celsius; only a trailing conversion changes that.
func UnitOf(op Operator) string {
	switch o := op.(type) {
	case OpCtoF:
		return "f"
	case chain:
		unit := "c"
		for _, sub := range o.ops {
			switch sub.(type) {
			case OpCtoF:
				unit = "f"
			case OpFtoC:
				unit = "c"
			}
		}
		return unit
	default:
		return "c"
	}
}
