package window

import (
	"github.com/chronobio/thermograph/schema"
)

// CtoF converts Celsius to Fahrenheit. Readings are stored in Celsius;
// conversion is applied only at display time.
func CtoF(v float64) float64 {
	return v*1.8 + 32
}

// FtoC is the inverse of CtoF.
func FtoC(v float64) float64 {
	return (v - 32) / 1.8
}

type OpCtoF struct{}

func (o OpCtoF) ProcessWindows(windows []schema.Window) []schema.Window {
	result := make([]schema.Window, len(windows))
	for idx, w := range windows {
		w.AvgTemp = CtoF(w.AvgTemp)
		result[idx] = w
	}
	return result
}

type OpFtoC struct{}

func (o OpFtoC) ProcessWindows(windows []schema.Window) []schema.Window {
	result := make([]schema.Window, len(windows))
	for idx, w := range windows {
		w.AvgTemp = FtoC(w.AvgTemp)
		result[idx] = w
	}
	return result
}
