package window

import (
	"math"

	"github.com/chronobio/thermograph/schema"
	"github.com/gammazero/deque"
)

// DefaultMinutes is the window size used when a request does not specify
// one: 2.5 minutes, i.e. 576 windows per day at one row per minute.
const DefaultMinutes = 2.5

const (
	minutesPerDay    = 1440
	darkMinutes      = 720 // lights off for the first 12 hours of each day
	estrusPeriodDays = 4
	estrusPhaseDay   = 2
)

// Aggregate partitions rows into contiguous groups of windowSizeMinutes by
// row ordinal and summarizes each group. Group i holds rows
// [floor(i*w), floor((i+1)*w)), so grouping is by row count, not by any
// timestamp in the data; this assumes uniform one-row-per-minute sampling.
//
// Each row contributes the mean of its selected cohort columns, ignoring
// NaN cells. A row whose selected columns are all NaN contributes nothing,
// and a group with no contributing rows averages to 0.
//
// The transform is pure: identical input always yields an identical output
// sequence, and empty input yields an empty sequence.
func Aggregate(
	rows []schema.Row,
	cohort Cohort,
	windowSizeMinutes float64,
) []schema.Window {
	if len(rows) == 0 || windowSizeMinutes <= 0 {
		return nil
	}

	cols := cohort.Columns()
	n := len(rows)
	count := int(math.Ceil(float64(n) / windowSizeMinutes))

	result := make([]schema.Window, 0, count)
	means := deque.New[float64](0, 64)

	for i := 0; i < count; i++ {
		lo := int(math.Floor(float64(i) * windowSizeMinutes))
		hi := int(math.Floor(float64(i+1) * windowSizeMinutes))
		if hi > n {
			hi = n
		}

		means.Clear()
		for r := lo; r < hi; r++ {
			if m, ok := rowMean(rows[r], cols); ok {
				means.PushBack(m)
			}
		}

		minuteOffset := float64(i) * windowSizeMinutes
		dayIndex := int(math.Floor(minuteOffset / minutesPerDay))

		result = append(result, schema.Window{
			Index:        i,
			MinuteOffset: minuteOffset,
			DayIndex:     dayIndex,
			DayFraction:  minuteOffset / minutesPerDay,
			AvgTemp:      meanOf(means),
			Dark:         math.Mod(minuteOffset, minutesPerDay) < darkMinutes,
			Estrus:       dayIndex%estrusPeriodDays == estrusPhaseDay,
		})
	}

	return result
}

func rowMean(row schema.Row, cols []string) (float64, bool) {
	sum := 0.0
	count := 0

	for _, col := range cols {
		v, ok := row.Temps[col]
		if !ok || math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}

	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func meanOf(values *deque.Deque[float64]) float64 {
	if values.Len() == 0 {
		return 0
	}

	sum := 0.0
	for i := 0; i < values.Len(); i++ {
		sum += values.At(i)
	}
	return sum / float64(values.Len())
}
