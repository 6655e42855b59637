package summary

import (
	"github.com/chronobio/thermograph/schema"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary holds descriptive statistics over an aggregated window sequence.
// LightMean and DarkMean split the windows by the 12-hour light cycle.
type Summary struct {
	Cohort    string  `json:"cohort"`
	Windows   int     `json:"windows"`
	Mean      float64 `json:"mean"`
	Median    float64 `json:"median"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	StdDev    float64 `json:"stdDev"`
	LightMean float64 `json:"lightMean"`
	DarkMean  float64 `json:"darkMean"`
}

func Compute(cohort string, windows []schema.Window) (Summary, error) {
	result := Summary{
		Cohort:  cohort,
		Windows: len(windows),
	}
	if len(windows) == 0 {
		return result, nil
	}

	temps := make(stats.Float64Data, 0, len(windows))
	var light, dark stats.Float64Data
	for _, w := range windows {
		temps = append(temps, w.AvgTemp)
		if w.Dark {
			dark = append(dark, w.AvgTemp)
		} else {
			light = append(light, w.AvgTemp)
		}
	}

	var err error
	if result.Mean, err = stats.Mean(temps); err != nil {
		return result, errors.Wrap(err, "mean")
	}
	if result.Median, err = stats.Median(temps); err != nil {
		return result, errors.Wrap(err, "median")
	}
	if result.Min, err = stats.Min(temps); err != nil {
		return result, errors.Wrap(err, "min")
	}
	if result.Max, err = stats.Max(temps); err != nil {
		return result, errors.Wrap(err, "max")
	}
	if len(temps) > 1 {
		if result.StdDev, err = stats.StandardDeviationSample(temps); err != nil {
			return result, errors.Wrap(err, "stddev")
		}
	}

	if len(light) > 0 {
		if result.LightMean, err = stats.Mean(light); err != nil {
			return result, errors.Wrap(err, "light mean")
		}
	}
	if len(dark) > 0 {
		if result.DarkMean, err = stats.Mean(dark); err != nil {
			return result, errors.Wrap(err, "dark mean")
		}
	}

	return result, nil
}
