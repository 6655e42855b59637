package schema

// Row is one per-minute sampling record from the source table. Temps maps
// column names (e.g. fem_temp_3) to readings in Celsius; missing or
// malformed cells are stored as NaN.
type Row struct {
	Ordinal int
	Temps   map[string]float64
}

// Window summarizes one fixed-size contiguous group of rows. Windows are
// immutable value objects: the whole sequence is recomputed from scratch
// whenever the cohort or window size changes, never mutated in place.
type Window struct {
	Index        int     `json:"index"`
	MinuteOffset float64 `json:"minuteOffset"`
	DayIndex     int     `json:"dayIndex"`
	DayFraction  float64 `json:"dayFraction"`
	AvgTemp      float64 `json:"avgTemp"`
	Dark         bool    `json:"dark"`
	Estrus       bool    `json:"estrus"`
}

type WindowSeries struct {
	SeriesName string   `json:"seriesName"`
	Unit       string   `json:"unit"`
	Windows    []Window `json:"windows"`
}

func (s WindowSeries) Name() string {
	return "windows"
}
