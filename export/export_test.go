package export

import (
	"bytes"
	"testing"

	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/summary"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSeries() schema.WindowSeries {
	return schema.WindowSeries{
		SeriesName: "female",
		Unit:       "c",
		Windows: []schema.Window{
			{Index: 0, MinuteOffset: 0, DayIndex: 0, DayFraction: 0, AvgTemp: 37.1, Dark: true},
			{Index: 1, MinuteOffset: 2.5, DayIndex: 0, DayFraction: 2.5 / 1440, AvgTemp: 37.0667, Dark: true},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testSeries()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Windows")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 windows
	require.Equal(t, "window", rows[0][0])
	require.Equal(t, "avg_temp_c", rows[0][4])
	require.Equal(t, "0", rows[1][0])
}

func TestWritePDF(t *testing.T) {
	sum, err := summary.Compute("female", testSeries().Windows)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testSeries(), sum))

	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
