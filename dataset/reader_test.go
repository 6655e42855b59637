package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/chronobio/thermograph/window"
	"github.com/stretchr/testify/require"
)

// buildCSV makes a table with all required columns; each data row repeats
// the given cell in every column.
func buildCSV(cells ...string) string {
	header := strings.Join(window.CohortBoth.Columns(), ",")

	lines := []string{header}
	for _, cell := range cells {
		row := make([]string, window.SubjectsPerSex*2)
		for i := range row {
			row[i] = cell
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestReadAssignsOrdinals(t *testing.T) {
	rows, err := Read(strings.NewReader(buildCSV("37.0", "37.2", "36.8")))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, row := range rows {
		require.Equal(t, i, row.Ordinal)
		require.Len(t, row.Temps, window.SubjectsPerSex*2)
		require.False(t, math.IsNaN(row.Temps["fem_temp_1"]))
	}
	require.Equal(t, 37.2, rows[1].Temps["male_temp_13"])
}

func TestReadMalformedCellsDegradeToNaN(t *testing.T) {
	rows, err := Read(strings.NewReader(buildCSV("oops", "")))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		for col, v := range row.Temps {
			require.True(t, math.IsNaN(v), "column %s", col)
		}
	}
}

func TestReadShortRecord(t *testing.T) {
	header := strings.Join(window.CohortBoth.Columns(), ",")
	body := header + "\n37.0,37.1\n"

	rows, err := Read(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.Equal(t, 37.0, rows[0].Temps["fem_temp_1"])
	require.Equal(t, 37.1, rows[0].Temps["fem_temp_2"])
	require.True(t, math.IsNaN(rows[0].Temps["fem_temp_3"]))
}

func TestReadMissingRequiredColumn(t *testing.T) {
	_, err := Read(strings.NewReader("fem_temp_1,fem_temp_2\n37.0,37.1\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required column")
}

func TestReadIgnoresExtraColumns(t *testing.T) {
	header := "ts," + strings.Join(window.CohortBoth.Columns(), ",")
	row := make([]string, window.SubjectsPerSex*2+1)
	row[0] = "2024-01-01T00:00:00Z"
	for i := 1; i < len(row); i++ {
		row[i] = "36.9"
	}
	body := header + "\n" + strings.Join(row, ",") + "\n"

	rows, err := Read(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 36.9, rows[0].Temps["fem_temp_5"])
	_, hasTS := rows[0].Temps["ts"]
	require.False(t, hasTS)
}

func TestReadEmptyBody(t *testing.T) {
	header := strings.Join(window.CohortBoth.Columns(), ",")
	rows, err := Read(strings.NewReader(header + "\n"))
	require.NoError(t, err)
	require.Empty(t, rows)
}
