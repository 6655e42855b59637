package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/window"
	"github.com/chrispappas/golang-generics-set/set"
	"github.com/pkg/errors"
)

// ReadFile parses the source CSV into rows. The file must have a header
// row naming the fem_temp_1..13 and male_temp_1..13 columns; any other
// columns are ignored. Row order in the file defines the ordinals.
func ReadFile(path string) ([]schema.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer func() { _ = f.Close() }()

	rows, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return rows, nil
}

func Read(r io.Reader) ([]schema.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short records degrade to missing cells, not errors

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	names := make([]string, len(header))
	index := map[string]int{}
	for i, name := range header {
		names[i] = strings.TrimSpace(name)
		index[names[i]] = i
	}

	required := window.CohortBoth.Columns()

	seen := set.FromSlice(names)
	for _, col := range required {
		if !seen.Has(col) {
			return nil, errors.Errorf("missing required column: %s", col)
		}
	}

	var rows []schema.Row
	for ordinal := 0; ; ordinal++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read record %d", ordinal)
		}

		temps := make(map[string]float64, len(required))
		for _, col := range required {
			temps[col] = parseCell(record, index[col])
		}

		rows = append(rows, schema.Row{
			Ordinal: ordinal,
			Temps:   temps,
		})
	}

	return rows, nil
}

// parseCell returns NaN for absent, empty, or non-numeric cells; malformed
// values are missing data, never a fatal error.
func parseCell(record []string, i int) float64 {
	if i >= len(record) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
