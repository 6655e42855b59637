package export

import (
	"io"

	"github.com/chronobio/thermograph/schema"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the aggregated windows as a single-sheet workbook.
func WriteXLSX(w io.Writer, series schema.WindowSeries) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Windows"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "set sheet name")
	}

	headers := []string{
		"window", "minute_offset", "day", "day_fraction",
		"avg_temp_" + series.Unit, "dark", "estrus",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Wrap(err, "set header cell")
		}
	}

	for r, win := range series.Windows {
		values := []any{
			win.Index,
			win.MinuteOffset,
			win.DayIndex,
			win.DayFraction,
			win.AvgTemp,
			win.Dark,
			win.Estrus,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return errors.Wrap(err, "cell name")
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return errors.Wrap(err, "set cell")
			}
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}
