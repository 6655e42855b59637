package export

import (
	"fmt"
	"io"

	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/summary"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

// WritePDF writes a one-page summary report for an aggregated series.
func WritePDF(w io.Writer, series schema.WindowSeries, sum summary.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Core body temperature report")
	pdf.Ln(14)

	unit := "C"
	if series.Unit == "f" {
		unit = "F"
	}

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Cohort: %s", sum.Cohort),
		fmt.Sprintf("Windows: %d", sum.Windows),
		fmt.Sprintf("Mean: %.3f %s", sum.Mean, unit),
		fmt.Sprintf("Median: %.3f %s", sum.Median, unit),
		fmt.Sprintf("Min: %.3f %s", sum.Min, unit),
		fmt.Sprintf("Max: %.3f %s", sum.Max, unit),
		fmt.Sprintf("Std dev: %.3f", sum.StdDev),
		fmt.Sprintf("Lights-on mean: %.3f %s", sum.LightMean, unit),
		fmt.Sprintf("Lights-off mean: %.3f %s", sum.DarkMean, unit),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}
