package specialangles

import (
	"fmt"
	"io"
)

// Report writes the four values of res with Places decimals.
func Report(w io.Writer, res Result) error {
	_, err := fmt.Fprintf(w,
		"Diagonal length of the cube: %.*f\nRadius of the sphere: %.*f\nVolume of the sphere: %.*f\nsin(π/3) = %.*f\n",
		Places, res.DiagonalLength,
		Places, res.SphereRadius,
		Places, res.SphereVolume,
		Places, res.IdentityValue,
	)
	return err
}

// ReportExample writes an additional example: a blank line, a header, then Report.
// n is 1-based.
func ReportExample(w io.Writer, n int, res Result) error {
	if _, err := fmt.Fprintf(w, "\nExample %d (r = %s):\n", n, formatSide(res.R)); err != nil {
		return err
	}
	return Report(w, res)
}

// ReportAll writes the first result plainly and the rest as numbered examples.
func ReportAll(w io.Writer, results []Result) error {
	for i, res := range results {
		var err error
		if i == 0 {
			err = Report(w, res)
		} else {
			err = ReportExample(w, i, res)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ReportChecks writes one PASS/FAIL (or NOTE for advisory checks) line per check.
func ReportChecks(w io.Writer, res Result, checks []Check) error {
	for _, c := range checks {
		status := "PASS"
		switch {
		case !c.OK && c.Advisory:
			status = "NOTE"
		case !c.OK:
			status = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "[%s] r=%s %s: got %.*f want %.*f\n",
			status, formatSide(res.R), c.Name, Places, c.Got, Places, c.Want); err != nil {
			return err
		}
	}
	return nil
}

// formatSide prints integral sides without decimals, like the original examples (r = 2).
func formatSide(r Real) string {
	if r == float64(int64(r)) && r < 1e15 {
		return fmt.Sprintf("%d", int64(r))
	}
	return fmt.Sprintf("%g", r)
}
