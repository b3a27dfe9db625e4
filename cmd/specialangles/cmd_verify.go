package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/specialangles/internal/specialangles"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [r...]",
	Short: "Check every invariant of the derivation at 4 decimal places",
	Long:  "Evaluates the given side lengths (or the configured ones), prints their reports and checks\neach derived value against its defining formula. Exits non-zero when a check fails.",
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := specialangles.LoadConfig(rootFlags.config)
	if err != nil {
		return err
	}
	sides := cfg.Sides
	if len(args) > 0 {
		sides = make([]specialangles.Real, 0, len(args))
		for _, a := range args {
			r, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("parse side %q: %w", a, err)
			}
			sides = append(sides, r)
		}
	}
	results, err := specialangles.EvaluateAll(sides)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := specialangles.ReportAll(out, results); err != nil {
		return err
	}
	fmt.Fprintln(out)
	failed := 0
	for _, res := range results {
		checks := specialangles.Verify(res, specialangles.Places)
		if err := specialangles.ReportChecks(out, res, checks); err != nil {
			return err
		}
		if !specialangles.Passed(checks) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d side(s) failed verification", failed, len(results))
	}
	fmt.Fprintf(out, "OK: %d side(s) verified\n", len(results))
	return nil
}
