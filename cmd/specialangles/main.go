// specialangles prints the cube / circumscribed sphere / sin(π/3) derivation
// for a few side lengths and renders the first one.
//
// Usage:
//
//	specialangles [--config=<file.yaml>] [--png=<path>] [--gif=<path>] [--no-window] [--no-render]
//	specialangles verify [r...]
package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/specialangles/internal/specialangles"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	config   string
	png      string
	gif      string
	noWindow bool
	noRender bool
}

var rootCmd = &cobra.Command{
	Use:           "specialangles",
	Short:         "Cube diagonal, circumscribed sphere and sin(π/3)",
	Long:          "Evaluates the cube / circumscribed sphere derivation for each configured side length,\nprints the intermediate values and renders the first cube with its sphere.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.config, "config", "", "Path to YAML config (optional)")
	rf := rootCmd.Flags()
	rf.StringVar(&rootFlags.png, "png", "", "PNG snapshot path (default from config)")
	rf.StringVar(&rootFlags.gif, "gif", "", "Turntable GIF path (disabled when empty)")
	rf.BoolVar(&rootFlags.noWindow, "no-window", false, "Do not open the viewer window")
	rf.BoolVar(&rootFlags.noRender, "no-render", false, "Only print the values (no PNG, GIF or window)")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.Version = version
}

func main() {
	specialangles.Debug = os.Getenv("DEBUG") != ""
	specialangles.SetLogOutput(os.Stderr)
	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
