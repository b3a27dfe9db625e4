package main

import (
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/specialangles/internal/specialangles"
	"github.com/lukaszgryglicki/specialangles/internal/viewer"
)

// showScene opens the viewer; tests swap it for a stub.
var showScene specialangles.ShowFunc = viewer.Show

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := specialangles.LoadConfig(rootFlags.config)
	if err != nil {
		return err
	}
	if rootFlags.png != "" {
		cfg.PNGOut = rootFlags.png
	}
	if rootFlags.gif != "" {
		cfg.GIFOut = rootFlags.gif
	}

	specialangles.PNG = !rootFlags.noRender && cfg.PNGOut != ""
	specialangles.GIF = !rootFlags.noRender && cfg.GIFOut != ""
	specialangles.Window = !rootFlags.noRender && !rootFlags.noWindow && cfg.ShowWindow()

	return specialangles.Run(cmd.Context(), cfg, cmd.OutOrStdout(), showScene)
}
