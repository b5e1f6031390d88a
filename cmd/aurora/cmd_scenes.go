package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aurora/cmd/aurora/ui"
	"aurora/internal/scene"
)

// scenesCmd prints the scene catalog without entering the TUI, handy for
// checking copy and for scripts.
var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Print the showcase scene catalog",
	Run: func(cmd *cobra.Command, args []string) {
		styles := ui.DefaultStyles()
		if darkMode {
			styles = ui.NewStyles(ui.DarkTheme())
		}

		tbl := ui.NewSceneTable("Showcase scenes", "#", "Scene", "Subtitle", "Features")
		for i, sc := range scene.Catalog() {
			tbl.AddRow(
				strconv.Itoa(i),
				sc.Icon+" "+sc.Title,
				sc.Subtitle,
				strings.Join(sc.Features, "; "),
			)
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl.View(styles))
	},
}
