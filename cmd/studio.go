package cmd

import (
	"fmt"
	"os"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/setup"
	"github.com/rileychh/nuxt-prisma/ui"
	"github.com/spf13/cobra"
)

var (
	studioDir    string
	studioPort   int
	studioDetach bool
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Launch Prisma Studio",
	Long: `Launch Prisma Studio, the browser GUI for the project database.

Runs attached by default; pass --detach to start it in the background
the way the setup pipeline does.`,
	Run: runStudio,
}

func init() {
	studioCmd.Flags().StringVarP(&studioDir, "dir", "d", "", "Project directory (default: walk up from cwd)")
	studioCmd.Flags().IntVarP(&studioPort, "port", "p", 0, "Studio port")
	studioCmd.Flags().BoolVar(&studioDetach, "detach", false, "Start Studio in the background")

	rootCmd.AddCommand(studioCmd)
}

func runStudio(cmd *cobra.Command, args []string) {
	startDir := studioDir
	if startDir == "" {
		startDir = "."
	}

	proj, err := detect.FindProject(startDir)
	if err != nil {
		fmt.Println(ui.RenderError("No package.json found. Run this inside a Node project."))
		os.Exit(1)
	}

	cfg := setup.NewConfig(proj.RootDir)
	if cmd.Flags().Changed("port") {
		cfg.StudioPort = studioPort
	}

	if _, err := os.Stat(cfg.SchemaPath); err != nil {
		fmt.Println(ui.RenderError("No Prisma schema found."))
		fmt.Println("  " + ui.DimStyle.Render("Run 'nuxt-prisma setup' first."))
		os.Exit(1)
	}

	bin, binArgs := detect.PrismaBinary(cfg.ProjectDir)
	LogDebug("studio command: %s %v --port %d", bin, binArgs, cfg.StudioPort)

	if studioDetach {
		if err := setup.RunStudio(cfg, true); err != nil {
			fmt.Println(ui.RenderError(err.Error()))
			os.Exit(1)
		}
		fmt.Println(ui.RenderSuccess("Prisma Studio started"))
		fmt.Println("  " + ui.RenderURL(cfg.StudioURL()))
		return
	}

	fmt.Println(ui.RenderStep(fmt.Sprintf("Prisma Studio on %s", cfg.StudioURL())))
	fmt.Println("  " + ui.DimStyle.Render("Press Ctrl+C to stop."))
	if err := setup.RunStudio(cfg, false); err != nil {
		fmt.Println(ui.RenderError(err.Error()))
		os.Exit(1)
	}
}
