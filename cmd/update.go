package cmd

import (
	"fmt"
	"os"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/interrupt"
	"github.com/rileychh/nuxt-prisma/setup"
	"github.com/rileychh/nuxt-prisma/ui"
	"github.com/spf13/cobra"
)

var (
	updateForce bool
	updateCheck bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update Prisma to the latest version",
	Long: `Check the npm registry for newer prisma and @prisma/client releases
and install them.

The update command will:
  • Compare installed versions against the npm registry
  • Install newer versions with your package manager
  • Regenerate the Prisma client

Use --check to only check for updates without installing.`,
	Run: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "Reinstall even if already on the latest version")
	updateCmd.Flags().BoolVarP(&updateCheck, "check", "c", false, "Only check for updates, don't install")
	rootCmd.AddCommand(updateCmd)
}

// updateTarget is one package the update command manages
type updateTarget struct {
	pkg   string
	dev   bool
	needs bool
}

func runUpdate(cmd *cobra.Command, args []string) {
	interrupt.Install()

	proj, err := detect.FindProject(".")
	if err != nil {
		fmt.Println(ui.RenderError("No package.json found. Run this inside a Node project."))
		os.Exit(1)
	}

	cfg := setup.NewConfig(proj.RootDir)
	cfg.Force = updateForce

	fmt.Println()
	fmt.Println(ui.RenderStep("Update Prisma"))
	fmt.Println()

	targets := []updateTarget{
		{pkg: setup.PrismaCLIPackage, dev: true},
		{pkg: setup.PrismaClientPackage},
	}

	updates := 0
	for i := range targets {
		t := &targets[i]
		needs, local, remote, err := setup.CheckVersion(cfg, t.pkg)
		if err != nil {
			fmt.Printf("  %s %-16s %s\n", ui.ErrorStyle.Render("✗"), t.pkg, ui.ErrorStyle.Render(err.Error()))
			continue
		}

		switch {
		case local == "":
			// Never installed; that's setup's job, not update's
			fmt.Printf("  %s %-16s %s\n", ui.MutedStyle.Render("○"), t.pkg, ui.DimStyle.Render("not installed, run 'nuxt-prisma setup'"))
		case needs && remote != "":
			fmt.Printf("  %s %-16s %s → %s\n", ui.InfoStyle.Render("→"), t.pkg,
				ui.DimStyle.Render("v"+local), ui.SuccessStyle.Render("v"+remote))
		case needs:
			fmt.Printf("  %s %-16s %s\n", ui.InfoStyle.Render("→"), t.pkg,
				ui.DimStyle.Render("v"+local+" (registry unreachable, reinstalling latest)"))
		default:
			fmt.Printf("  %s %-16s %s\n", ui.SuccessStyle.Render("✓"), t.pkg, ui.DimStyle.Render("v"+local+" (latest)"))
		}

		t.needs = needs && local != ""
		if t.needs {
			updates++
		}
	}

	if updates == 0 {
		fmt.Println()
		fmt.Println(ui.RenderSuccess("Everything is up to date!"))
		return
	}

	// Check-only mode
	if updateCheck {
		fmt.Println()
		fmt.Println("  Run " + ui.InfoStyle.Render("nuxt-prisma update") + " to install.")
		return
	}

	// Confirmation
	fmt.Println()
	response := ui.SimplePrompt(fmt.Sprintf("Update %d package(s)? (y/n)", updates), "y")
	if response != "y" && response != "Y" && response != "yes" {
		fmt.Println("\n  Update cancelled.")
		return
	}

	// Check for interrupt before installing
	if interrupt.Requested() {
		fmt.Println()
		fmt.Println(ui.RenderWarning("Update cancelled by user"))
		os.Exit(130)
		return
	}

	fmt.Println()
	fmt.Println(ui.RenderStep("Installing updates"))
	fmt.Println()

	failures := 0
	for _, t := range targets {
		if !t.needs {
			continue
		}

		target := t
		err := ui.RunWithSpinner(fmt.Sprintf("Updating %s...", target.pkg), func() (string, error) {
			if err := setup.InstallPackage(cfg, target.dev, target.pkg+"@latest"); err != nil {
				return "", err
			}
			if v, _ := setup.InstalledVersion(cfg.ProjectDir, target.pkg); v != "" {
				return fmt.Sprintf("%s v%s", target.pkg, v), nil
			}
			return target.pkg + " updated", nil
		})
		if err != nil {
			failures++
		}

		if interrupt.Requested() {
			fmt.Println()
			fmt.Println(ui.RenderWarning("Update cancelled by user"))
			os.Exit(130)
			return
		}
	}

	// A stale generated client breaks at runtime after a client update
	if failures == 0 {
		if err := ui.RunWithSpinner("Regenerating Prisma Client...", func() (string, error) {
			if err := setup.RunGenerate(cfg); err != nil {
				return "", err
			}
			return "Prisma Client regenerated", nil
		}); err != nil {
			failures++
		}
	}

	fmt.Println()
	if failures > 0 {
		fmt.Println(ui.RenderWarning(fmt.Sprintf("Update finished with %d error(s)", failures)))
		os.Exit(1)
	}
	fmt.Println(ui.RenderSuccess("Update complete!"))
	fmt.Println()
	fmt.Println("  Run " + ui.InfoStyle.Render("nuxt-prisma version") + " to verify.")
}
