package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/setup"
	"github.com/rileychh/nuxt-prisma/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the project's Prisma state",
	Long: `Display the current Prisma state of the surrounding Nuxt project,
including installed packages, schema contents, and scaffolded files.
Read-only: nothing is installed, written, or pinged.`,
	Run: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	// Header
	fmt.Println()
	fmt.Printf("  %s v%s\n", ui.TitleStyle.Render("nuxt-prisma"), Version)
	fmt.Println("  " + strings.Repeat("─", 50))
	fmt.Println()

	// Project info
	fmt.Println(ui.SubtitleStyle.Render("  Project"))
	fmt.Println()

	proj, err := detect.FindProject(".")
	if err != nil {
		fmt.Printf("    %s\n", ui.MutedStyle.Render("Not inside a Node project"))
		fmt.Println()
		return
	}

	cfg := setup.NewConfig(proj.RootDir)

	fmt.Printf("    %-16s %s\n", "Location:", ui.ActiveStyle.Render(setup.DisplayPath(proj.RootDir)))
	if proj.Name != "" {
		fmt.Printf("    %-16s %s\n", "Name:", ui.ActiveStyle.Render(proj.Name))
	}
	nuxt := "no"
	if proj.IsNuxt {
		nuxt = "yes"
	}
	fmt.Printf("    %-16s %s\n", "Nuxt:", ui.ActiveStyle.Render(nuxt))
	fmt.Printf("    %-16s %s\n", "Package manager:", ui.ActiveStyle.Render(cfg.PackageManager))
	fmt.Println()

	// Prisma packages
	fmt.Println(ui.SubtitleStyle.Render("  Prisma"))
	fmt.Println()

	printPackageStatus(cfg, proj, setup.PrismaCLIPackage)
	printPackageStatus(cfg, proj, setup.PrismaClientPackage)

	binary, binArgs := detect.PrismaBinary(cfg.ProjectDir)
	fmt.Printf("    %s CLI resolves to %s\n",
		ui.DimStyle.Render("→"),
		ui.DimStyle.Render(strings.Join(append([]string{binary}, binArgs...), " ")))
	fmt.Println()

	// Scaffolded files
	fmt.Println(ui.SubtitleStyle.Render("  Files"))
	fmt.Println()

	if schema, err := detect.ParseSchemaFile(cfg.SchemaPath); err == nil && schema != nil {
		detail := schema.Provider
		if len(schema.Models) > 0 {
			detail = fmt.Sprintf("%s: %s", schema.Provider, strings.Join(schema.Models, ", "))
		}
		fmt.Printf("    %s %-24s %s\n",
			ui.SuccessStyle.Render("✓"),
			cfg.RelPath(cfg.SchemaPath),
			ui.DimStyle.Render(detail))
	} else {
		fmt.Printf("    %s %-24s %s\n",
			ui.MutedStyle.Render("○"),
			cfg.RelPath(cfg.SchemaPath),
			ui.DimStyle.Render("not created"))
	}

	migrations := 0
	if entries, err := os.ReadDir(cfg.MigrationsDir); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				migrations++
			}
		}
	}
	if migrations > 0 {
		fmt.Printf("    %s %-24s %s\n",
			ui.SuccessStyle.Render("✓"),
			cfg.RelPath(cfg.MigrationsDir),
			ui.DimStyle.Render(fmt.Sprintf("%d migration(s)", migrations)))
	} else {
		fmt.Printf("    %s %-24s %s\n",
			ui.MutedStyle.Render("○"),
			cfg.RelPath(cfg.MigrationsDir),
			ui.DimStyle.Render("no migrations"))
	}

	if url := detect.DatabaseURL(cfg.EnvPath); url != "" {
		fmt.Printf("    %s %-24s %s\n",
			ui.SuccessStyle.Render("✓"),
			".env",
			ui.DimStyle.Render(detect.MaskDatabaseURL(url)))
	} else {
		fmt.Printf("    %s %-24s %s\n",
			ui.MutedStyle.Render("○"),
			".env",
			ui.DimStyle.Render("no DATABASE_URL"))
	}

	printFileStatus(cfg, cfg.AccessorPath, "shared client accessor")
	printFileStatus(cfg, cfg.ModulePath, "Studio devtools tab")
	fmt.Println()

	// Studio
	fmt.Println(ui.SubtitleStyle.Render("  Studio"))
	fmt.Println()
	fmt.Printf("    %-16s %s\n", "URL:", ui.DimStyle.Render(cfg.StudioURL()))
	fmt.Println()
}

// printPackageStatus prints one installed-package line with a ● / ○ dot
func printPackageStatus(cfg *setup.Config, proj *detect.Project, pkg string) {
	version, _ := setup.InstalledVersion(cfg.ProjectDir, pkg)
	declared := proj.DependencyVersion(pkg)

	switch {
	case version != "":
		fmt.Printf("    %s %-16s %s\n", ui.SuccessStyle.Render("●"), pkg, ui.DimStyle.Render("v"+version))
	case declared != "":
		fmt.Printf("    %s %-16s %s\n", ui.WarningStyle.Render("●"), pkg, ui.DimStyle.Render(declared+" (not installed)"))
	default:
		fmt.Printf("    %s %-16s %s\n", ui.MutedStyle.Render("○"), pkg, ui.DimStyle.Render("not a dependency"))
	}
}

// printFileStatus prints one scaffolded-file line
func printFileStatus(cfg *setup.Config, path, hint string) {
	if pathExists(path) {
		fmt.Printf("    %s %-24s %s\n", ui.SuccessStyle.Render("✓"), cfg.RelPath(path), ui.DimStyle.Render(hint))
	} else {
		fmt.Printf("    %s %-24s %s\n", ui.MutedStyle.Render("○"), cfg.RelPath(path), ui.DimStyle.Render("not created"))
	}
}
