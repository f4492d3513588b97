package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/interrupt"
	"github.com/rileychh/nuxt-prisma/setup"
	"github.com/rileychh/nuxt-prisma/ui"
	"github.com/spf13/cobra"
)

var (
	uninstallAll   bool
	uninstallForce bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove files the setup created",
	Long: `Remove Prisma setup artifacts from the current project.

By default, removes the scaffolded glue files:
  • lib/prisma.ts (shared client accessor)
  • modules/prisma-studio.ts (devtools tab)
  • DATABASE_URL entry in .env (other entries preserved)

With --all, also removes the prisma/ directory (schema and migrations)
and uninstalls the prisma and @prisma/client packages.`,
	Run: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallAll, "all", false, "Also remove prisma/ and the npm packages")
	uninstallCmd.Flags().BoolVarP(&uninstallForce, "force", "f", false, "Skip selection and confirmation prompts")
	rootCmd.AddCommand(uninstallCmd)
}

type uninstallItem struct {
	name        string
	path        string
	description string
	isFile      bool
	cleanEnv    bool   // surgically drop DATABASE_URL instead of deleting the file
	pkg         string // npm package removed with the package manager
}

func runUninstall(cmd *cobra.Command, args []string) {
	interrupt.Install()

	proj, err := detect.FindProject(".")
	if err != nil {
		fmt.Println(ui.RenderError("No package.json found. Run this inside a Node project."))
		os.Exit(1)
	}
	cfg := setup.NewConfig(proj.RootDir)

	// Clear screen and show logo
	if !uninstallForce {
		ui.ClearScreen()
		ui.PrintLogo()
	}

	fmt.Println()
	fmt.Println(ui.RenderStep("Remove Prisma setup"))
	fmt.Println()

	items := collectUninstallItems(cfg, proj)
	if len(items) == 0 {
		fmt.Println(ui.RenderSuccess("Nothing to remove, no setup artifacts found"))
		return
	}

	// Selection and confirmation
	if uninstallForce {
		fmt.Println("  The following items will be removed:")
		fmt.Println()
		for _, item := range items {
			fmt.Printf("    %s %s\n", ui.WarningStyle.Render("•"), item.name)
			fmt.Printf("      %s\n", ui.DimStyle.Render(item.description))
		}
	} else {
		choices := make([]ui.CheckboxItem, len(items))
		for i, item := range items {
			choices[i] = ui.CheckboxItem{
				Label:   item.name,
				Value:   item.name,
				Checked: true,
				Hint:    item.description,
			}
		}

		selected, err := ui.RunCheckbox("Select items to remove", choices)
		if err != nil {
			handleSetupError(err, false)
			return
		}

		items = filterUninstallItems(items, selected)
		if len(items) == 0 {
			fmt.Println("\n  Nothing selected.")
			return
		}

		fmt.Println()
		response := ui.SimplePrompt(fmt.Sprintf("Remove %d item(s)? (y/n)", len(items)), "n")
		if response != "y" && response != "Y" && response != "yes" {
			fmt.Println("\n  Uninstall cancelled.")
			return
		}
	}

	// Check for interrupt after confirmation
	if interrupt.Requested() {
		fmt.Println()
		fmt.Println(ui.RenderWarning("Uninstall cancelled by user"))
		os.Exit(130)
		return
	}

	fmt.Println()
	fmt.Println(ui.RenderStep("Removing items"))
	fmt.Println()

	var errors []string
	for _, item := range items {
		// Check for interrupt before each removal
		if interrupt.Requested() {
			fmt.Println()
			fmt.Println(ui.RenderWarning("Uninstall cancelled by user"))
			os.Exit(130)
			return
		}
		if err := removeUninstallItem(cfg, item); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", item.name, err))
			fmt.Printf("  %s %s\n", ui.ErrorStyle.Render("✗"), item.name)
		} else {
			fmt.Printf("  %s %s\n", ui.SuccessStyle.Render("✓"), item.name)
		}
	}

	// Summary
	fmt.Println()
	if len(errors) > 0 {
		fmt.Println(ui.RenderWarning(fmt.Sprintf("Uninstall completed with %d error(s):", len(errors))))
		for _, e := range errors {
			fmt.Printf("  %s %s\n", ui.ErrorStyle.Render("•"), e)
		}
	} else {
		fmt.Println(ui.RenderSuccess("Prisma setup removed"))
	}

	if !uninstallAll {
		fmt.Println()
		fmt.Println("  " + ui.DimStyle.Render("Note: prisma/ and the npm packages were preserved."))
		fmt.Println("  " + ui.DimStyle.Render("Use the --all flag to remove the schema, migrations, and packages."))
	}
}

// collectUninstallItems gathers everything the setup may have created
func collectUninstallItems(cfg *setup.Config, proj *detect.Project) []uninstallItem {
	var items []uninstallItem

	if pathExists(cfg.AccessorPath) {
		items = append(items, uninstallItem{
			name:        "Client accessor",
			path:        cfg.AccessorPath,
			description: cfg.RelPath(cfg.AccessorPath),
			isFile:      true,
		})
	}

	if pathExists(cfg.ModulePath) {
		items = append(items, uninstallItem{
			name:        "Studio devtools module",
			path:        cfg.ModulePath,
			description: cfg.RelPath(cfg.ModulePath),
			isFile:      true,
		})
	}

	// Check the file itself; the process environment may also carry
	// DATABASE_URL but there is nothing to remove then
	vars, _ := detect.ParseEnvFile(cfg.EnvPath)
	if detect.HasEnvVar(vars, "DATABASE_URL") {
		items = append(items, uninstallItem{
			name:        "DATABASE_URL entry",
			path:        cfg.EnvPath,
			description: ".env (other entries preserved)",
			cleanEnv:    true,
		})
	}

	if uninstallAll {
		if pathExists(cfg.PrismaDir) {
			items = append(items, uninstallItem{
				name:        "prisma directory",
				path:        cfg.PrismaDir,
				description: cfg.RelPath(cfg.PrismaDir) + " (schema, migrations, database file)",
			})
		}

		if proj.HasPrismaCLI() {
			items = append(items, uninstallItem{
				name:        "prisma package",
				pkg:         setup.PrismaCLIPackage,
				description: "dev dependency, removed with " + cfg.PackageManager,
			})
		}

		if proj.HasPrismaClient() {
			items = append(items, uninstallItem{
				name:        "@prisma/client package",
				pkg:         setup.PrismaClientPackage,
				description: "dependency, removed with " + cfg.PackageManager,
			})
		}
	}

	return items
}

// filterUninstallItems keeps the items whose names were selected
func filterUninstallItems(items []uninstallItem, selected []string) []uninstallItem {
	var kept []uninstallItem
	for _, item := range items {
		for _, name := range selected {
			if item.name == name {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}

func removeUninstallItem(cfg *setup.Config, item uninstallItem) error {
	if item.pkg != "" {
		return setup.RemovePackage(cfg, item.pkg)
	}

	if item.cleanEnv {
		return cleanDatabaseURLFromEnv(item.path)
	}

	if item.isFile {
		return os.Remove(item.path)
	}

	return os.RemoveAll(item.path)
}

// cleanDatabaseURLFromEnv drops the DATABASE_URL line from .env, keeping
// every other entry. The original is kept as .env.bak.
func cleanDatabaseURLFromEnv(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := setup.BackupFile(path); err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	var result []string
	for _, line := range lines {
		key := strings.TrimPrefix(strings.TrimSpace(line), "export ")
		if strings.HasPrefix(key, "DATABASE_URL=") {
			continue
		}
		result = append(result, line)
	}

	return os.WriteFile(path, []byte(strings.Join(result, "\n")), 0644)
}
