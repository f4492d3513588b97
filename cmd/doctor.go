package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/interrupt"
	"github.com/rileychh/nuxt-prisma/setup"
	"github.com/rileychh/nuxt-prisma/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose setup issues",
	Long: `Check your system and project for potential Prisma setup issues.
This command verifies the toolchain, project layout, schema, database
connectivity, and npm registry reachability.`,
	Run: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("  " + ui.TitleStyle.Render("nuxt-prisma Doctor"))
	fmt.Println("  " + strings.Repeat("─", 50))
	fmt.Println()

	issues := 0

	// Toolchain checks
	fmt.Println(ui.SubtitleStyle.Render("  Toolchain"))
	fmt.Println()

	// Check Node
	if version := detect.CommandVersion("node"); version != "" {
		fmt.Printf("    %s node %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("("+version+")"))
	} else {
		fmt.Printf("    %s node %s\n", ui.ErrorStyle.Render("✗"), ui.ErrorStyle.Render("not found"))
		printSuggestion("Install Node.js: https://nodejs.org")
		issues++
	}

	// Check package managers
	managers := detect.DetectPackageManagers()
	foundPM := false
	for _, pm := range managers {
		if !pm.Detected {
			continue
		}
		foundPM = true
		fmt.Printf("    %s %s %s\n", ui.SuccessStyle.Render("✓"), pm.Value, ui.DimStyle.Render("("+detect.CommandVersion(pm.Value)+")"))
	}
	if !foundPM {
		fmt.Printf("    %s package manager %s\n", ui.ErrorStyle.Render("✗"), ui.ErrorStyle.Render("not found"))
		printSuggestion("npm ships with Node.js; install Node first")
		issues++
	}

	// Check npx
	if version := detect.CommandVersion("npx"); version != "" {
		fmt.Printf("    %s npx %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("("+version+")"))
	} else {
		fmt.Printf("    %s npx %s\n", ui.WarningStyle.Render("!"), ui.WarningStyle.Render("not found"))
		printSuggestion("npx is the fallback for running the Prisma CLI without installing it")
	}
	fmt.Println()

	// Connectivity checks
	fmt.Println(ui.SubtitleStyle.Render("  Connectivity"))
	fmt.Println()

	// Check npm registry
	if checkURL(setup.RegistryURL) {
		fmt.Printf("    %s npm registry %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("reachable"))
	} else {
		fmt.Printf("    %s npm registry %s\n", ui.ErrorStyle.Render("✗"), ui.ErrorStyle.Render("unreachable"))
		printSuggestion("Check your internet connection or proxy settings")
		issues++
	}

	// Project checks
	fmt.Println()
	fmt.Println(ui.SubtitleStyle.Render("  Project"))
	fmt.Println()

	proj, err := detect.FindProject(".")
	if err != nil {
		fmt.Printf("    %s package.json %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("not found"))
		printSuggestion("Run doctor inside a Nuxt project")
		printSummaryLine(issues)
		return
	}

	cfg := setup.NewConfig(proj.RootDir)
	fmt.Printf("    %s package.json %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("("+setup.DisplayPath(proj.RootDir)+")"))

	// A lockfile can pin a package manager that is not installed
	if tool := detect.GetToolByValue(managers, cfg.PackageManager); tool != nil && !tool.Detected {
		fmt.Printf("    %s %s %s\n", ui.ErrorStyle.Render("✗"), cfg.PackageManager, ui.ErrorStyle.Render("wanted by lockfile, not installed"))
		printSuggestion(fmt.Sprintf("Install %s or remove its lockfile", cfg.PackageManager))
		issues++
	}

	if proj.IsNuxt {
		fmt.Printf("    %s nuxt dependency\n", ui.SuccessStyle.Render("✓"))
	} else {
		fmt.Printf("    %s nuxt %s\n", ui.WarningStyle.Render("!"), ui.WarningStyle.Render("not a dependency"))
		printSuggestion("The devtools Studio tab only works in a Nuxt project")
	}

	if proj.HasPrismaCLI() {
		fmt.Printf("    %s prisma %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("("+proj.DependencyVersion(setup.PrismaCLIPackage)+")"))
	} else {
		fmt.Printf("    %s prisma %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("not a dependency"))
		printSuggestion("Run: nuxt-prisma setup")
	}

	if proj.HasPrismaClient() {
		fmt.Printf("    %s @prisma/client %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("("+proj.DependencyVersion(setup.PrismaClientPackage)+")"))
	} else {
		fmt.Printf("    %s @prisma/client %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("not a dependency"))
	}

	if proj.HasNodeModules() {
		fmt.Printf("    %s node_modules\n", ui.SuccessStyle.Render("✓"))
	} else {
		fmt.Printf("    %s node_modules %s\n", ui.WarningStyle.Render("!"), ui.WarningStyle.Render("missing"))
		printSuggestion(fmt.Sprintf("Run: %s install", cfg.PackageManager))
		issues++
	}

	// Schema checks
	var schema *detect.Schema
	if _, err := os.Stat(cfg.SchemaPath); err == nil {
		schema, err = detect.ParseSchemaFile(cfg.SchemaPath)
		if err != nil {
			fmt.Printf("    %s schema %s\n", ui.ErrorStyle.Render("✗"), ui.ErrorStyle.Render("unreadable"))
			printSuggestion(err.Error())
			issues++
		} else {
			detail := schema.Provider
			if n := len(schema.Models); n > 0 {
				detail = fmt.Sprintf("%s, %d model(s)", schema.Provider, n)
			}
			fmt.Printf("    %s schema %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("("+detail+")"))
		}
	} else {
		fmt.Printf("    %s schema %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("not created yet"))
		printSuggestion("Run: nuxt-prisma setup")
	}

	if pathExists(cfg.MigrationsDir) {
		fmt.Printf("    %s migrations directory\n", ui.SuccessStyle.Render("✓"))
	} else {
		fmt.Printf("    %s migrations %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("none yet"))
	}

	if url := detect.DatabaseURL(cfg.EnvPath); url != "" {
		fmt.Printf("    %s DATABASE_URL %s\n", ui.SuccessStyle.Render("✓"), ui.DimStyle.Render("("+detect.MaskDatabaseURL(url)+")"))
	} else {
		fmt.Printf("    %s DATABASE_URL %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("not set"))
	}

	// Database checks
	fmt.Println()
	fmt.Println(ui.SubtitleStyle.Render("  Database"))
	fmt.Println()

	issues += checkDatabaseHealth(cfg, schema)

	// Studio port
	addr := fmt.Sprintf("localhost:%d", cfg.StudioPort)
	if ln, err := net.Listen("tcp", addr); err == nil {
		ln.Close()
		fmt.Printf("    %s Studio port %d free\n", ui.SuccessStyle.Render("✓"), cfg.StudioPort)
	} else {
		fmt.Printf("    %s Studio port %d %s\n", ui.WarningStyle.Render("!"), cfg.StudioPort, ui.WarningStyle.Render("in use"))
		printSuggestion("Prisma Studio may already be running, or pick another port with PRISMA_STUDIO_PORT")
	}

	printSummaryLine(issues)
}

// checkDatabaseHealth pings the configured database and reports the outcome.
// Returns the number of issues found.
func checkDatabaseHealth(cfg *setup.Config, schema *detect.Schema) int {
	provider := cfg.Provider
	if schema != nil && schema.Provider != "" {
		provider = schema.Provider
	}

	url := cfg.DatabaseURL
	if url == "" {
		url = detect.DatabaseURL(cfg.EnvPath)
	}
	if url == "" {
		fmt.Printf("    %s connection %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("no DATABASE_URL configured"))
		return 0
	}

	// Relative sqlite paths resolve against the schema directory, and
	// pinging a missing file would create it. Report instead of pinging.
	if provider == "sqlite" {
		path := strings.TrimPrefix(url, "file:")
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.PrismaDir, path)
		}
		if !pathExists(path) {
			fmt.Printf("    %s database file %s\n", ui.MutedStyle.Render("○"), ui.DimStyle.Render("not created yet"))
			printSuggestion("Run: nuxt-prisma setup")
			return 0
		}
		url = "file:" + path
	}

	// Ctrl-C aborts a hanging ping before the timeout does
	ctx, cancel := context.WithTimeout(interrupt.Context(), 5*time.Second)
	defer cancel()

	if err := setup.CheckDatabase(ctx, provider, url); err != nil {
		fmt.Printf("    %s %s %s\n", ui.ErrorStyle.Render("✗"), provider, ui.ErrorStyle.Render("unreachable"))
		printSuggestion(err.Error())
		if provider != "sqlite" {
			printSuggestion(fmt.Sprintf("Is the %s server running and DATABASE_URL correct?", provider))
		}
		return 1
	}

	fmt.Printf("    %s %s %s\n", ui.SuccessStyle.Render("✓"), provider, ui.DimStyle.Render("reachable"))
	return 0
}

// printSummaryLine prints the closing issue count
func printSummaryLine(issues int) {
	fmt.Println()
	fmt.Println("  " + strings.Repeat("─", 50))
	if issues == 0 {
		fmt.Println()
		fmt.Println("  " + ui.SuccessStyle.Render("✓ No issues found!"))
	} else {
		fmt.Println()
		fmt.Printf("  %s %d issue(s) found\n", ui.WarningStyle.Render("!"), issues)
	}
	fmt.Println()
}

// checkURL tests if a URL is reachable
func checkURL(url string) bool {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Head(url)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 400
}

// printSuggestion prints a formatted suggestion
func printSuggestion(text string) {
	fmt.Printf("      %s %s\n", ui.DimStyle.Render("→"), ui.DimStyle.Render(text))
}

// pathExists checks if a path exists
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
