package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/interrupt"
	"github.com/rileychh/nuxt-prisma/setup"
	"github.com/rileychh/nuxt-prisma/ui"
	"github.com/spf13/cobra"
)

var (
	flagDir        string
	flagSchema     string
	flagProvider   string
	flagURL        string
	flagName       string
	flagPM         string
	flagLog        string
	flagStudioPort int
	flagYes        bool
	flagSkipAll    bool
	flagForce      bool
	flagSilent     bool

	flagInstallCLI bool
	flagInit       bool
	flagModels     bool
	flagFormat     bool
	flagMigrate    bool
	flagClient     bool
	flagGenerate   bool
	flagStudio     bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up Prisma in a Nuxt project",
	Long: `Set up Prisma ORM in the surrounding Nuxt project:
  • Install the Prisma CLI and @prisma/client
  • Scaffold prisma/schema.prisma with demo User and Post models
  • Run the initial migration and generate the client
  • Write lib/prisma.ts with a shared PrismaClient instance
  • Register Prisma Studio in the Nuxt devtools

Each step asks before running. Use --yes to accept everything, or
--skip-all to run nothing (useful as a CI guard).`,
	Run: runSetup,
}

func init() {
	setupCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "Project directory (default: walk up from cwd)")
	setupCmd.Flags().StringVar(&flagSchema, "schema", "", "Schema file path (default: prisma/schema.prisma)")
	setupCmd.Flags().StringVar(&flagProvider, "provider", "", "Datasource provider: sqlite, postgresql, mysql")
	setupCmd.Flags().StringVar(&flagURL, "url", "", "Database connection URL written to .env")
	setupCmd.Flags().StringVar(&flagName, "name", "", "Name for the initial migration")
	setupCmd.Flags().StringVar(&flagPM, "pm", "", "Package manager: npm, yarn, pnpm, bun")
	setupCmd.Flags().StringVar(&flagLog, "log", "", "Comma-separated client log levels: query,info,warn,error")
	setupCmd.Flags().IntVar(&flagStudioPort, "studio-port", 0, "Prisma Studio port")
	setupCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Answer yes to every prompt")
	setupCmd.Flags().BoolVar(&flagSkipAll, "skip-all", false, "Skip every step, run nothing")
	setupCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite files the setup normally leaves alone")
	setupCmd.Flags().BoolVar(&flagSilent, "silent", false, "Plain line prompts (no full-screen UI)")

	setupCmd.Flags().BoolVar(&flagInstallCLI, "install-cli", true, "Offer to install the Prisma CLI when missing")
	setupCmd.Flags().BoolVar(&flagInit, "init", true, "Run prisma init when no schema exists")
	setupCmd.Flags().BoolVar(&flagModels, "models", true, "Append demo models to a model-less schema")
	setupCmd.Flags().BoolVar(&flagFormat, "format", true, "Run prisma format on the schema")
	setupCmd.Flags().BoolVar(&flagMigrate, "migrate", true, "Run prisma migrate dev")
	setupCmd.Flags().BoolVar(&flagClient, "client", true, "Install @prisma/client")
	setupCmd.Flags().BoolVar(&flagGenerate, "generate", true, "Run prisma generate and write the accessor")
	setupCmd.Flags().BoolVar(&flagStudio, "studio", true, "Register Prisma Studio in devtools and launch it")
}

func runSetup(cmd *cobra.Command, args []string) {
	interrupt.Install()

	// Initialize configuration
	startDir := flagDir
	if startDir == "" {
		startDir = "."
	}
	cfg := setup.NewConfig(startDir)

	// Find the surrounding Node project
	proj, err := detect.FindProject(cfg.ProjectDir)
	if err != nil {
		handleSetupError(ui.ErrNotNodeProject(cfg.ProjectDir), flagSilent)
		return
	}
	cfg.SetProjectDir(proj.RootDir)

	// Apply flags
	applySetupFlags(cmd, cfg)

	// A non-TTY stdin cannot drive the full-screen prompts
	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		cfg.Silent = true
	}

	// Clear screen and show logo
	if !cfg.Silent {
		ui.ClearScreen()
		ui.PrintLogo()
	}

	LogVerbose("project root: %s", cfg.ProjectDir)
	LogVerbose("package manager: %s", cfg.PackageManager)

	if !proj.IsNuxt {
		fmt.Println(ui.RenderWarning(fmt.Sprintf("%s doesn't look like a Nuxt project", setup.DisplayPath(cfg.ProjectDir))))
		fmt.Println("  " + ui.DimStyle.Render("Continuing anyway; the scaffolded files work in any Node project."))
	}

	// Check for interrupt
	if checkInterrupt(cfg.Silent) {
		return
	}

	// Step 1: Check prerequisites
	printStep("Checking prerequisites", cfg.Silent)
	deps, err := setup.CheckDependencies(cfg)
	setup.PrintDependencyStatus(deps, cfg.Silent)
	if err != nil {
		handleSetupError(err, cfg.Silent)
		return
	}

	// Check for interrupt
	if checkInterrupt(cfg.Silent) {
		return
	}

	// Step 2: Package manager (only when no lockfile pinned one)
	if flagPM == "" && detect.LockfileManager(cfg.ProjectDir) == "" && !cfg.Auto && !cfg.SkipAll && !cfg.Silent {
		pm, err := selectPackageManager(cfg)
		if err != nil {
			handleSetupError(err, cfg.Silent)
			return
		}
		cfg.PackageManager = pm
	}

	// Check for interrupt
	if checkInterrupt(cfg.Silent) {
		return
	}

	// Step 3: Datasource provider
	if flagProvider == "" && !cfg.Auto && !cfg.SkipAll {
		printStep("Datasource provider", cfg.Silent)
		provider, err := selectProvider(cfg)
		if err != nil {
			handleSetupError(err, cfg.Silent)
			return
		}
		cfg.Provider = provider
		if !cfg.Silent {
			fmt.Println(ui.RenderSuccess("Provider: " + provider))
		}
	}

	// Check for interrupt
	if checkInterrupt(cfg.Silent) {
		return
	}

	// Step 4: Database URL (server providers need one; sqlite has a file default)
	if flagURL == "" && cfg.Provider != "sqlite" && !cfg.Auto && !cfg.SkipAll {
		printStep("Database connection", cfg.Silent)
		url, err := selectDatabaseURL(cfg)
		if err != nil {
			handleSetupError(err, cfg.Silent)
			return
		}
		cfg.DatabaseURL = url
		if !cfg.Silent {
			fmt.Println(ui.RenderSuccess("Database: " + detect.MaskDatabaseURL(url)))
		}
	}

	// Check for interrupt
	if checkInterrupt(cfg.Silent) {
		return
	}

	// Step 5: Migration name
	if flagName == "" && cfg.RunMigration && !cfg.Auto && !cfg.SkipAll && !cfg.Silent {
		printStep("Migration", cfg.Silent)
		cfg.MigrationName = ui.SimplePrompt("Migration name", setup.DefaultMigration)
	}

	// Check for interrupt
	if checkInterrupt(cfg.Silent) {
		return
	}

	// Step 6: Confirmation
	if !cfg.Silent && !cfg.Auto && !cfg.SkipAll {
		confirmed, err := ui.RunSummary("Summary", setupSummaryItems(cfg))
		if err != nil {
			handleSetupError(err, cfg.Silent)
			return
		}
		if !confirmed {
			fmt.Println("\n  Setup cancelled.")
			os.Exit(0)
		}
	} else if !cfg.SkipAll {
		// Non-interactive runs still get the plan echoed
		ui.PrintSummary("Summary", setupSummaryItems(cfg))
	}

	// Check for interrupt
	if checkInterrupt(cfg.Silent) {
		return
	}

	// Step 7: Run the pipeline
	p := setup.NewPipeline(cfg)
	p.Confirm = func(question string) (bool, error) {
		if cfg.Silent {
			return ui.SimpleConfirm(question, true), nil
		}
		return ui.RunConfirm(question, "", true)
	}

	if err := p.Run(setup.DefaultSteps()); err != nil {
		printResults(p)
		handleSetupError(err, cfg.Silent)
		return
	}

	// Step 8: Results
	printResults(p)

	if failed := p.Failed(); len(failed) > 0 {
		fmt.Println(ui.RenderWarning(fmt.Sprintf("%d step(s) failed", len(failed))))
		fmt.Println("  " + ui.DimStyle.Render("Fix the issues above and run 'nuxt-prisma setup' again; completed steps are skipped."))
		os.Exit(1)
	}

	studioURL := ""
	if p.Ran("studio") {
		studioURL = cfg.StudioURL()
	}
	ui.PrintCompletionMessage(cfg.RelPath(cfg.AccessorPath), cfg.RelPath(cfg.SchemaPath), studioURL)
}

// applySetupFlags copies command line flags into the configuration.
// Only flags the user actually set override detected values.
func applySetupFlags(cmd *cobra.Command, cfg *setup.Config) {
	cfg.InstallCLI = flagInstallCLI
	cfg.InitProject = flagInit
	cfg.WriteSchema = flagModels
	cfg.FormatSchema = flagFormat
	cfg.RunMigration = flagMigrate
	cfg.InstallClient = flagClient
	cfg.GenerateClient = flagGenerate
	cfg.InstallStudio = flagStudio

	if flagYes {
		cfg.Auto = true
	}
	if flagSkipAll {
		cfg.SkipAll = true
	}
	cfg.Force = flagForce
	cfg.Silent = flagSilent

	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagURL != "" {
		cfg.DatabaseURL = flagURL
	}
	if flagName != "" {
		cfg.MigrationName = flagName
	}
	if flagPM != "" {
		cfg.PackageManager = flagPM
	}
	if flagLog != "" {
		for _, level := range strings.Split(flagLog, ",") {
			if level = strings.TrimSpace(level); level != "" {
				cfg.LogLevels = append(cfg.LogLevels, level)
			}
		}
	}
	if cmd.Flags().Changed("studio-port") {
		cfg.StudioPort = flagStudioPort
	}
	if flagSchema != "" {
		path := flagSchema
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.ProjectDir, path)
		}
		cfg.SchemaPath = path
		cfg.PrismaDir = filepath.Dir(path)
		cfg.MigrationsDir = filepath.Join(cfg.PrismaDir, "migrations")
	}
}

// checkInterrupt checks if an interrupt signal was received and handles graceful shutdown
func checkInterrupt(silent bool) bool {
	if interrupt.Requested() {
		if !silent {
			fmt.Println()
			fmt.Println(ui.RenderWarning("Setup cancelled by user"))
			fmt.Println("  " + ui.DimStyle.Render("No further changes applied. Run 'nuxt-prisma setup' to try again."))
		}
		os.Exit(130) // Standard exit code for SIGINT
		return true
	}
	return false
}

// handleSetupError handles errors during setup, with special handling for interrupts
func handleSetupError(err error, silent bool) {
	if interrupt.IsCanceled(err) || interrupt.Requested() || ui.IsUserCancelled(err) {
		if !silent {
			fmt.Println()
			fmt.Println(ui.RenderWarning("Setup cancelled by user"))
		}
		os.Exit(130)
		return
	}
	fmt.Println(ui.RenderError(err.Error()))
	os.Exit(1)
}

// selectProvider handles datasource provider selection
func selectProvider(cfg *setup.Config) (string, error) {
	// In silent mode, keep the configured default
	if cfg.Silent {
		return ui.SimplePrompt("Datasource provider", cfg.Provider), nil
	}

	items := make([]ui.RadioItem, len(setup.Providers))
	for i, p := range setup.Providers {
		items[i] = ui.RadioItem{
			Label:    providerDisplayName(p),
			Value:    p,
			Selected: p == cfg.Provider,
			Hint:     providerHint(p),
		}
	}

	return ui.RunRadio("Which database do you want to use?", items)
}

// selectPackageManager asks which installed package manager to use.
// With one (or none) installed there is nothing to choose.
func selectPackageManager(cfg *setup.Config) (string, error) {
	tools := detect.DetectPackageManagers()
	if len(detect.FilterSelected(tools)) <= 1 {
		return cfg.PackageManager, nil
	}

	printStep("Package manager", cfg.Silent)

	var items []ui.RadioItem
	for _, t := range tools {
		if !t.Detected {
			continue
		}
		items = append(items, ui.RadioItem{
			Label:    t.Name,
			Value:    t.Value,
			Selected: t.Value == cfg.PackageManager,
			Hint:     t.Hint,
		})
	}

	return ui.RunRadio("Which package manager should install Prisma?", items)
}

// selectDatabaseURL prompts for the connection string
func selectDatabaseURL(cfg *setup.Config) (string, error) {
	def := cfg.EffectiveDatabaseURL()

	if cfg.Silent {
		return ui.SimplePrompt("Database URL", def), nil
	}

	fmt.Println("  " + ui.DimStyle.Render("Written to .env as DATABASE_URL. The schema reads it via env(\"DATABASE_URL\")."))
	fmt.Println()

	return ui.RunPrompt("Database URL", fmt.Sprintf("Connection string for %s", cfg.Provider), def)
}

// setupSummaryItems builds the plan displayed before the pipeline runs
func setupSummaryItems(cfg *setup.Config) []ui.SummaryItem {
	studio := "off"
	if cfg.InstallStudio {
		studio = fmt.Sprintf("port %d", cfg.StudioPort)
	}

	items := []ui.SummaryItem{
		{Key: "Project", Value: setup.DisplayPath(cfg.ProjectDir)},
		{Key: "Package manager", Value: cfg.PackageManager},
		{Key: "Provider", Value: cfg.Provider},
		{Key: "Database", Value: detect.MaskDatabaseURL(cfg.EffectiveDatabaseURL())},
		{Key: "Migration", Value: cfg.MigrationName},
		{Key: "Studio", Value: studio},
	}

	if cfg.Force {
		items = append(items, ui.SummaryItem{Key: "Force", Value: "overwrite existing files"})
	}

	return items
}

// printResults prints the per-step outcome table
func printResults(p *setup.Pipeline) {
	if len(p.Results) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("  " + ui.SubtitleStyle.Render("Results"))
	fmt.Println("  " + strings.Repeat("─", 40))

	for _, r := range p.Results {
		line := fmt.Sprintf("%s %s", ui.PadLabel(r.Title, 28), r.Status)
		switch r.Status {
		case setup.StepRan:
			fmt.Println(ui.RenderSuccess(line))
		case setup.StepFailed:
			fmt.Println(ui.RenderError(line))
		default:
			fmt.Printf("  %s %s\n", ui.DimStyle.Render(ui.IconCircle), ui.DimStyle.Render(line))
		}
	}
	fmt.Println()
}

// printStep prints a step header
func printStep(title string, silent bool) {
	if silent {
		return
	}
	fmt.Println()
	fmt.Println(ui.RenderStep(title))
}

// providerDisplayName returns a display-friendly name for a provider
func providerDisplayName(provider string) string {
	switch provider {
	case "sqlite":
		return "SQLite"
	case "postgresql":
		return "PostgreSQL"
	case "mysql":
		return "MySQL"
	default:
		return provider
	}
}

// providerHint returns the selection hint for a provider
func providerHint(provider string) string {
	switch provider {
	case "sqlite":
		return "file-based, no server required"
	case "postgresql":
		return "needs a running PostgreSQL server"
	case "mysql":
		return "needs a running MySQL server"
	default:
		return ""
	}
}
