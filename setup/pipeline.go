package setup

import (
	"fmt"
	"path/filepath"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/interrupt"
	"github.com/rileychh/nuxt-prisma/ui"
)

// StepStatus describes how a pipeline step ended
type StepStatus int

const (
	StepRan StepStatus = iota
	StepSkipped
	StepDeclined
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepRan:
		return "done"
	case StepSkipped:
		return "skipped"
	case StepDeclined:
		return "declined"
	case StepFailed:
		return "failed"
	}
	return "unknown"
}

// Step is one unit of the setup pipeline
type Step struct {
	Name    string                  // short identifier used in results
	Title   string                  // progress line shown while running
	Confirm string                  // question asked before running, "" runs unprompted
	Gate    func(cfg *Config) bool  // config switch for this step
	Skip    func(cfg *Config) bool  // runtime condition, step not needed when true
	Run     func(cfg *Config) error
}

// StepResult records the outcome of one step
type StepResult struct {
	Name   string
	Title  string
	Status StepStatus
	Err    error
}

// Pipeline runs setup steps in order with confirm gating.
// A failing step is reported and the run continues; no later step is
// blocked by an earlier failure.
type Pipeline struct {
	Config  *Config
	Confirm func(question string) (bool, error)
	Results []StepResult
}

// NewPipeline creates a pipeline for the given configuration
func NewPipeline(cfg *Config) *Pipeline {
	return &Pipeline{Config: cfg}
}

// Run executes all steps. It stops early only on user cancellation
// or an interrupt between steps.
func (p *Pipeline) Run(steps []Step) error {
	for _, step := range steps {
		if err := interrupt.Check(); err != nil {
			return err
		}

		result := p.runStep(step)
		p.Results = append(p.Results, result)

		if result.Err != nil && ui.IsUserCancelled(result.Err) {
			return result.Err
		}
	}
	return nil
}

// runStep applies gating, confirmation, and the failure policy to one step
func (p *Pipeline) runStep(step Step) StepResult {
	result := StepResult{Name: step.Name, Title: step.Title}

	if p.Config.SkipAll || (step.Gate != nil && !step.Gate(p.Config)) {
		result.Status = StepSkipped
		return result
	}

	if step.Skip != nil && step.Skip(p.Config) {
		result.Status = StepSkipped
		return result
	}

	if step.Confirm != "" && !p.Config.Auto && p.Confirm != nil {
		ok, err := p.Confirm(step.Confirm)
		if err != nil {
			result.Status = StepDeclined
			result.Err = err
			return result
		}
		if !ok {
			result.Status = StepDeclined
			return result
		}
	}

	if err := step.Run(p.Config); err != nil {
		result.Status = StepFailed
		result.Err = err
		ui.WrapError(err, fmt.Sprintf("%s failed, continuing", step.Title)).PrintWarning()
		return result
	}

	result.Status = StepRan
	return result
}

// Failed returns the results of steps that failed
func (p *Pipeline) Failed() []StepResult {
	var failed []StepResult
	for _, r := range p.Results {
		if r.Status == StepFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Result returns the recorded result for a step name
func (p *Pipeline) Result(name string) *StepResult {
	for i := range p.Results {
		if p.Results[i].Name == name {
			return &p.Results[i]
		}
	}
	return nil
}

// Ran reports whether a named step ran to completion
func (p *Pipeline) Ran(name string) bool {
	r := p.Result(name)
	return r != nil && r.Status == StepRan
}

// DefaultSteps returns the standard setup pipeline
func DefaultSteps() []Step {
	return []Step{
		{
			Name:    "install-cli",
			Title:   "Install Prisma CLI",
			Confirm: "Install the Prisma CLI as a dev dependency?",
			Gate:    func(cfg *Config) bool { return cfg.InstallCLI },
			Skip:    func(cfg *Config) bool { return detect.HasLocalPrisma(cfg.ProjectDir) },
			Run:     InstallPrismaCLI,
		},
		{
			Name:    "init",
			Title:   "Initialize Prisma",
			Confirm: "Run prisma init to create the schema directory?",
			Gate:    func(cfg *Config) bool { return cfg.InitProject },
			Skip:    func(cfg *Config) bool { return pathExists(cfg.SchemaPath) },
			Run: func(cfg *Config) error {
				if err := RunInit(cfg); err != nil {
					return err
				}
				// prisma init writes a placeholder URL, replace it with ours
				_, err := EnsureEnv(cfg)
				return err
			},
		},
		{
			Name:    "schema",
			Title:   "Add starter models",
			Confirm: "Add demo User and Post models to the schema?",
			Gate:    func(cfg *Config) bool { return cfg.WriteSchema },
			Run: func(cfg *Config) error {
				_, err := AppendDemoModels(cfg)
				return err
			},
		},
		{
			Name:  "format",
			Title: "Format schema",
			Gate:  func(cfg *Config) bool { return cfg.FormatSchema },
			Skip:  func(cfg *Config) bool { return !pathExists(cfg.SchemaPath) },
			Run:   RunFormat,
		},
		{
			Name:    "migrate",
			Title:   "Run initial migration",
			Confirm: "Run prisma migrate dev to create the database?",
			Gate:    func(cfg *Config) bool { return cfg.RunMigration },
			Run:     RunMigrateDev,
		},
		{
			Name:    "install-client",
			Title:   "Install Prisma Client",
			Confirm: "Install @prisma/client?",
			Gate:    func(cfg *Config) bool { return cfg.InstallClient },
			Skip: func(cfg *Config) bool {
				return pathExists(filepath.Join(cfg.ProjectDir, "node_modules", "@prisma", "client"))
			},
			Run: InstallPrismaClient,
		},
		{
			Name:  "generate",
			Title: "Generate Prisma Client",
			Gate:  func(cfg *Config) bool { return cfg.GenerateClient },
			Run:   RunGenerate,
		},
		{
			Name:    "accessor",
			Title:   "Write client accessor",
			Confirm: "Create lib/prisma.ts with a shared client instance?",
			Gate:    func(cfg *Config) bool { return cfg.GenerateClient },
			Run: func(cfg *Config) error {
				_, err := WriteAccessor(cfg)
				return err
			},
		},
		{
			Name:    "studio",
			Title:   "Set up Prisma Studio",
			Confirm: "Register Prisma Studio in Nuxt devtools and launch it?",
			Gate:    func(cfg *Config) bool { return cfg.InstallStudio },
			Run: func(cfg *Config) error {
				if _, err := WriteStudioModule(cfg); err != nil {
					return err
				}
				return RunStudio(cfg, true)
			},
		},
	}
}
