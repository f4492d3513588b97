package setup

import (
	"fmt"
	"runtime"

	"github.com/rileychh/nuxt-prisma/ui"
)

// Dependency represents a required dependency
type Dependency struct {
	Name     string
	Command  string
	Required bool
	Found    bool
	HelpText string
}

// CheckDependencies verifies the tools the setup needs are installed
func CheckDependencies(cfg *Config) ([]Dependency, error) {
	deps := []Dependency{
		{
			Name:     "node",
			Command:  "node",
			Required: true,
			HelpText: getNodeInstallHelp(),
		},
		{
			Name:     cfg.PackageManager,
			Command:  cfg.PackageManager,
			Required: true,
			HelpText: getPackageManagerInstallHelp(cfg.PackageManager),
		},
		{
			Name:     "npx",
			Command:  "npx",
			Required: false,
			HelpText: "npx ships with npm 5.2+. Update npm with: npm install -g npm",
		},
	}

	// Check each dependency
	for i := range deps {
		deps[i].Found = commandExists(deps[i].Command)
	}

	// Check for required dependencies
	for _, dep := range deps {
		if dep.Required && !dep.Found {
			return deps, fmt.Errorf("%s is required but not found. %s", dep.Name, dep.HelpText)
		}
	}

	return deps, nil
}

// PrintDependencyStatus prints the status of all dependencies
func PrintDependencyStatus(deps []Dependency, silent bool) {
	if silent {
		return
	}

	for _, dep := range deps {
		if dep.Found {
			fmt.Println(ui.RenderSuccess(dep.Name))
		} else if dep.Required {
			fmt.Println(ui.RenderError(dep.Name + " (required)"))
		} else {
			fmt.Println(ui.RenderWarning(dep.Name + " not found"))
			fmt.Println("  " + ui.DimStyle.Render(dep.HelpText))
		}
	}
}

// getNodeInstallHelp returns platform-specific Node.js installation instructions
func getNodeInstallHelp() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install node"
	case "windows":
		return "Install with: winget install OpenJS.NodeJS.LTS"
	case "linux":
		return "Install with: apt install nodejs npm or use nvm"
	default:
		return "Install Node.js from https://nodejs.org"
	}
}

// getPackageManagerInstallHelp returns installation instructions for a package manager
func getPackageManagerInstallHelp(pm string) string {
	switch pm {
	case "pnpm":
		return "Install with: npm install -g pnpm or corepack enable pnpm"
	case "yarn":
		return "Install with: npm install -g yarn or corepack enable yarn"
	case "bun":
		return "Install with: curl -fsSL https://bun.sh/install | bash"
	default:
		return "npm ships with Node.js. Reinstall Node.js from https://nodejs.org"
	}
}
