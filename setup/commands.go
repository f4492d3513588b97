package setup

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rileychh/nuxt-prisma/detect"
)

// execCommand is swapped in tests to observe the commands the setup runs
var execCommand = exec.Command

// installArgs returns the package-manager-specific install arguments
func installArgs(pm string, dev bool, pkgs ...string) []string {
	var args []string
	switch pm {
	case "yarn":
		args = []string{"add"}
		if dev {
			args = append(args, "--dev")
		}
	case "pnpm", "bun":
		args = []string{"add"}
		if dev {
			args = append(args, "-D")
		}
	default: // npm
		args = []string{"install"}
		if dev {
			args = append(args, "-D")
		}
	}
	return append(args, pkgs...)
}

// InstallPackage installs packages with the project's package manager
func InstallPackage(cfg *Config, dev bool, pkgs ...string) error {
	args := installArgs(cfg.PackageManager, dev, pkgs...)

	cmd := execCommand(cfg.PackageManager, args...)
	cmd.Dir = cfg.ProjectDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s failed: %s - %w",
			cfg.PackageManager, strings.Join(args, " "), strings.TrimSpace(string(output)), err)
	}
	return nil
}

// InstallPrismaCLI installs the prisma dev dependency
func InstallPrismaCLI(cfg *Config) error {
	return InstallPackage(cfg, true, PrismaCLIPackage)
}

// InstallPrismaClient installs the @prisma/client runtime dependency
func InstallPrismaClient(cfg *Config) error {
	return InstallPackage(cfg, false, PrismaClientPackage)
}

// removeArgs returns the package-manager-specific uninstall arguments
func removeArgs(pm string, pkgs ...string) []string {
	var args []string
	switch pm {
	case "yarn", "pnpm", "bun":
		args = []string{"remove"}
	default: // npm
		args = []string{"uninstall"}
	}
	return append(args, pkgs...)
}

// RemovePackage uninstalls packages with the project's package manager
func RemovePackage(cfg *Config, pkgs ...string) error {
	args := removeArgs(cfg.PackageManager, pkgs...)

	cmd := execCommand(cfg.PackageManager, args...)
	cmd.Dir = cfg.ProjectDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s failed: %s - %w",
			cfg.PackageManager, strings.Join(args, " "), strings.TrimSpace(string(output)), err)
	}
	return nil
}

// prismaCmd builds a Prisma CLI invocation for the project
func prismaCmd(cfg *Config, args ...string) *exec.Cmd {
	bin, prefix := detect.PrismaBinary(cfg.ProjectDir)
	cmd := execCommand(bin, append(prefix, args...)...)
	cmd.Dir = cfg.ProjectDir
	return cmd
}

// RunInit runs prisma init with the configured datasource provider
func RunInit(cfg *Config) error {
	args := []string{"init", "--datasource-provider", cfg.Provider}
	if cfg.DatabaseURL != "" {
		args = append(args, "--url", cfg.DatabaseURL)
	}

	cmd := prismaCmd(cfg, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		// prisma init refuses to run twice, treat that as already done
		if strings.Contains(string(output), "already exists") {
			return nil
		}
		return fmt.Errorf("prisma init failed: %s - %w", strings.TrimSpace(string(output)), err)
	}
	return nil
}

// RunFormat runs prisma format on the schema
func RunFormat(cfg *Config) error {
	cmd := prismaCmd(cfg, "format")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("prisma format failed: %s - %w", strings.TrimSpace(string(output)), err)
	}
	return nil
}

// RunMigrateDev runs the initial migration. The command stays attached to
// the terminal because prisma migrate dev prompts on drift.
func RunMigrateDev(cfg *Config) error {
	cmd := prismaCmd(cfg, "migrate", "dev", "--name", cfg.MigrationName)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// RunGenerate runs prisma generate to build the client
func RunGenerate(cfg *Config) error {
	cmd := prismaCmd(cfg, "generate")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("prisma generate failed: %s - %w", strings.TrimSpace(string(output)), err)
	}
	return nil
}

// RunStudio starts Prisma Studio. Detached mode releases the process so
// the setup can finish while Studio keeps serving.
func RunStudio(cfg *Config, detach bool) error {
	args := []string{"studio", "--port", strconv.Itoa(cfg.StudioPort)}
	if detach {
		args = append(args, "--browser", "none")
	}

	cmd := prismaCmd(cfg, args...)

	if !detach {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// CLIVersion returns the first line of the prisma version report
func CLIVersion(cfg *Config) string {
	cmd := prismaCmd(cfg, "--version")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	version := strings.TrimSpace(string(output))
	if idx := strings.IndexByte(version, '\n'); idx >= 0 {
		version = version[:idx]
	}
	return version
}

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
