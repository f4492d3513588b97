// Package detect provides project and toolchain detection functionality
package detect

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Tool represents a command line tool the setup relies on
type Tool struct {
	Name     string
	Value    string
	Detected bool
	Hint     string
}

// lockFiles maps lockfile names to the package manager that writes them.
// Order matters: the first match wins when a project carries several.
var lockFiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"bun.lock", "bun"},
	{"package-lock.json", "npm"},
}

// DetectTools checks which parts of the Node toolchain are installed
func DetectTools() []Tool {
	tools := []Tool{
		{Name: "Node.js", Value: "node", Detected: false, Hint: "not found"},
		{Name: "npm", Value: "npm", Detected: false, Hint: "not found"},
		{Name: "pnpm", Value: "pnpm", Detected: false, Hint: "not found"},
		{Name: "Yarn", Value: "yarn", Detected: false, Hint: "not found"},
		{Name: "Bun", Value: "bun", Detected: false, Hint: "not found"},
		{Name: "Prisma CLI", Value: "prisma", Detected: false, Hint: "not found"},
	}

	// Node gets extra probing beyond PATH
	if detectNode() {
		tools[0].Detected = true
		tools[0].Hint = versionHint("node")
	}

	for i := 1; i < len(tools); i++ {
		if commandExists(tools[i].Value) {
			tools[i].Detected = true
			tools[i].Hint = versionHint(tools[i].Value)
		}
	}

	return tools
}

// DetectPackageManagers checks which Node package managers are installed
func DetectPackageManagers() []Tool {
	tools := []Tool{
		{Name: "npm", Value: "npm", Detected: false, Hint: "not found"},
		{Name: "pnpm", Value: "pnpm", Detected: false, Hint: "not found"},
		{Name: "Yarn", Value: "yarn", Detected: false, Hint: "not found"},
		{Name: "Bun", Value: "bun", Detected: false, Hint: "not found"},
	}

	for i := range tools {
		if commandExists(tools[i].Value) {
			tools[i].Detected = true
			tools[i].Hint = versionHint(tools[i].Value)
		}
	}

	return tools
}

// LockfileManager returns the package manager whose lockfile the project
// carries, or "" when the project has none
func LockfileManager(dir string) string {
	for _, lf := range lockFiles {
		if pathExists(filepath.Join(dir, lf.file)) {
			return lf.manager
		}
	}
	return ""
}

// PreferredPackageManager picks the package manager for a project directory.
// The project's lockfile decides; without one, the manager that launched the
// current process wins, then the first installed manager, then npm.
func PreferredPackageManager(dir string) string {
	if m := LockfileManager(dir); m != "" {
		return m
	}

	if m := userAgentManager(); m != "" {
		return m
	}

	for _, t := range DetectPackageManagers() {
		if t.Detected {
			return t.Value
		}
	}

	return "npm"
}

// userAgentManager reads npm_config_user_agent, which package managers set
// when they spawn child processes, e.g. "pnpm/9.1.0 npm/? node/v20.11.0"
func userAgentManager() string {
	ua := os.Getenv("npm_config_user_agent")
	if ua == "" {
		return ""
	}

	name, _, ok := strings.Cut(ua, "/")
	if !ok {
		return ""
	}

	switch name {
	case "npm", "pnpm", "yarn", "bun":
		return name
	}
	return ""
}

// PrismaBinary locates the Prisma CLI for a project. Resolution order is the
// project's own node_modules/.bin, then a global install, then npx.
func PrismaBinary(dir string) (cmd string, args []string) {
	local := localPrismaPath(dir)
	if pathExists(local) {
		return local, nil
	}

	if commandExists("prisma") {
		return "prisma", nil
	}

	return "npx", []string{"prisma"}
}

// HasLocalPrisma reports whether the project has the Prisma CLI in its
// own node_modules
func HasLocalPrisma(dir string) bool {
	return pathExists(localPrismaPath(dir))
}

// localPrismaPath returns the project-local CLI shim path
func localPrismaPath(dir string) string {
	local := filepath.Join(dir, "node_modules", ".bin", "prisma")
	if runtime.GOOS == "windows" {
		local += ".cmd"
	}
	return local
}

// CommandVersion runs "<cmd> --version" and returns the trimmed output
func CommandVersion(cmd string) string {
	out, err := exec.Command(cmd, "--version").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// versionHint formats a tool's version for display next to its name
func versionHint(cmd string) string {
	v := CommandVersion(cmd)
	if v == "" {
		return "detected"
	}
	// node prints "v20.11.0", the package managers print bare versions
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	// prisma prints a multi-line report, keep the first line only
	if idx := strings.IndexByte(v, '\n'); idx >= 0 {
		v = v[:idx]
	}
	return v
}

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// detectNode checks for a Node.js installation
func detectNode() bool {
	// Check command in PATH
	if commandExists("node") {
		return true
	}

	// Check common installation paths
	switch runtime.GOOS {
	case "darwin":
		if pathExists("/usr/local/bin/node") || pathExists("/opt/homebrew/bin/node") {
			return true
		}
		return nodeInHome()
	case "windows":
		programFiles := os.Getenv("ProgramFiles")
		if programFiles != "" {
			if pathExists(filepath.Join(programFiles, "nodejs", "node.exe")) {
				return true
			}
		}
	case "linux":
		if pathExists("/usr/bin/node") || pathExists("/usr/local/bin/node") {
			return true
		}
		return nodeInHome()
	}

	return false
}

// nodeInHome probes version-manager installs (volta, nvm) under $HOME
func nodeInHome() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}

	if pathExists(filepath.Join(home, ".volta", "bin", "node")) {
		return true
	}

	matches, _ := filepath.Glob(filepath.Join(home, ".nvm", "versions", "node", "*", "bin", "node"))
	return len(matches) > 0
}

// pathExists checks if a path exists
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GetToolByValue finds a tool by its value
func GetToolByValue(tools []Tool, value string) *Tool {
	for i := range tools {
		if tools[i].Value == value {
			return &tools[i]
		}
	}
	return nil
}

// FilterSelected returns only detected tools from the list
func FilterSelected(tools []Tool) []string {
	var selected []string
	for _, t := range tools {
		if t.Detected {
			selected = append(selected, t.Value)
		}
	}
	return selected
}
