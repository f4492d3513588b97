package detect

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetToolByValue(t *testing.T) {
	tools := []Tool{
		{Name: "Node.js", Value: "node", Detected: true},
		{Name: "pnpm", Value: "pnpm", Detected: false},
		{Name: "Prisma CLI", Value: "prisma", Detected: true},
	}

	// Find existing tool
	tool := GetToolByValue(tools, "pnpm")
	if tool == nil {
		t.Fatal("Should find pnpm tool")
	}
	if tool.Name != "pnpm" {
		t.Errorf("Expected pnpm, got %s", tool.Name)
	}

	// Not find nonexistent tool
	tool = GetToolByValue(tools, "nonexistent")
	if tool != nil {
		t.Error("Should not find nonexistent tool")
	}
}

func TestFilterSelected(t *testing.T) {
	tools := []Tool{
		{Name: "Node.js", Value: "node", Detected: true},
		{Name: "pnpm", Value: "pnpm", Detected: false},
		{Name: "npm", Value: "npm", Detected: true},
		{Name: "Bun", Value: "bun", Detected: false},
	}

	selected := FilterSelected(tools)

	if len(selected) != 2 {
		t.Errorf("Expected 2 selected tools, got %d", len(selected))
	}

	// Check that only detected tools are included
	expectedSelected := map[string]bool{"node": true, "npm": true}
	for _, s := range selected {
		if !expectedSelected[s] {
			t.Errorf("Unexpected selected tool: %s", s)
		}
	}
}

func TestFilterSelected_Empty(t *testing.T) {
	tools := []Tool{
		{Name: "pnpm", Value: "pnpm", Detected: false},
		{Name: "Bun", Value: "bun", Detected: false},
	}

	selected := FilterSelected(tools)

	if len(selected) != 0 {
		t.Errorf("Expected 0 selected tools, got %d", len(selected))
	}
}

func TestDetectTools(t *testing.T) {
	tools := DetectTools()

	// Should always return 6 tools
	if len(tools) != 6 {
		t.Errorf("Expected 6 tools, got %d", len(tools))
	}

	// Verify expected tool values
	expectedValues := map[string]bool{
		"node":   false,
		"npm":    false,
		"pnpm":   false,
		"yarn":   false,
		"bun":    false,
		"prisma": false,
	}

	for _, tool := range tools {
		if _, ok := expectedValues[tool.Value]; !ok {
			t.Errorf("Unexpected tool value: %s", tool.Value)
		}
		expectedValues[tool.Value] = true

		if tool.Hint == "" {
			t.Errorf("Tool %s should always carry a hint", tool.Value)
		}
	}

	// Check all expected values were found
	for value, found := range expectedValues {
		if !found {
			t.Errorf("Missing tool value: %s", value)
		}
	}
}

func TestDetectPackageManagers(t *testing.T) {
	tools := DetectPackageManagers()

	if len(tools) != 4 {
		t.Errorf("Expected 4 package managers, got %d", len(tools))
	}

	expectedValues := map[string]bool{"npm": true, "pnpm": true, "yarn": true, "bun": true}
	for _, tool := range tools {
		if !expectedValues[tool.Value] {
			t.Errorf("Unexpected package manager: %s", tool.Value)
		}
	}
}

func TestPreferredPackageManager_Lockfiles(t *testing.T) {
	tests := []struct {
		name     string
		lockfile string
		want     string
	}{
		{"pnpm lockfile", "pnpm-lock.yaml", "pnpm"},
		{"yarn lockfile", "yarn.lock", "yarn"},
		{"bun binary lockfile", "bun.lockb", "bun"},
		{"bun text lockfile", "bun.lock", "bun"},
		{"npm lockfile", "package-lock.json", "npm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, tt.lockfile), []byte(""), 0644); err != nil {
				t.Fatalf("Failed to write lockfile: %v", err)
			}

			if got := PreferredPackageManager(dir); got != tt.want {
				t.Errorf("PreferredPackageManager() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLockfileManager(t *testing.T) {
	dir := t.TempDir()

	if got := LockfileManager(dir); got != "" {
		t.Errorf("LockfileManager() = %s, want empty without a lockfile", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "yarn.lock"), []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write lockfile: %v", err)
	}

	if got := LockfileManager(dir); got != "yarn" {
		t.Errorf("LockfileManager() = %s, want yarn", got)
	}
}

func TestPreferredPackageManager_FirstMatchWins(t *testing.T) {
	dir := t.TempDir()

	// Both lockfiles present, pnpm checked before npm
	for _, f := range []string{"pnpm-lock.yaml", "package-lock.json"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(""), 0644); err != nil {
			t.Fatalf("Failed to write lockfile: %v", err)
		}
	}

	if got := PreferredPackageManager(dir); got != "pnpm" {
		t.Errorf("PreferredPackageManager() = %s, want pnpm", got)
	}
}

func TestPreferredPackageManager_NoLockfile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("npm_config_user_agent", "")

	// Without a lockfile the result depends on what is installed,
	// but it must never be empty
	if got := PreferredPackageManager(dir); got == "" {
		t.Error("PreferredPackageManager() should never return empty")
	}
}

func TestPreferredPackageManager_UserAgent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("npm_config_user_agent", "pnpm/9.1.0 npm/? node/v20.11.0 linux x64")

	if got := PreferredPackageManager(dir); got != "pnpm" {
		t.Errorf("PreferredPackageManager() = %s, want pnpm from user agent", got)
	}
}

func TestPreferredPackageManager_LockfileBeatsUserAgent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("npm_config_user_agent", "pnpm/9.1.0 npm/? node/v20.11.0 linux x64")

	if err := os.WriteFile(filepath.Join(dir, "yarn.lock"), []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write lockfile: %v", err)
	}

	if got := PreferredPackageManager(dir); got != "yarn" {
		t.Errorf("PreferredPackageManager() = %s, want yarn from lockfile", got)
	}
}

func TestUserAgentManager(t *testing.T) {
	tests := []struct {
		name  string
		agent string
		want  string
	}{
		{"pnpm agent", "pnpm/9.1.0 npm/? node/v20.11.0 linux x64", "pnpm"},
		{"bun agent", "bun/1.1.8 npm/? node/v22.3.0 darwin arm64", "bun"},
		{"yarn agent", "yarn/1.22.22 npm/? node/v20.11.0 linux x64", "yarn"},
		{"npm agent", "npm/10.2.4 node/v20.11.0 linux x64 workspaces/false", "npm"},
		{"unknown manager", "cargo/1.75.0 linux x64", ""},
		{"malformed", "not-a-user-agent", ""},
		{"unset", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("npm_config_user_agent", tt.agent)

			if got := userAgentManager(); got != tt.want {
				t.Errorf("userAgentManager() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrismaBinary_Local(t *testing.T) {
	dir := t.TempDir()

	name := "prisma"
	if runtime.GOOS == "windows" {
		name += ".cmd"
	}

	binDir := filepath.Join(dir, "node_modules", ".bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("Failed to create bin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to write prisma shim: %v", err)
	}

	cmd, args := PrismaBinary(dir)
	if cmd != filepath.Join(binDir, name) {
		t.Errorf("Expected local shim path, got %s", cmd)
	}
	if len(args) != 0 {
		t.Errorf("Local shim should take no args prefix, got %v", args)
	}

	if !HasLocalPrisma(dir) {
		t.Error("HasLocalPrisma should be true with a local shim")
	}
}

func TestPrismaBinary_Fallback(t *testing.T) {
	dir := t.TempDir()

	cmd, args := PrismaBinary(dir)

	// Without a local shim the CLI resolves to a global binary or npx
	if cmd != "prisma" && cmd != "npx" {
		t.Errorf("Expected prisma or npx, got %s", cmd)
	}

	if cmd == "npx" {
		if len(args) != 1 || args[0] != "prisma" {
			t.Errorf("npx fallback should carry prisma arg, got %v", args)
		}
	}

	if HasLocalPrisma(dir) {
		t.Error("HasLocalPrisma should be false without a local shim")
	}
}

func TestCommandVersion_Missing(t *testing.T) {
	if v := CommandVersion("definitely-not-a-real-command-xyz"); v != "" {
		t.Errorf("Expected empty version for missing command, got %s", v)
	}
}
