package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileychh/nuxt-prisma/detect"
	"github.com/rileychh/nuxt-prisma/ui"
)

// envHeader is written at the top of a fresh .env, matching prisma init
const envHeader = `# Environment variables declared in this file are automatically made available to Prisma.
# See the documentation for more detail: https://pris.ly/d/prisma-schema#accessing-environment-variables-from-the-schema
`

// EnsureSchema writes the base schema file if the project has none.
// Returns whether a new file was created.
func EnsureSchema(cfg *Config) (bool, error) {
	if pathExists(cfg.SchemaPath) {
		return false, nil
	}

	content, err := renderStub(cfg, "schema.prisma")
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(cfg.PrismaDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create prisma directory: %w", err)
	}

	if err := os.WriteFile(cfg.SchemaPath, []byte(content), 0644); err != nil {
		return false, err
	}

	return true, nil
}

// AppendDemoModels appends the User and Post starter models to the schema.
// A schema that already declares either model is left untouched.
func AppendDemoModels(cfg *Config) (bool, error) {
	// prisma init normally created the schema, but cover the case
	// where that step was skipped or declined
	if _, err := EnsureSchema(cfg); err != nil {
		return false, err
	}

	schema, err := detect.ParseSchemaFile(cfg.SchemaPath)
	if err != nil {
		return false, err
	}
	if schema.HasModel("User") || schema.HasModel("Post") {
		return false, nil
	}

	fragment, err := renderStub(cfg, "models.prisma")
	if err != nil {
		return false, err
	}

	f, err := os.OpenFile(cfg.SchemaPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + fragment); err != nil {
		return false, err
	}

	return true, nil
}

// WriteAccessor writes the lib/prisma.ts client accessor.
// An existing file is left untouched unless cfg.Force is set.
func WriteAccessor(cfg *Config) (bool, error) {
	if pathExists(cfg.AccessorPath) && !cfg.Force {
		return false, nil
	}

	content, err := renderStub(cfg, "accessor.ts")
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.AccessorPath), 0755); err != nil {
		return false, err
	}

	// Back up the file we are about to overwrite
	if pathExists(cfg.AccessorPath) {
		if err := BackupFile(cfg.AccessorPath); err == nil {
			fmt.Println("  " + ui.DimStyle.Render(fmt.Sprintf("Backed up %s → %s.bak", filepath.Base(cfg.AccessorPath), filepath.Base(cfg.AccessorPath))))
		}
	}

	if err := os.WriteFile(cfg.AccessorPath, []byte(content), 0644); err != nil {
		return false, err
	}

	return true, nil
}

// WriteStudioModule writes the Nuxt module that embeds Prisma Studio
// in the devtools panel. An existing module is left untouched.
func WriteStudioModule(cfg *Config) (bool, error) {
	if pathExists(cfg.ModulePath) && !cfg.Force {
		return false, nil
	}

	content, err := renderStub(cfg, "studio-module.ts")
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.ModulePath), 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(cfg.ModulePath, []byte(content), 0644); err != nil {
		return false, err
	}

	return true, nil
}

// EnsureEnv makes sure .env declares DATABASE_URL, preserving other entries.
// Returns whether the file changed.
func EnsureEnv(cfg *Config) (bool, error) {
	url := cfg.DatabaseURL
	if url == "" {
		url = cfg.DefaultDatabaseURL()
	}
	entry := fmt.Sprintf("DATABASE_URL=%q", url)

	// Fresh file gets the prisma init header
	if !pathExists(cfg.EnvPath) {
		content := envHeader + "\n" + entry + "\n"
		return true, os.WriteFile(cfg.EnvPath, []byte(content), 0644)
	}

	vars, err := detect.ParseEnvFile(cfg.EnvPath)
	if err != nil {
		return false, err
	}

	existing := detect.GetEnvVar(vars, "DATABASE_URL")
	if existing != nil {
		// Respect an explicit override, rewrite the default placeholder
		if cfg.DatabaseURL == "" || existing.Value == cfg.DatabaseURL {
			return false, nil
		}
		return true, rewriteEnvEntry(cfg.EnvPath, entry)
	}

	// Back up before touching a file the user may own
	if err := BackupFile(cfg.EnvPath); err == nil {
		fmt.Println("  " + ui.DimStyle.Render(".env → .env.bak"))
	}

	f, err := os.OpenFile(cfg.EnvPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + entry + "\n"); err != nil {
		return false, err
	}

	return true, nil
}

// rewriteEnvEntry replaces the DATABASE_URL line in place
func rewriteEnvEntry(path, entry string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := BackupFile(path); err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		trimmed := strings.TrimPrefix(strings.TrimSpace(line), "export ")
		if strings.HasPrefix(trimmed, "DATABASE_URL=") {
			lines[i] = entry
		}
	}

	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}
