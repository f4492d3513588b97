package setup

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed stubs/*.stub
var defaultStubs embed.FS

// StubData holds variables passed to the .stub templates
type StubData struct {
	Provider  string // datasource provider for the base schema
	LogLevels string // rendered TypeScript list, e.g. 'query', 'error'
	Port      int    // Prisma Studio port for the devtools module
}

// stubData builds the template data from the current configuration
func stubData(cfg *Config) StubData {
	return StubData{
		Provider:  cfg.Provider,
		LogLevels: tsList(cfg.LogLevels),
		Port:      cfg.StudioPort,
	}
}

// tsList renders strings as single-quoted TypeScript list elements
func tsList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}

// renderStub locates the stub (project override first, embedded fallback)
// and returns the string output from text/template.
func renderStub(cfg *Config, stubName string) (string, error) {
	var stubContent []byte
	var err error

	// 1. Try to load a project override from .nuxt-prisma/stubs/
	userPath := filepath.Join(cfg.ProjectDir, ".nuxt-prisma", "stubs", stubName+".stub")
	if _, errStat := os.Stat(userPath); errStat == nil {
		stubContent, err = os.ReadFile(userPath)
		if err != nil {
			return "", fmt.Errorf("failed to read user stub %s: %v", userPath, err)
		}
	} else {
		// 2. Fallback to embedded stub
		stubContent, err = defaultStubs.ReadFile("stubs/" + stubName + ".stub")
		if err != nil {
			return "", fmt.Errorf("embedded stub not found: %s", stubName)
		}
	}

	// 3. Compile as Go template
	t, err := template.New(stubName).Parse(string(stubContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %v", stubName, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, stubData(cfg)); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %v", stubName, err)
	}

	return buf.String(), nil
}
