package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Project describes the Node project the setup operates on
type Project struct {
	RootDir        string
	PackageJSON    string
	Name           string
	IsNuxt         bool
	PackageManager string

	dependencies map[string]string
}

// packageJSON mirrors the package.json fields the setup reads
type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// FindProject locates the enclosing Node project.
// It walks up the directory tree from startDir until it finds a package.json.
func FindProject(startDir string) (*Project, error) {
	path := startDir
	for {
		pkgPath := filepath.Join(path, "package.json")
		if pathExists(pkgPath) {
			return loadProject(path, pkgPath)
		}

		parent := filepath.Dir(path)
		if parent == path {
			// Reached root
			break
		}
		path = parent
	}

	return nil, fmt.Errorf("no package.json found in %s or any parent directory", startDir)
}

// LoadProject reads the project rooted at dir without walking up
func LoadProject(dir string) (*Project, error) {
	pkgPath := filepath.Join(dir, "package.json")
	if !pathExists(pkgPath) {
		return nil, fmt.Errorf("no package.json found in %s", dir)
	}
	return loadProject(dir, pkgPath)
}

func loadProject(rootDir, pkgPath string) (*Project, error) {
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return nil, err
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("invalid package.json at %s: %w", pkgPath, err)
	}

	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for k, v := range pkg.Dependencies {
		deps[k] = v
	}
	for k, v := range pkg.DevDependencies {
		deps[k] = v
	}

	p := &Project{
		RootDir:        rootDir,
		PackageJSON:    pkgPath,
		Name:           pkg.Name,
		PackageManager: PreferredPackageManager(rootDir),
		dependencies:   deps,
	}
	p.IsNuxt = p.HasDependency("nuxt")

	return p, nil
}

// HasDependency reports whether the project declares a dependency in either
// dependencies or devDependencies
func (p *Project) HasDependency(name string) bool {
	_, ok := p.dependencies[name]
	return ok
}

// DependencyVersion returns the declared version range for a dependency,
// or "" when it is not declared
func (p *Project) DependencyVersion(name string) string {
	return p.dependencies[name]
}

// HasPrismaCLI reports whether the project declares the prisma dev dependency
func (p *Project) HasPrismaCLI() bool {
	return p.HasDependency("prisma")
}

// HasPrismaClient reports whether the project declares @prisma/client
func (p *Project) HasPrismaClient() bool {
	return p.HasDependency("@prisma/client")
}

// HasNodeModules reports whether dependencies have been installed
func (p *Project) HasNodeModules() bool {
	return pathExists(filepath.Join(p.RootDir, "node_modules"))
}

// HasInstalledClient reports whether @prisma/client is present on disk,
// declared or not
func (p *Project) HasInstalledClient() bool {
	return pathExists(filepath.Join(p.RootDir, "node_modules", "@prisma", "client"))
}
