package setup

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// registryBaseURL is a variable so tests can point lookups at a local server
var registryBaseURL = RegistryURL

// registryClient bounds registry lookups so a dead network cannot hang
// the update check
var registryClient = &http.Client{Timeout: 10 * time.Second}

// LatestVersion fetches the latest published version of an npm package
func LatestVersion(pkg string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/latest", registryBaseURL, url.PathEscape(pkg))

	resp, err := registryClient.Get(endpoint)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var info struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}

	if info.Version == "" {
		return "", fmt.Errorf("registry returned no version for %s", pkg)
	}

	return info.Version, nil
}

// InstalledVersion reads the version of a package installed under
// node_modules. Returns "" when the package is not installed.
func InstalledVersion(projectDir, pkg string) (string, error) {
	manifest := filepath.Join(projectDir, "node_modules", pkg, "package.json")

	data, err := os.ReadFile(manifest)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var info struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return "", fmt.Errorf("parse %s: %w", manifest, err)
	}

	return info.Version, nil
}

// CheckVersion compares the installed and latest versions of a package
// Returns true if update is needed, false if up to date
func CheckVersion(cfg *Config, pkg string) (needsUpdate bool, localVer string, remoteVer string, err error) {
	localVer, err = InstalledVersion(cfg.ProjectDir, pkg)
	if err != nil {
		return false, "", "", err
	}

	// Not installed yet
	if localVer == "" {
		return true, "", "", nil
	}

	// Force reinstall bypasses version check
	if cfg.Force {
		return true, localVer, "", nil
	}

	remoteVer, err = LatestVersion(pkg)
	if err != nil {
		// Can't check remote, allow install
		return true, localVer, "", nil
	}

	if localVer == remoteVer {
		return false, localVer, remoteVer, nil
	}

	return true, localVer, remoteVer, nil
}
