package setup

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRegistry points registry lookups at a local server for the test
func fakeRegistry(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)

	original := registryBaseURL
	registryBaseURL = server.URL
	t.Cleanup(func() {
		registryBaseURL = original
		server.Close()
	})

	return server
}

func TestLatestVersion(t *testing.T) {
	fakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/prisma/latest" {
			w.Write([]byte(`{"name":"prisma","version":"5.20.0"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	version, err := LatestVersion("prisma")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if version != "5.20.0" {
		t.Errorf("LatestVersion = %s, want 5.20.0", version)
	}
}

func TestLatestVersion_ScopedPackage(t *testing.T) {
	var escapedPath string
	fakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		escapedPath = r.URL.EscapedPath()
		w.Write([]byte(`{"version":"5.20.0"}`))
	})

	if _, err := LatestVersion("@prisma/client"); err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}

	// Scoped names keep the slash escaped in the registry path
	if !strings.Contains(escapedPath, "@prisma%2Fclient") {
		t.Errorf("Expected escaped scope in path, got %s", escapedPath)
	}
}

func TestLatestVersion_HTTPError(t *testing.T) {
	fakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := LatestVersion("prisma"); err == nil {
		t.Error("LatestVersion should fail on HTTP errors")
	}
}

func TestLatestVersion_EmptyResponse(t *testing.T) {
	fakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	if _, err := LatestVersion("prisma"); err == nil {
		t.Error("LatestVersion should fail when the registry returns no version")
	}
}

func TestInstalledVersion(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "node_modules", "prisma")
	os.MkdirAll(pkgDir, 0755)
	os.WriteFile(filepath.Join(pkgDir, "package.json"),
		[]byte(`{"name":"prisma","version":"5.19.1"}`), 0644)

	version, err := InstalledVersion(dir, "prisma")
	if err != nil {
		t.Fatalf("InstalledVersion failed: %v", err)
	}
	if version != "5.19.1" {
		t.Errorf("InstalledVersion = %s, want 5.19.1", version)
	}
}

func TestInstalledVersion_ScopedPackage(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "node_modules", "@prisma", "client")
	os.MkdirAll(pkgDir, 0755)
	os.WriteFile(filepath.Join(pkgDir, "package.json"),
		[]byte(`{"version":"5.19.1"}`), 0644)

	version, err := InstalledVersion(dir, "@prisma/client")
	if err != nil {
		t.Fatalf("InstalledVersion failed: %v", err)
	}
	if version != "5.19.1" {
		t.Errorf("InstalledVersion = %s, want 5.19.1", version)
	}
}

func TestInstalledVersion_NotInstalled(t *testing.T) {
	version, err := InstalledVersion(t.TempDir(), "prisma")
	if err != nil {
		t.Fatalf("Missing package should not error: %v", err)
	}
	if version != "" {
		t.Errorf("Expected empty version, got %s", version)
	}
}

func TestInstalledVersion_InvalidManifest(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "node_modules", "prisma")
	os.MkdirAll(pkgDir, 0755)
	os.WriteFile(filepath.Join(pkgDir, "package.json"), []byte("not json"), 0644)

	if _, err := InstalledVersion(dir, "prisma"); err == nil {
		t.Error("Malformed package.json should error")
	}
}

func writeInstalledPackage(t *testing.T, projectDir, pkg, version string) {
	t.Helper()
	pkgDir := filepath.Join(projectDir, "node_modules", pkg)
	os.MkdirAll(pkgDir, 0755)
	os.WriteFile(filepath.Join(pkgDir, "package.json"),
		[]byte(`{"version":"`+version+`"}`), 0644)
}

func TestCheckVersion_NotInstalled(t *testing.T) {
	clearSetupEnv(t)
	cfg := NewConfig(t.TempDir())

	needsUpdate, localVer, _, err := CheckVersion(cfg, "prisma")
	if err != nil {
		t.Fatalf("CheckVersion failed: %v", err)
	}

	if !needsUpdate {
		t.Error("Missing package should need an install")
	}
	if localVer != "" {
		t.Errorf("Expected empty local version, got %s", localVer)
	}
}

func TestCheckVersion_Force(t *testing.T) {
	clearSetupEnv(t)
	cfg := NewConfig(t.TempDir())
	cfg.Force = true
	writeInstalledPackage(t, cfg.ProjectDir, "prisma", "5.19.1")

	needsUpdate, localVer, _, err := CheckVersion(cfg, "prisma")
	if err != nil {
		t.Fatalf("CheckVersion failed: %v", err)
	}

	if !needsUpdate {
		t.Error("Force should always need update")
	}
	if localVer != "5.19.1" {
		t.Errorf("Expected local version 5.19.1, got %s", localVer)
	}
}

func TestCheckVersion_UpToDate(t *testing.T) {
	clearSetupEnv(t)
	fakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"5.20.0"}`))
	})

	cfg := NewConfig(t.TempDir())
	writeInstalledPackage(t, cfg.ProjectDir, "prisma", "5.20.0")

	needsUpdate, localVer, remoteVer, err := CheckVersion(cfg, "prisma")
	if err != nil {
		t.Fatalf("CheckVersion failed: %v", err)
	}

	if needsUpdate {
		t.Error("Matching versions should not need update")
	}
	if localVer != "5.20.0" || remoteVer != "5.20.0" {
		t.Errorf("Versions = %s/%s, want 5.20.0/5.20.0", localVer, remoteVer)
	}
}

func TestCheckVersion_Outdated(t *testing.T) {
	clearSetupEnv(t)
	fakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"5.20.0"}`))
	})

	cfg := NewConfig(t.TempDir())
	writeInstalledPackage(t, cfg.ProjectDir, "prisma", "5.19.1")

	needsUpdate, _, remoteVer, err := CheckVersion(cfg, "prisma")
	if err != nil {
		t.Fatalf("CheckVersion failed: %v", err)
	}

	if !needsUpdate {
		t.Error("Older local version should need update")
	}
	if remoteVer != "5.20.0" {
		t.Errorf("Remote version = %s, want 5.20.0", remoteVer)
	}
}
