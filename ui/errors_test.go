package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestCLIError(t *testing.T) {
	err := NewCLIError("test error")

	if err.Message != "test error" {
		t.Errorf("Expected message 'test error', got '%s'", err.Message)
	}

	if err.Error() != "test error" {
		t.Errorf("Error() should return message")
	}
}

func TestCLIErrorChaining(t *testing.T) {
	err := NewCLIError("main error").
		WithDetails("some details").
		WithCause("cause 1").
		WithCause("cause 2").
		WithSuggestion("suggestion 1").
		WithSuggestion("suggestion 2")

	if err.Details != "some details" {
		t.Errorf("Expected details 'some details', got '%s'", err.Details)
	}

	if len(err.Causes) != 2 {
		t.Errorf("Expected 2 causes, got %d", len(err.Causes))
	}

	if len(err.Suggestions) != 2 {
		t.Errorf("Expected 2 suggestions, got %d", len(err.Suggestions))
	}
}

func TestErrNodeNotFound(t *testing.T) {
	err := ErrNodeNotFound()

	if !strings.Contains(err.Message, "Node.js") {
		t.Error("Error should mention Node.js")
	}

	if len(err.Suggestions) == 0 {
		t.Error("Should have suggestions")
	}
}

func TestErrNoPackageManager(t *testing.T) {
	err := ErrNoPackageManager()

	if !strings.Contains(err.Details, "npm") || !strings.Contains(err.Details, "pnpm") {
		t.Error("Error should mention npm and pnpm")
	}

	if len(err.Suggestions) == 0 {
		t.Error("Should have suggestions")
	}
}

func TestErrPrismaNotFound(t *testing.T) {
	err := ErrPrismaNotFound()

	if !strings.Contains(err.Message, "Prisma") {
		t.Error("Error should mention Prisma")
	}

	hasSuggestion := false
	for _, s := range err.Suggestions {
		if strings.Contains(s, "npm install -D prisma") {
			hasSuggestion = true
			break
		}
	}
	if !hasSuggestion {
		t.Error("Should suggest installing prisma into the project")
	}
}

func TestErrNotNodeProject(t *testing.T) {
	err := ErrNotNodeProject("/tmp/elsewhere")

	if !strings.Contains(err.Details, "package.json") {
		t.Error("Details should mention package.json")
	}

	if !strings.Contains(err.Details, "/tmp/elsewhere") {
		t.Error("Details should contain the directory")
	}
}

func TestErrNetworkError(t *testing.T) {
	originalErr := errors.New("connection refused")
	err := ErrNetworkError("https://registry.npmjs.org", originalErr)

	if !strings.Contains(err.Message, "Network") {
		t.Error("Error should mention Network")
	}

	if !strings.Contains(err.Details, "registry.npmjs.org") {
		t.Error("Details should contain the URL")
	}

	if !strings.Contains(err.Details, "connection refused") {
		t.Error("Details should contain original error")
	}
}

func TestErrDatabaseUnreachable(t *testing.T) {
	originalErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	err := ErrDatabaseUnreachable(originalErr)

	if !strings.Contains(err.Message, "Database") {
		t.Error("Error should mention Database")
	}

	if !strings.Contains(err.Details, "5432") {
		t.Error("Details should contain original error")
	}

	hasSuggestion := false
	for _, s := range err.Suggestions {
		if strings.Contains(s, "DATABASE_URL") {
			hasSuggestion = true
			break
		}
	}
	if !hasSuggestion {
		t.Error("Should suggest checking DATABASE_URL")
	}
}

func TestWrapError(t *testing.T) {
	// Test with nil error
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	// Test network error detection
	networkErr := errors.New("connection refused")
	wrapped := WrapError(networkErr, "failed to connect")
	if len(wrapped.Causes) == 0 || !strings.Contains(wrapped.Causes[0], "Network") {
		t.Error("Should detect network error")
	}

	// Test permission error detection
	permErr := errors.New("permission denied")
	wrapped = WrapError(permErr, "failed to write")
	hasCause := false
	for _, c := range wrapped.Causes {
		if strings.Contains(c, "permission") {
			hasCause = true
			break
		}
	}
	if !hasCause {
		t.Error("Should detect permission error")
	}

	// Test not found error detection
	notFoundErr := errors.New("file not found")
	wrapped = WrapError(notFoundErr, "")
	hasCause = false
	for _, c := range wrapped.Causes {
		if strings.Contains(c, "not found") {
			hasCause = true
			break
		}
	}
	if !hasCause {
		t.Error("Should detect not found error")
	}
}

func TestWrapErrorPrismaCodes(t *testing.T) {
	migrateErr := errors.New("Error: P1001: Can't reach database server at `localhost:5432`")
	wrapped := WrapError(migrateErr, "Migration failed")

	hasHint := false
	for _, s := range wrapped.Suggestions {
		if strings.Contains(s, "database server is running") {
			hasHint = true
			break
		}
	}
	if !hasHint {
		t.Error("Should map P1001 to a reachability hint")
	}

	hasCause := false
	for _, c := range wrapped.Causes {
		if strings.Contains(c, "P1001") {
			hasCause = true
			break
		}
	}
	if !hasCause {
		t.Error("Should name the Prisma error code as a cause")
	}
}

func TestWrapErrorDefaultMessage(t *testing.T) {
	err := WrapError(errors.New("some error"), "")
	if err.Message != "An error occurred" {
		t.Errorf("Expected default message, got '%s'", err.Message)
	}
}

func TestUserCancelledError(t *testing.T) {
	err := &UserCancelledError{}
	expected := "operation cancelled by user"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}

func TestIsUserCancelled(t *testing.T) {
	if !IsUserCancelled(ErrUserCancelled) {
		t.Error("Should recognize ErrUserCancelled")
	}

	if !IsUserCancelled(&UserCancelledError{}) {
		t.Error("Should recognize new UserCancelledError")
	}

	regularErr := errors.New("some error")
	if IsUserCancelled(regularErr) {
		t.Error("Should not recognize regular error as user cancelled")
	}
}
