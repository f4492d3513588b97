package ui

import (
	"fmt"
	"strings"
)

// CLIError represents an error with context and suggestions
type CLIError struct {
	Message     string
	Details     string
	Causes      []string
	Suggestions []string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// Print displays the error with full formatting
func (e *CLIError) Print() {
	fmt.Println()
	fmt.Println("  " + ErrorStyle.Render("✗ "+e.Message))

	if e.Details != "" {
		fmt.Println()
		fmt.Println("  " + DimStyle.Render(e.Details))
	}

	if len(e.Causes) > 0 {
		fmt.Println()
		fmt.Println("  " + SubtitleStyle.Render("Possible causes:"))
		for _, cause := range e.Causes {
			fmt.Println("    " + DimStyle.Render("• "+cause))
		}
	}

	if len(e.Suggestions) > 0 {
		fmt.Println()
		fmt.Println("  " + SubtitleStyle.Render("Try:"))
		for _, suggestion := range e.Suggestions {
			fmt.Println("    " + InfoStyle.Render("→ ") + suggestion)
		}
	}

	fmt.Println()
}

// PrintWarning displays the error as a non-fatal warning, used by the setup
// pipeline's continue-on-failure policy.
func (e *CLIError) PrintWarning() {
	fmt.Println("  " + WarningStyle.Render(IconWarning+" "+e.Message))

	if e.Details != "" {
		fmt.Println("    " + DimStyle.Render(e.Details))
	}

	for _, suggestion := range e.Suggestions {
		fmt.Println("    " + InfoStyle.Render("→ ") + suggestion)
	}
}

// NewCLIError creates a new CLI error
func NewCLIError(message string) *CLIError {
	return &CLIError{Message: message}
}

// WithDetails adds details to the error
func (e *CLIError) WithDetails(details string) *CLIError {
	e.Details = details
	return e
}

// WithCause adds a possible cause
func (e *CLIError) WithCause(cause string) *CLIError {
	e.Causes = append(e.Causes, cause)
	return e
}

// WithSuggestion adds a suggestion
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// Common errors with helpful context

// ErrUserCancelled is returned when the user cancels an operation (Ctrl+C)
var ErrUserCancelled = &UserCancelledError{}

// UserCancelledError represents a user-initiated cancellation
type UserCancelledError struct{}

func (e *UserCancelledError) Error() string {
	return "operation cancelled by user"
}

// IsUserCancelled checks if an error is a user cancellation
func IsUserCancelled(err error) bool {
	_, ok := err.(*UserCancelledError)
	return ok
}

// ErrNodeNotFound returns an error for a missing Node.js runtime
func ErrNodeNotFound() *CLIError {
	return NewCLIError("Node.js is not installed").
		WithCause("node executable not found in PATH").
		WithSuggestion("Install Node.js from https://nodejs.org").
		WithSuggestion("On macOS: brew install node").
		WithSuggestion("On Ubuntu: sudo apt install nodejs npm")
}

// ErrNoPackageManager returns an error when no JS package manager is usable
func ErrNoPackageManager() *CLIError {
	return NewCLIError("No package manager found").
		WithDetails("One of npm, pnpm, yarn, or bun is required to install Prisma").
		WithSuggestion("npm ships with Node.js: https://nodejs.org").
		WithSuggestion("Or install pnpm: npm install -g pnpm")
}

// ErrPrismaNotFound returns an error for a missing Prisma CLI
func ErrPrismaNotFound() *CLIError {
	return NewCLIError("Prisma CLI is not available").
		WithCause("prisma not found in the project or globally").
		WithCause("npx is not installed").
		WithSuggestion("Install it into the project: npm install -D prisma").
		WithSuggestion("Or re-run setup and accept the install prompt")
}

// ErrNotNodeProject returns an error when no package.json can be found
func ErrNotNodeProject(dir string) *CLIError {
	return NewCLIError("Not inside a Node.js project").
		WithDetails(fmt.Sprintf("No package.json found in %s or any parent directory", dir)).
		WithSuggestion("Run from your Nuxt project directory").
		WithSuggestion("Or pass the project with --dir")
}

// ErrNetworkError returns a network connectivity error
func ErrNetworkError(url string, err error) *CLIError {
	cliErr := NewCLIError("Network error").
		WithDetails(fmt.Sprintf("Failed to connect to %s", url)).
		WithCause("No internet connection").
		WithCause("Firewall blocking the connection").
		WithCause("DNS resolution failure").
		WithSuggestion("Check your internet connection").
		WithSuggestion("Try again in a few moments")

	if err != nil {
		cliErr.Details += fmt.Sprintf("\n  Error: %v", err)
	}

	return cliErr
}

// ErrDatabaseUnreachable returns an error for a failed connectivity check
func ErrDatabaseUnreachable(err error) *CLIError {
	cliErr := NewCLIError("Database is not reachable").
		WithCause("Database server not running").
		WithCause("Wrong credentials or host in DATABASE_URL").
		WithSuggestion("Check DATABASE_URL in .env").
		WithSuggestion("Start your database server and retry")

	if err != nil {
		cliErr.Details = err.Error()
	}

	return cliErr
}

// PrintSimpleError prints a simple error message
func PrintSimpleError(message string) {
	fmt.Println("  " + ErrorStyle.Render("✗ "+message))
}

// PrintErrorWithHelp prints an error with a help hint
func PrintErrorWithHelp(message string, helpCommand string) {
	fmt.Println("  " + ErrorStyle.Render("✗ "+message))
	fmt.Println("  " + DimStyle.Render("Run '"+helpCommand+"' for more information"))
}

// prismaErrorHints maps well-known Prisma error codes to suggestions.
var prismaErrorHints = map[string]string{
	"P1000": "Check the database credentials in DATABASE_URL",
	"P1001": "Make sure the database server is running and reachable",
	"P1003": "Create the database first, or let `prisma migrate dev` create it",
	"P1012": "The schema file has validation errors; run `npx prisma validate`",
	"P3005": "The database schema is not empty; baseline it with `prisma migrate resolve`",
	"P3014": "Shadow database could not be created; grant the user CREATE DATABASE rights",
}

// WrapError wraps a standard error with CLI formatting
func WrapError(err error, context string) *CLIError {
	if err == nil {
		return nil
	}

	message := context
	if context == "" {
		message = "An error occurred"
	}

	cliErr := NewCLIError(message)

	// Try to provide helpful context based on error content
	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network") {
		cliErr.WithCause("Network connectivity issue")
		cliErr.WithSuggestion("Check your internet connection")
	}

	if strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "eacces") {
		cliErr.WithCause("Insufficient permissions")
		cliErr.WithSuggestion("Check file/directory permissions")
	}

	if strings.Contains(errStr, "not found") ||
		strings.Contains(errStr, "no such file") ||
		strings.Contains(errStr, "enoent") {
		cliErr.WithCause("Required file or command not found")
	}

	for code, hint := range prismaErrorHints {
		if strings.Contains(err.Error(), code) {
			cliErr.WithCause("Prisma reported error " + code)
			cliErr.WithSuggestion(hint)
		}
	}

	cliErr.Details = err.Error()

	return cliErr
}
