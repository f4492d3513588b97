package detect

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// EnvVar is a single key=value entry from a dotenv file
type EnvVar struct {
	Key   string
	Value string
}

// ParseEnvFile reads a dotenv file into ordered key-value pairs.
// A missing file is not an error.
func ParseEnvFile(path string) ([]EnvVar, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var vars []EnvVar

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Allow an optional "export " prefix
		line = strings.TrimPrefix(line, "export ")

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := unquote(strings.TrimSpace(parts[1]))

		if key == "" {
			continue
		}

		vars = append(vars, EnvVar{Key: key, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return vars, nil
}

// unquote strips one layer of matching quotes
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// GetEnvVar finds a variable by key
func GetEnvVar(vars []EnvVar, key string) *EnvVar {
	for i := range vars {
		if vars[i].Key == key {
			return &vars[i]
		}
	}
	return nil
}

// HasEnvVar checks if a variable is present
func HasEnvVar(vars []EnvVar, key string) bool {
	return GetEnvVar(vars, key) != nil
}

// DatabaseURL returns the effective database URL for a project.
// The process environment wins over the .env file.
func DatabaseURL(envPath string) string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}

	vars, err := ParseEnvFile(envPath)
	if err != nil {
		return ""
	}

	if v := GetEnvVar(vars, "DATABASE_URL"); v != nil {
		return v.Value
	}
	return ""
}

// credentialRegex matches the user:password section of a connection URL
var credentialRegex = regexp.MustCompile(`//([^:/@]+):([^@]+)@`)

// MaskDatabaseURL hides credentials in a connection string for display
func MaskDatabaseURL(url string) string {
	return credentialRegex.ReplaceAllString(url, "//$1:****@")
}

// IsSkipSet checks if SKIP_PRISMA_SETUP asks to skip every setup step
func IsSkipSet() bool {
	return envTruthy(os.Getenv("SKIP_PRISMA_SETUP"))
}

// IsAutoSet checks if PRISMA_AUTO_SETUP asks for a prompt-free run
func IsAutoSet() bool {
	return envTruthy(os.Getenv("PRISMA_AUTO_SETUP"))
}

// envTruthy treats the common affirmative spellings as true
func envTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// StudioPort returns the Prisma Studio port, honoring PRISMA_STUDIO_PORT
func StudioPort() int {
	if v := os.Getenv("PRISMA_STUDIO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port < 65536 {
			return port
		}
	}
	return 5555
}
