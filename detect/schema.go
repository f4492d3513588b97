package detect

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// Schema summarizes the parts of a schema.prisma file the setup cares about
type Schema struct {
	Path       string
	Provider   string
	URLEnvVar  string // env("...") name the datasource url reads
	URL        string // literal url when not using env()
	Generators []string
	Models     []string
}

var (
	// Matches block openers like `model User {` or `datasource db {`
	blockRegex    = regexp.MustCompile(`^(datasource|generator|model|enum)\s+(\w+)\s*\{`)
	providerRegex = regexp.MustCompile(`^provider\s*=\s*"([^"]+)"`)
	urlEnvRegex   = regexp.MustCompile(`^url\s*=\s*env\("([^"]+)"\)`)
	urlRegex      = regexp.MustCompile(`^url\s*=\s*"([^"]+)"`)
)

// ParseSchemaFile reads a schema.prisma file.
// A missing file is not an error; callers check for a nil result.
func ParseSchemaFile(path string) (*Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	schema := &Schema{Path: path}
	var block string // current block type, "" between blocks

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if matches := blockRegex.FindStringSubmatch(line); matches != nil {
			block = matches[1]
			switch block {
			case "generator":
				schema.Generators = append(schema.Generators, matches[2])
			case "model":
				schema.Models = append(schema.Models, matches[2])
			}
			continue
		}

		if line == "}" {
			block = ""
			continue
		}

		// Only the datasource block carries provider and url we read
		if block != "datasource" {
			continue
		}

		if matches := providerRegex.FindStringSubmatch(line); matches != nil {
			schema.Provider = matches[1]
			continue
		}
		if matches := urlEnvRegex.FindStringSubmatch(line); matches != nil {
			schema.URLEnvVar = matches[1]
			continue
		}
		if matches := urlRegex.FindStringSubmatch(line); matches != nil {
			schema.URL = matches[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return schema, nil
}

// HasModel reports whether the schema declares a model by name
func (s *Schema) HasModel(name string) bool {
	if s == nil {
		return false
	}
	for _, m := range s.Models {
		if m == name {
			return true
		}
	}
	return false
}

// HasGenerator reports whether the schema declares a generator by name
func (s *Schema) HasGenerator(name string) bool {
	if s == nil {
		return false
	}
	for _, g := range s.Generators {
		if g == name {
			return true
		}
	}
	return false
}
