package envutil

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidEnvFile is returned when a line of an env file cannot be parsed.
var ErrInvalidEnvFile = errors.New("invalid env file")

// LoadFile loads environment variables from a file.
//
// Supported formats:
//   - KEY=VALUE
//   - export KEY=VALUE
//   - KEY="VALUE with spaces"
//   - # comments
//
// An empty path or a missing file yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	out := make(map[string]string)
	if path == "" {
		return out, nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return out, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading env file %q: %w", path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w %q at line %d: %s", ErrInvalidEnvFile, path, lineNum, line)
		}

		out[key] = unquote(strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %q: %w", path, err)
	}

	return out, nil
}

func unquote(value string) string {
	if len(value) < 2 { //nolint:gomnd // opening and closing quote
		return value
	}

	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}

	return value
}
