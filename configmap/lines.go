package configmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseLines reads key=value lines into a Map, the inverse of Fprint.
// Blank lines and lines starting with # are skipped. Whitespace around
// the key is trimmed; the value is taken verbatim after the first '='.
func ParseLines(r io.Reader) (Map, error) {
	m := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '=' in %q", lineNum, trimmed)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNum)
		}
		m[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return m, nil
}
