package format

import (
	"bytes"
	"fmt"
	"strings"
)

// Format identifies a document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	INI  Format = "ini"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "ini":
		return INI, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// Detect sniffs document content and reports whether it is JSON or
// YAML. Detection is by content, not file extension: a document whose
// first significant byte opens a JSON object or array is JSON,
// everything else (including empty input) is YAML, which is a superset
// of JSON for our purposes. TOML and INI are never auto-detected; they
// must be named explicitly.
func Detect(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}
	return YAML
}
