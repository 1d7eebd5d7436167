package properties

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the metadata file Arduino libraries carry at their root.
const FileName = "library.properties"

// Properties holds the parsed key=value pairs of a library.properties file.
type Properties map[string]string

// Load reads the library.properties file from a library directory.
// Returns os.ErrNotExist (wrapped) if the library has no metadata file.
func Load(libDir string) (Properties, error) {
	data, err := os.ReadFile(filepath.Join(libDir, FileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse parses library.properties content. Blank lines and lines starting
// with '#' are ignored; lines without '=' are rejected.
func Parse(data []byte) (Properties, error) {
	props := make(Properties)
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: missing '=' in %q", FileName, line, text)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%s:%d: empty key", FileName, line)
		}
		props[key] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", FileName, err)
	}
	return props, nil
}

// Name returns the declared library name, or empty string.
func (p Properties) Name() string { return p["name"] }

// Version returns the declared version, or empty string.
func (p Properties) Version() string { return p["version"] }

// Architectures returns the declared target architectures, split on commas.
func (p Properties) Architectures() []string {
	raw := p["architectures"]
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	archs := make([]string, 0, len(parts))
	for _, a := range parts {
		if a = strings.TrimSpace(a); a != "" {
			archs = append(archs, a)
		}
	}
	return archs
}
