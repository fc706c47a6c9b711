// Package kvconf loads flat key=value configuration used to parameterize
// pipeline construction (cutoff counts, bin edges, input paths). It is
// deliberately outside the sequence engine: configuration never takes part
// in the traversal protocol.
package kvconf

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	fs "github.com/ungerik/go-fs"
)

// Config holds the parsed key/value pairs. Later occurrences of a key
// overwrite earlier ones.
type Config struct {
	values map[string]string
}

// Parse reads key=value lines from r. Blank lines and lines starting with
// '#' are ignored; whitespace around keys and values is trimmed.
func Parse(r io.Reader) (*Config, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("kvconf: line %d: missing '=' in %q", lineNo, line)
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("kvconf: reading: %w", err)
	}
	return &Config{values: values}, nil
}

// LoadFile reads and parses a whole configuration file.
func LoadFile(ctx context.Context, file fs.FileReader) (*Config, error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("kvconf: reading %s: %w", file.Name(), err)
	}
	return Parse(bytes.NewReader(data))
}

// Get returns the raw value for key, or ok=false when it is absent.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// String returns the value for key, or def when absent.
func (c *Config) String(key, def string) string {
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}

// Int returns the value for key parsed as an int, or def when absent.
func (c *Config) Int(key string, def int) (int, error) {
	v, ok := c.values[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("kvconf: key %q: %w", key, err)
	}
	return n, nil
}

// Float returns the value for key parsed as a float64, or def when absent.
func (c *Config) Float(key string, def float64) (float64, error) {
	v, ok := c.values[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("kvconf: key %q: %w", key, err)
	}
	return f, nil
}

// Bool returns the value for key parsed as a bool, or def when absent.
func (c *Config) Bool(key string, def bool) (bool, error) {
	v, ok := c.values[key]
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("kvconf: key %q: %w", key, err)
	}
	return b, nil
}
