// Package ingest loads the items pagekit paginates from text, JSON and YAML
// sources.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies how a source encodes its items.
type Format string

// Supported source formats.
const (
	FormatAuto  Format = "auto"
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// maxLineBytes bounds a single line read from a text source.
const maxLineBytes = 1024 * 1024

// ErrUnknownFormat is returned for a format name ParseFormat does not recognize.
var ErrUnknownFormat = errors.New("unknown input format")

// ParseFormat parses a --format flag value. Empty means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatLines, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatLines, nil
	default:
		return "", fmt.Errorf("%w: %q (use auto, lines, json or yaml)", ErrUnknownFormat, s)
	}
}

// DetectFormat picks a format from a file extension; unknown extensions are
// read as lines.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatLines
	}
}

// Decode reads every item from r. JSON and YAML sources must hold a top-level
// array; string elements are used verbatim and other elements are rendered
// as compact JSON. FormatAuto is treated as FormatLines.
func Decode(r io.Reader, format Format) ([]string, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatLines, FormatAuto, "":
		return decodeLines(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	var items []string
	for scanner.Scan() {
		items = append(items, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return items, nil
}

func decodeJSON(r io.Reader) ([]string, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding JSON array: %w", err)
	}

	items := make([]string, 0, len(raw))
	for _, elem := range raw {
		if trimmed := bytes.TrimSpace(elem); len(trimmed) > 0 && trimmed[0] == '"' {
			var s string
			if err := json.Unmarshal(trimmed, &s); err != nil {
				return nil, fmt.Errorf("decoding JSON string: %w", err)
			}
			items = append(items, s)
			continue
		}
		var v any
		if err := json.Unmarshal(elem, &v); err != nil {
			return nil, fmt.Errorf("decoding JSON element: %w", err)
		}
		compact, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding JSON element: %w", err)
		}
		items = append(items, string(compact))
	}
	return items, nil
}

func decodeYAML(r io.Reader) ([]string, error) {
	var raw []any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding YAML sequence: %w", err)
	}

	items := make([]string, 0, len(raw))
	for _, elem := range raw {
		if s, ok := elem.(string); ok {
			items = append(items, s)
			continue
		}
		compact, err := json.Marshal(elem)
		if err != nil {
			return nil, fmt.Errorf("encoding YAML element: %w", err)
		}
		items = append(items, string(compact))
	}
	return items, nil
}
