package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyVersion    = "version"
	keyPagination = "pagination"
	keyOutput     = "output"
	keyLogging    = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion:    true,
	keyPagination: true,
	keyOutput:     true,
	keyLogging:    true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Sections absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// decodeSection decodes node over a copy of the section named by key and
// stores the result in target. Fields omitted from the overlay section keep
// their current values; the section is only replaced when decoding succeeds.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		v := target.Version
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyPagination:
		v := target.Pagination
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Pagination = v
	case keyOutput:
		v := target.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	default:
		return fmt.Errorf("unknown config section %q", key)
	}
	return nil
}
