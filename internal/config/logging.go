package config

import (
	"github.com/rshade/pagekit/internal/logging"
)

// ToLoggingConfig converts LoggingConfig to logging.Config.
//
// Level and Format are copied directly. A non-empty File selects file output;
// otherwise output goes to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
