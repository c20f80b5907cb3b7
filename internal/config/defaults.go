package config

import (
	"time"
)

const (
	// DefaultMeshtasticBinary is the daemon CLI looked up on PATH
	DefaultMeshtasticBinary = "meshtastic"

	// DefaultTimeout bounds each daemon invocation
	DefaultTimeout = 60 * time.Second

	// DefaultInactiveAfter is the age after which --remove-inactive removes a node
	DefaultInactiveAfter = time.Hour

	// DefaultOutputFormat is the report format without flags
	DefaultOutputFormat = "table"

	// DefaultTableStyle is the ASCII box style
	DefaultTableStyle = "default"
)

// GetDefaultConfig returns the configuration used when no file is present.
func GetDefaultConfig() MeshnodesConfig {
	return MeshnodesConfig{
		Meshtastic: MeshtasticConfig{
			Binary:  DefaultMeshtasticBinary,
			Timeout: DefaultTimeout,
		},
		Prune: PruneConfig{
			InactiveAfter: DefaultInactiveAfter,
		},
		Output: OutputConfig{
			Format:     DefaultOutputFormat,
			TableStyle: DefaultTableStyle,
		},
	}
}
