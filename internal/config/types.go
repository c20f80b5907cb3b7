package config

import "time"

// MeshnodesConfig is the top-level configuration structure for meshnodes.
type MeshnodesConfig struct {
	LogLevel   string           `yaml:"logLevel,omitempty"` // debug, info, warn or error (default: warn)
	Meshtastic MeshtasticConfig `yaml:"meshtastic"`
	Prune      PruneConfig      `yaml:"prune"`
	Output     OutputConfig     `yaml:"output"`
	Update     UpdateConfig     `yaml:"update"`
}

// MeshtasticConfig describes how the daemon CLI is invoked.
type MeshtasticConfig struct {
	Binary  string        `yaml:"binary,omitempty"`  // Executable name or path (default: meshtastic)
	Args    string        `yaml:"args,omitempty"`    // Extra arguments, split on whitespace
	Timeout time.Duration `yaml:"timeout,omitempty"` // Bound on each invocation (default: 60s)
}

// PruneConfig controls --remove-inactive.
type PruneConfig struct {
	InactiveAfter time.Duration `yaml:"inactiveAfter,omitempty"` // Age after which a node is inactive (default: 1h)
}

// OutputConfig holds the report defaults.
type OutputConfig struct {
	Format     string   `yaml:"format,omitempty"`     // table, plain, json, yaml or template (default: table)
	TableStyle string   `yaml:"tableStyle,omitempty"` // default, rounded, light, bold or double
	Template   string   `yaml:"template,omitempty"`   // Used with format: template
	Columns    []string `yaml:"columns,omitempty"`    // Optional columns enabled without flags
}

// UpdateConfig configures self-update.
type UpdateConfig struct {
	Repository string `yaml:"repository,omitempty"` // GitHub owner/name releases are fetched from
}
