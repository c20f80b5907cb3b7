// Package config provides configuration management for meshnodes.
//
// Configuration is read from config.yaml in a single directory. The default
// directory is ~/.config/meshnodes; the --config-path flag selects another.
// A missing file is not an error: every setting has a default, and command
// line flags override whatever the file says.
//
// # Example
//
//	logLevel: info
//	meshtastic:
//	  binary: meshtastic
//	  args: --host 192.168.1.20
//	  timeout: 90s
//	prune:
//	  inactiveAfter: 2h
//	output:
//	  format: table
//	  tableStyle: rounded
//	  columns: [shortName, hopsAway, batteryLevel]
//	update:
//	  repository: example/meshnodes
package config
