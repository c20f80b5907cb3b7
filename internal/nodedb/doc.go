// Package nodedb recovers the node database from the console output of
// `meshtastic --info` and normalizes it for reporting.
//
// The daemon prints its node table as an almost-JSON object wedged between
// human oriented sections:
//
//	Nodes in mesh: {"!a1b2c3d4": {
//	  "num": 2712847316,
//	  ...
//	}
//	Preferences: {...}
//
// Extract isolates and repairs that object, Parse decodes it into a NodeDB
// that keeps the daemon's key order, and Normalize derives the age fields
// (lastHeardAgeSeconds and lastHeardDisplay) from a single reference time.
package nodedb
