// Package cli renders the node report and holds the small helpers the
// meshnodes commands share.
//
// # Output Formats
//
// Render writes a projected view in one of five formats:
//   - table: a go-pretty table, ASCII by default, other box styles by name
//   - plain: kubectl-style aligned columns without borders
//   - json: the whole node table, derived fields included, indented with two spaces
//   - yaml: the same document as YAML
//   - template: a text/template with sprig functions, executed once per row
//
// Column alignment in the table and plain formats counts terminal cells, not
// runes, so names written in wide scripts stay aligned.
//
// # Progress
//
// StartSpinner draws a spinner on stderr while the daemon is queried. It is a
// no-op when stderr is not a terminal or quiet mode is on.
package cli
