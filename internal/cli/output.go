package cli

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputFormat represents the supported output formats of the report.
type OutputFormat string

const (
	// OutputFormatTable renders a bordered go-pretty table
	OutputFormatTable OutputFormat = "table"
	// OutputFormatPlain renders borderless aligned columns
	OutputFormatPlain OutputFormat = "plain"
	// OutputFormatJSON dumps the node table as JSON
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML dumps the node table as YAML
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatTemplate executes a user template per node
	OutputFormatTemplate OutputFormat = "template"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatTable,
	OutputFormatPlain,
	OutputFormatJSON,
	OutputFormatYAML,
	OutputFormatTemplate,
}

// ValidateOutputFormat validates that the given format string is a supported output format.
func ValidateOutputFormat(format string) error {
	if slices.Contains(ValidOutputFormats, OutputFormat(format)) {
		return nil
	}
	names := make([]string, len(ValidOutputFormats))
	for i, f := range ValidOutputFormats {
		names[i] = string(f)
	}
	return fmt.Errorf("unsupported output format: %q (valid: %s)", format, strings.Join(names, ", "))
}

// IsTabular reports whether the format renders the projected rows rather
// than the raw node table.
func (f OutputFormat) IsTabular() bool {
	return f == OutputFormatTable || f == OutputFormatPlain || f == OutputFormatTemplate
}

// DefaultTableStyle is the plain ASCII box style.
const DefaultTableStyle = "default"

var tableStyles = map[string]table.Style{
	DefaultTableStyle: table.StyleDefault,
	"rounded":         table.StyleRounded,
	"light":           table.StyleLight,
	"bold":            table.StyleBold,
	"double":          table.StyleDouble,
}

// ValidateTableStyle checks that name is a known table style.
func ValidateTableStyle(name string) error {
	if _, ok := tableStyles[name]; ok {
		return nil
	}
	names := make([]string, 0, len(tableStyles))
	for n := range tableStyles {
		names = append(names, n)
	}
	sort.Strings(names)
	return fmt.Errorf("unknown table style %q (valid: %s)", name, strings.Join(names, ", "))
}

// tableStyle returns the named style with headers left as written.
func tableStyle(name string) table.Style {
	style, ok := tableStyles[name]
	if !ok {
		style = table.StyleDefault
	}
	style.Format.Header = text.FormatDefault
	return style
}
