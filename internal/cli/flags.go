package cli

import (
	"meshnodes/internal/config"

	"github.com/spf13/cobra"
)

// CommandFlags holds the output and diagnostics flag values of the report command.
type CommandFlags struct {
	// OutputFormat specifies the desired output format (table, plain, json, yaml, template)
	OutputFormat string
	// JSON is the legacy spelling of --output json
	JSON bool
	// Template is the text/template used by the template format
	Template string
	// TableStyle names the box style of the table format
	TableStyle string
	// NoHeaders suppresses the header row in table output
	NoHeaders bool
	// Quiet suppresses progress indicators and non-essential output
	Quiet bool
	// Debug enables verbose logging of daemon invocations
	Debug bool
	// ConfigPath specifies a custom configuration directory path
	ConfigPath string
}

// RegisterCommonFlags registers the output and diagnostics flags on cmd.
//
// The registered flags are:
//   - --output/-o: Output format, default taken from the configuration
//   - --json: Same as --output json
//   - --template: Template for --output template
//   - --table-style: Box style of the table format
//   - --no-headers: Suppress header row in table output
//   - --quiet/-q: Suppress non-essential output
//   - --debug: Enable debug logging
//   - --config-path: Configuration directory
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "", "Output format (table, plain, json, yaml, template)")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the node table as JSON (same as --output json)")
	cmd.Flags().StringVar(&flags.Template, "template", "", "Go template executed per node with --output template")
	cmd.Flags().StringVar(&flags.TableStyle, "table-style", "", "Table style (default, rounded, light, bold, double)")
	cmd.Flags().BoolVar(&flags.NoHeaders, "no-headers", false, "Suppress header row in table output")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&flags.ConfigPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
}

// ToRenderOptions merges the flags over the configured output defaults and
// validates the result.
func (f *CommandFlags) ToRenderOptions(defaults config.OutputConfig) (RenderOptions, error) {
	format := defaults.Format
	if f.OutputFormat != "" {
		format = f.OutputFormat
	}
	if f.JSON {
		format = string(OutputFormatJSON)
	}
	if format == "" {
		format = string(OutputFormatTable)
	}
	if err := ValidateOutputFormat(format); err != nil {
		return RenderOptions{}, err
	}

	style := defaults.TableStyle
	if f.TableStyle != "" {
		style = f.TableStyle
	}
	if style == "" {
		style = DefaultTableStyle
	}
	if err := ValidateTableStyle(style); err != nil {
		return RenderOptions{}, err
	}

	tmpl := defaults.Template
	if f.Template != "" {
		tmpl = f.Template
	}
	if OutputFormat(format) == OutputFormatTemplate {
		if _, err := ParseTemplate(tmpl); err != nil {
			return RenderOptions{}, err
		}
	}

	return RenderOptions{
		Format:     OutputFormat(format),
		TableStyle: style,
		NoHeaders:  f.NoHeaders,
		Template:   tmpl,
	}, nil
}
