package cli

import (
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range ValidOutputFormats {
		assert.NoError(t, ValidateOutputFormat(string(f)), f)
	}

	err := ValidateOutputFormat("wide")
	assert.ErrorContains(t, err, `unsupported output format: "wide" (valid: table, plain, json, yaml, template)`)
}

func TestOutputFormat_IsTabular(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected bool
	}{
		{OutputFormatTable, true},
		{OutputFormatPlain, true},
		{OutputFormatTemplate, true},
		{OutputFormatJSON, false},
		{OutputFormatYAML, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsTabular())
		})
	}
}

func TestValidateTableStyle(t *testing.T) {
	assert.NoError(t, ValidateTableStyle("default"))
	assert.NoError(t, ValidateTableStyle("rounded"))

	err := ValidateTableStyle("fancy")
	assert.ErrorContains(t, err, `unknown table style "fancy" (valid: bold, default, double, light, rounded)`)
}

func TestTableStyle_KeepsHeaderCase(t *testing.T) {
	style := tableStyle("bold")
	assert.Equal(t, table.StyleBold.Name, style.Name)
	assert.Equal(t, text.FormatDefault, style.Format.Header)

	// Unknown names fall back to ASCII
	assert.Equal(t, table.StyleDefault.Name, tableStyle("").Name)
}
