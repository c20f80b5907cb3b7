package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/template"

	"meshnodes/internal/nodedb"
	"meshnodes/internal/view"

	"github.com/Masterminds/sprig/v3"
	"github.com/jedib0t/go-pretty/v6/table"
	"sigs.k8s.io/yaml"
)

// RenderOptions controls how Render writes the report.
type RenderOptions struct {
	// Format selects the output format, table when empty
	Format OutputFormat
	// TableStyle names the box style of the table format
	TableStyle string
	// NoHeaders suppresses the header row of the table and plain formats
	NoHeaders bool
	// Template is the text/template source of the template format
	Template string
}

// Render writes the report to w. Tabular formats print the projected rows of
// v; json and yaml print the whole node table db.
func Render(w io.Writer, v *view.View, db *nodedb.NodeDB, opts RenderOptions) error {
	switch opts.Format {
	case OutputFormatTable, "":
		renderTable(w, v, opts)
		return nil
	case OutputFormatPlain:
		renderPlain(w, v, opts)
		return nil
	case OutputFormatJSON:
		return renderJSON(w, db)
	case OutputFormatYAML:
		return renderYAML(w, db)
	case OutputFormatTemplate:
		tmpl, err := ParseTemplate(opts.Template)
		if err != nil {
			return err
		}
		return renderTemplate(w, v, tmpl)
	default:
		return ValidateOutputFormat(string(opts.Format))
	}
}

func renderTable(w io.Writer, v *view.View, opts RenderOptions) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle(opts.TableStyle))

	if !opts.NoHeaders {
		header := make(table.Row, len(v.Columns))
		for i, c := range v.Columns {
			header[i] = c
		}
		t.AppendHeader(header)
	}
	for _, cells := range v.Rows {
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		t.AppendRow(row)
	}

	// Only longName is width constrained; the header must still fit.
	width := max(v.ColumnWidth(view.ColumnLongName), view.DisplayWidth(view.ColumnLongName))
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: width, WidthMax: width},
	})

	t.Render()
}

func renderPlain(w io.Writer, v *view.View, opts RenderOptions) {
	tw := NewPlainTableWriter(w)
	tw.SetHeaders(v.Columns)
	tw.SetNoHeaders(opts.NoHeaders)
	for _, row := range v.Rows {
		tw.AppendRow(row)
	}
	tw.Render()
}

func renderJSON(w io.Writer, db *nodedb.NodeDB) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode node table: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderYAML(w io.Writer, db *nodedb.NodeDB) error {
	data, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("failed to encode node table: %w", err)
	}
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return fmt.Errorf("failed to convert node table to YAML: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// TemplateRow is the data a report template is executed with. The embedded
// record exposes the parsed fields (.User.ShortName, .Position, .Key) and
// Cells maps each displayed column name to its rendered cell.
type TemplateRow struct {
	*nodedb.NodeRecord
	Cells map[string]string
}

// ParseTemplate parses a report template with the sprig function map.
func ParseTemplate(src string) (*template.Template, error) {
	if src == "" {
		return nil, errors.New("template output requires --template")
	}
	tmpl, err := template.New("node").Funcs(sprig.TxtFuncMap()).Option("missingkey=zero").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return tmpl, nil
}

// renderTemplate executes tmpl once per row and ends each row with a newline.
func renderTemplate(w io.Writer, v *view.View, tmpl *template.Template) error {
	var buf bytes.Buffer
	for i, rec := range v.Nodes {
		cells := make(map[string]string, len(v.Columns))
		for j, c := range v.Columns {
			cells[c] = v.Rows[i][j]
		}
		buf.Reset()
		if err := tmpl.Execute(&buf, TemplateRow{NodeRecord: rec, Cells: cells}); err != nil {
			return fmt.Errorf("failed to execute template for node %s: %w", rec.Key, err)
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
