package view

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"meshnodes/internal/nodedb"
)

// Options selects what Project shows.
type Options struct {
	// Enabled holds the names of the optional columns to show.
	Enabled map[string]bool
	// SelfNum is the daemon's own node number; that node is never shown.
	SelfNum int64
	// HasSelf is false when the daemon did not report its node number.
	HasSelf bool
}

// EnableAll returns an Enabled set for the given column names.
func EnableAll(names ...string) map[string]bool {
	enabled := make(map[string]bool, len(names))
	for _, n := range names {
		enabled[n] = true
	}
	return enabled
}

// ValidateColumns reports names that are not optional columns.
func ValidateColumns(names []string) error {
	var unknown []string
	for _, n := range names {
		if _, ok := ColumnByName(n); !ok {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	valid := make([]string, 0, len(Columns))
	for _, c := range Columns {
		valid = append(valid, c.Name)
	}
	return fmt.Errorf("unknown column(s) %s (valid: %s)", strings.Join(unknown, ", "), strings.Join(valid, ", "))
}

// View is the projected report: header names, one row of cells per node, and
// the node each row came from.
type View struct {
	Columns []string
	Rows    [][]string
	Nodes   []*nodedb.NodeRecord
}

// Project orders the records in db, drops the self node and extracts the
// cells of the selected columns.
func Project(db *nodedb.NodeDB, opts Options) *View {
	columns := SelectColumns(opts.Enabled)

	v := &View{Columns: make([]string, len(columns))}
	for i, c := range columns {
		v.Columns[i] = c.Name
	}

	for _, rec := range Order(db.Records(), opts.Enabled[ColumnHopsAway]) {
		if opts.HasSelf && rec.Num == opts.SelfNum {
			continue
		}
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.Value(rec)
		}
		v.Rows = append(v.Rows, row)
		v.Nodes = append(v.Nodes, rec)
	}
	return v
}

// SelectColumns returns longName and lastHeard followed by the enabled
// optional columns in declaration order.
func SelectColumns(enabled map[string]bool) []Column {
	columns := slices.Clone(fixedColumns)
	for _, c := range Columns {
		if enabled[c.Name] {
			columns = append(columns, c)
		}
	}
	return columns
}

// Order returns a copy of nodes sorted by age, youngest first, nodes without
// an age last. With byHops the result is then stable-sorted by hopsAway, so
// nodes at the same distance keep their age order.
func Order(nodes []*nodedb.NodeRecord, byHops bool) []*nodedb.NodeRecord {
	ordered := slices.Clone(nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ageKey(ordered[i]) < ageKey(ordered[j])
	})
	if byHops {
		sort.SliceStable(ordered, func(i, j int) bool {
			return hopsKey(ordered[i]) < hopsKey(ordered[j])
		})
	}
	return ordered
}

func ageKey(rec *nodedb.NodeRecord) float64 {
	if age, ok := rec.Age(); ok {
		return float64(age)
	}
	return math.Inf(1)
}

func hopsKey(rec *nodedb.NodeRecord) float64 {
	if rec.HopsAway == nil {
		return math.Inf(1)
	}
	return float64(*rec.HopsAway)
}

// ColumnWidth returns the widest display width among the cells of the named
// column, 0 if the column is not part of the view.
func (v *View) ColumnWidth(name string) int {
	idx := slices.Index(v.Columns, name)
	if idx < 0 {
		return 0
	}
	width := 0
	for _, row := range v.Rows {
		if w := DisplayWidth(row[idx]); w > width {
			width = w
		}
	}
	return width
}
