package view

import (
	"testing"
	"time"

	"meshnodes/internal/nodedb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const now = 1_700_000_000

func loadDB(t *testing.T, text string) *nodedb.NodeDB {
	t.Helper()
	db, err := nodedb.Parse(text)
	require.NoError(t, err)
	nodedb.Normalize(db, time.Unix(now, 0))
	return db
}

func names(v *View) []string {
	out := make([]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		out = append(out, row[0])
	}
	return out
}

func TestProject_DefaultOrderByAge(t *testing.T) {
	db := loadDB(t, `{
		"!c": {"num": 3, "user": {"id": "!c", "longName": "Never"}},
		"!b": {"num": 2, "user": {"id": "!b", "longName": "Age200"}, "lastHeard": 1699999800},
		"!a": {"num": 1, "user": {"id": "!a", "longName": "Age100"}, "lastHeard": 1699999900}
	}`)

	v := Project(db, Options{})

	assert.Equal(t, []string{"longName", "lastHeard"}, v.Columns)
	assert.Equal(t, []string{"Age100", "Age200", "Never"}, names(v))
	assert.Equal(t, [][]string{
		{"Age100", "1m 40s"},
		{"Age200", "3m 20s"},
		{"Never", NotAvailable},
	}, v.Rows)
}

func TestProject_HopsAwayIsStableSecondarySort(t *testing.T) {
	db := loadDB(t, `{
		"!a": {"num": 1, "user": {"id": "!a", "longName": "A"}, "lastHeard": 1699999900, "hopsAway": 2},
		"!b": {"num": 2, "user": {"id": "!b", "longName": "B"}, "lastHeard": 1699999950, "hopsAway": 2},
		"!c": {"num": 3, "user": {"id": "!c", "longName": "C"}, "lastHeard": 1699999990, "hopsAway": 1},
		"!d": {"num": 4, "user": {"id": "!d", "longName": "D"}, "lastHeard": 1699999999}
	}`)

	v := Project(db, Options{Enabled: EnableAll(ColumnHopsAway)})

	assert.Equal(t, []string{"longName", "lastHeard", "hopsAway"}, v.Columns)
	assert.Equal(t, []string{"C", "B", "A", "D"}, names(v))
	assert.Equal(t, NotAvailable, v.Rows[3][2])
}

func TestProject_HopsIgnoredUnlessEnabled(t *testing.T) {
	db := loadDB(t, `{
		"!a": {"num": 1, "user": {"id": "!a", "longName": "A"}, "lastHeard": 1699999900, "hopsAway": 0},
		"!c": {"num": 3, "user": {"id": "!c", "longName": "C"}, "lastHeard": 1699999990, "hopsAway": 5}
	}`)

	v := Project(db, Options{})
	assert.Equal(t, []string{"C", "A"}, names(v))
}

func TestProject_ExcludesSelfNode(t *testing.T) {
	db := loadDB(t, `{
		"!me":    {"num": 42, "user": {"id": "!me", "longName": "Me"}, "lastHeard": 1700000000},
		"!other": {"num": 7, "user": {"id": "!other", "longName": "Other"}, "lastHeard": 1699999000}
	}`)

	v := Project(db, Options{SelfNum: 42, HasSelf: true, Enabled: EnableAll(ColumnHopsAway, "num")})
	assert.Equal(t, []string{"Other"}, names(v))
	require.Len(t, v.Nodes, 1)
	assert.Equal(t, "!other", v.Nodes[0].Key)

	v = Project(db, Options{})
	assert.Equal(t, []string{"Me", "Other"}, names(v), "without a reported self number nothing is excluded")
}

func TestProject_ColumnOrderFollowsDeclaration(t *testing.T) {
	db := loadDB(t, `{"!a": {"num": 1, "user": {"id": "!a", "longName": "A"}}}`)

	v := Project(db, Options{Enabled: EnableAll("locationSource", "snr", "shortName", "uptimeSeconds")})

	assert.Equal(t, []string{"longName", "lastHeard", "shortName", "snr", "uptimeSeconds", "locationSource"}, v.Columns)
}

func TestProject_MissingValuesRenderNA(t *testing.T) {
	db := loadDB(t, `{"!a": {"num": 1}}`)

	all := make([]string, 0, len(Columns))
	for _, c := range Columns {
		all = append(all, c.Name)
	}
	v := Project(db, Options{Enabled: EnableAll(all...)})

	require.Len(t, v.Rows, 1)
	require.Len(t, v.Rows[0], 2+len(Columns))
	for i, cell := range v.Rows[0] {
		if v.Columns[i] == "num" {
			assert.Equal(t, "1", cell)
			continue
		}
		assert.Equal(t, NotAvailable, cell, "column %s", v.Columns[i])
	}
}

func TestProject_CellFormatting(t *testing.T) {
	db := loadDB(t, `{"!a": {
		"num": 2712847316,
		"user": {"id": "!a", "longName": "A", "shortName": "AA", "macaddr": "48:ca", "hwModel": "HELTEC_V3", "publicKey": "pk"},
		"snr": -3.25, "hopsAway": 0, "isFavorite": true,
		"deviceMetrics": {"batteryLevel": 101, "voltage": 4.2, "channelUtilization": 6.5, "airUtilTx": 1.25, "uptimeSeconds": 3600},
		"position": {"latitude": 52.5, "longitude": 4.25, "altitude": -2, "latitudeI": 525000000, "longitudeI": 42500000, "time": 1700000000, "locationSource": "LOC_MANUAL"}
	}}`)

	all := make([]string, 0, len(Columns))
	for _, c := range Columns {
		all = append(all, c.Name)
	}
	v := Project(db, Options{Enabled: EnableAll(all...)})

	expected := []string{
		"A", NotAvailable, "AA", "48:ca", "HELTEC_V3", "pk", "2712847316", "-3.25",
		"101", "4.2", "6.5", "1.25", "3600", "0", "true",
		"52.5", "4.25", "-2", "525000000", "42500000", "1700000000", "LOC_MANUAL",
	}
	assert.Equal(t, expected, v.Rows[0])
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	db := loadDB(t, `{
		"!old": {"num": 1, "lastHeard": 1600000000},
		"!new": {"num": 2, "lastHeard": 1699999999}
	}`)

	records := db.Records()
	ordered := Order(records, false)

	assert.Equal(t, "!new", ordered[0].Key)
	assert.Equal(t, "!old", records[0].Key)
}

func TestValidateColumns(t *testing.T) {
	assert.NoError(t, ValidateColumns([]string{"snr", "hopsAway"}))
	assert.NoError(t, ValidateColumns(nil))

	err := ValidateColumns([]string{"snr", "colour", "longName"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown column(s) colour, longName")
}

func TestColumnFlagsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Columns {
		assert.False(t, seen[c.Flag], "duplicate flag %s", c.Flag)
		seen[c.Flag] = true
		assert.NotEmpty(t, c.Usage)
	}
	assert.Len(t, Columns, 20)
}

func TestView_ColumnWidth(t *testing.T) {
	v := &View{
		Columns: []string{"longName", "lastHeard"},
		Rows:    [][]string{{"abc", "1s"}, {"東京ノード", "2s"}},
	}

	assert.Equal(t, 10, v.ColumnWidth("longName"))
	assert.Equal(t, 2, v.ColumnWidth("lastHeard"))
	assert.Zero(t, v.ColumnWidth("snr"))
}
