// Package view turns a normalized node table into ordered display rows.
package view

import (
	"strconv"

	"meshnodes/internal/nodedb"
)

// NotAvailable is rendered for any field the node did not report.
const NotAvailable = "N/A"

// Column names of the two columns that are always shown.
const (
	ColumnLongName  = "longName"
	ColumnLastHeard = "lastHeard"
	ColumnHopsAway  = "hopsAway"
)

// Column describes one report column.
type Column struct {
	// Name is the header and the name used in configuration files.
	Name string
	// Flag is the command line flag that enables the column.
	Flag string
	// Usage is the flag help text.
	Usage string

	value func(*nodedb.NodeRecord) (string, bool)
}

// Value returns the cell for rec, NotAvailable when the field is absent.
func (c Column) Value(rec *nodedb.NodeRecord) string {
	if v, ok := c.value(rec); ok {
		return v
	}
	return NotAvailable
}

var fixedColumns = []Column{
	{Name: ColumnLongName, value: func(r *nodedb.NodeRecord) (string, bool) {
		if r.User == nil {
			return "", false
		}
		return r.User.LongName, true
	}},
	{Name: ColumnLastHeard, value: func(r *nodedb.NodeRecord) (string, bool) {
		return r.LastHeardDisplay, r.LastHeardDisplay != ""
	}},
}

// Columns lists the optional columns in display order.
var Columns = []Column{
	{Name: "shortName", Flag: "shortname", Usage: "Display user.shortName column", value: userField(func(u *nodedb.User) *string { return u.ShortName })},
	{Name: "macaddr", Flag: "macaddr", Usage: "Display user.macaddr column", value: userField(func(u *nodedb.User) *string { return u.Macaddr })},
	{Name: "hwModel", Flag: "hwmodel", Usage: "Display user.hwModel column", value: userField(func(u *nodedb.User) *string { return u.HwModel })},
	{Name: "publicKey", Flag: "publickey", Usage: "Display user.publicKey column", value: userField(func(u *nodedb.User) *string { return u.PublicKey })},
	{Name: "num", Flag: "num", Usage: "Display num column", value: func(r *nodedb.NodeRecord) (string, bool) {
		return strconv.FormatInt(r.Num, 10), true
	}},
	{Name: "snr", Flag: "snr", Usage: "Display snr column", value: func(r *nodedb.NodeRecord) (string, bool) {
		return formatFloat(r.SNR)
	}},
	{Name: "batteryLevel", Flag: "batteryLevel", Usage: "Display deviceMetrics.batteryLevel column", value: metricsInt(func(m *nodedb.DeviceMetrics) *int64 { return m.BatteryLevel })},
	{Name: "voltage", Flag: "voltage", Usage: "Display deviceMetrics.voltage column", value: metricsFloat(func(m *nodedb.DeviceMetrics) *float64 { return m.Voltage })},
	{Name: "channelUtilization", Flag: "channelUtilization", Usage: "Display deviceMetrics.channelUtilization column", value: metricsFloat(func(m *nodedb.DeviceMetrics) *float64 { return m.ChannelUtilization })},
	{Name: "airUtilTx", Flag: "airUtilTx", Usage: "Display deviceMetrics.airUtilTx column", value: metricsFloat(func(m *nodedb.DeviceMetrics) *float64 { return m.AirUtilTx })},
	{Name: "uptimeSeconds", Flag: "uptimeSeconds", Usage: "Display deviceMetrics.uptimeSeconds column", value: metricsInt(func(m *nodedb.DeviceMetrics) *int64 { return m.UptimeSeconds })},
	{Name: ColumnHopsAway, Flag: "hopsAway", Usage: "Display hopsAway column and sort by it", value: func(r *nodedb.NodeRecord) (string, bool) {
		return formatInt(r.HopsAway)
	}},
	{Name: "isFavorite", Flag: "isFavorite", Usage: "Display isFavorite column", value: func(r *nodedb.NodeRecord) (string, bool) {
		if r.IsFavorite == nil {
			return "", false
		}
		return strconv.FormatBool(*r.IsFavorite), true
	}},
	{Name: "latitude", Flag: "latitude", Usage: "Display position.latitude column", value: positionFloat(func(p *nodedb.Position) *float64 { return p.Latitude })},
	{Name: "longitude", Flag: "longitude", Usage: "Display position.longitude column", value: positionFloat(func(p *nodedb.Position) *float64 { return p.Longitude })},
	{Name: "altitude", Flag: "altitude", Usage: "Display position.altitude column", value: positionInt(func(p *nodedb.Position) *int64 { return p.Altitude })},
	{Name: "latitudeI", Flag: "positionLatitudeI", Usage: "Display position.latitudeI column", value: positionInt(func(p *nodedb.Position) *int64 { return p.LatitudeI })},
	{Name: "longitudeI", Flag: "positionLongitudeI", Usage: "Display position.longitudeI column", value: positionInt(func(p *nodedb.Position) *int64 { return p.LongitudeI })},
	{Name: "time", Flag: "positionTime", Usage: "Display position.time column", value: positionInt(func(p *nodedb.Position) *int64 { return p.Time })},
	{Name: "locationSource", Flag: "locationSource", Usage: "Display position.locationSource column", value: func(r *nodedb.NodeRecord) (string, bool) {
		if r.Position == nil || r.Position.LocationSource == nil {
			return "", false
		}
		return *r.Position.LocationSource, true
	}},
}

// ColumnByName looks up an optional column.
func ColumnByName(name string) (Column, bool) {
	for _, c := range Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func userField(get func(*nodedb.User) *string) func(*nodedb.NodeRecord) (string, bool) {
	return func(r *nodedb.NodeRecord) (string, bool) {
		if r.User == nil {
			return "", false
		}
		if v := get(r.User); v != nil {
			return *v, true
		}
		return "", false
	}
}

func metricsInt(get func(*nodedb.DeviceMetrics) *int64) func(*nodedb.NodeRecord) (string, bool) {
	return func(r *nodedb.NodeRecord) (string, bool) {
		if r.DeviceMetrics == nil {
			return "", false
		}
		return formatInt(get(r.DeviceMetrics))
	}
}

func metricsFloat(get func(*nodedb.DeviceMetrics) *float64) func(*nodedb.NodeRecord) (string, bool) {
	return func(r *nodedb.NodeRecord) (string, bool) {
		if r.DeviceMetrics == nil {
			return "", false
		}
		return formatFloat(get(r.DeviceMetrics))
	}
}

func positionInt(get func(*nodedb.Position) *int64) func(*nodedb.NodeRecord) (string, bool) {
	return func(r *nodedb.NodeRecord) (string, bool) {
		if r.Position == nil {
			return "", false
		}
		return formatInt(get(r.Position))
	}
}

func positionFloat(get func(*nodedb.Position) *float64) func(*nodedb.NodeRecord) (string, bool) {
	return func(r *nodedb.NodeRecord) (string, bool) {
		if r.Position == nil {
			return "", false
		}
		return formatFloat(get(r.Position))
	}
}

func formatInt(v *int64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatInt(*v, 10), true
}

func formatFloat(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatFloat(*v, 'f', -1, 64), true
}
