package nodedb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Members holds object members that no struct field claims, in the order the
// daemon emitted them.
type Members = orderedmap.OrderedMap[string, json.RawMessage]

// User is the identity block of a node.
type User struct {
	ID        string  `json:"id"`
	LongName  string  `json:"longName"`
	ShortName *string `json:"shortName,omitempty"`
	Macaddr   *string `json:"macaddr,omitempty"`
	HwModel   *string `json:"hwModel,omitempty"`
	PublicKey *string `json:"publicKey,omitempty"`

	// Extra holds members the daemon emitted that are not modelled above.
	Extra *Members `json:"-"`
}

// DeviceMetrics is the telemetry block of a node. Every field is optional.
type DeviceMetrics struct {
	BatteryLevel       *int64   `json:"batteryLevel,omitempty"`
	Voltage            *float64 `json:"voltage,omitempty"`
	ChannelUtilization *float64 `json:"channelUtilization,omitempty"`
	AirUtilTx          *float64 `json:"airUtilTx,omitempty"`
	UptimeSeconds      *int64   `json:"uptimeSeconds,omitempty"`

	Extra *Members `json:"-"`
}

// Position is the last reported location of a node. Every field is optional.
type Position struct {
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Altitude       *int64   `json:"altitude,omitempty"`
	LatitudeI      *int64   `json:"latitudeI,omitempty"`
	LongitudeI     *int64   `json:"longitudeI,omitempty"`
	Time           *int64   `json:"time,omitempty"`
	LocationSource *string  `json:"locationSource,omitempty"`

	Extra *Members `json:"-"`
}

// NodeRecord is one entry of the daemon's node database.
type NodeRecord struct {
	// Key is the identifier the record was stored under, e.g. "!a1b2c3d4".
	Key string `json:"-"`

	User          *User          `json:"user,omitempty"`
	Num           int64          `json:"num"`
	LastHeard     *int64         `json:"lastHeard,omitempty"`
	SNR           *float64       `json:"snr,omitempty"`
	HopsAway      *int64         `json:"hopsAway,omitempty"`
	IsFavorite    *bool          `json:"isFavorite,omitempty"`
	DeviceMetrics *DeviceMetrics `json:"deviceMetrics,omitempty"`
	Position      *Position      `json:"position,omitempty"`

	// Derived by Normalize; never reported by the daemon.
	LastHeardAgeSeconds *int64 `json:"lastHeardAgeSeconds,omitempty"`
	LastHeardDisplay    string `json:"lastHeardDisplay,omitempty"`

	Extra *Members `json:"-"`
}

// Age returns the age in seconds computed by Normalize.
func (r *NodeRecord) Age() (int64, bool) {
	if r.LastHeardAgeSeconds == nil {
		return 0, false
	}
	return *r.LastHeardAgeSeconds, true
}

// UserID returns user.id, or "" when the record has no user block.
func (r *NodeRecord) UserID() string {
	if r.User == nil {
		return ""
	}
	return r.User.ID
}

// LongName returns user.longName, or "" when the record has no user block.
func (r *NodeRecord) LongName() string {
	if r.User == nil {
		return ""
	}
	return r.User.LongName
}

// Favorite reports whether the daemon marked the node with isFavorite at all.
// Presence is what counts, not the value.
func (r *NodeRecord) Favorite() bool {
	return r.IsFavorite != nil
}

type (
	userFields          User
	deviceMetricsFields DeviceMetrics
	positionFields      Position
	nodeRecordFields    NodeRecord
)

func (u *User) UnmarshalJSON(data []byte) error {
	extra, err := decodeWithExtra(data, (*userFields)(u))
	u.Extra = extra
	return err
}

func (u User) MarshalJSON() ([]byte, error) {
	return encodeWithExtra((*userFields)(&u), u.Extra)
}

func (m *DeviceMetrics) UnmarshalJSON(data []byte) error {
	extra, err := decodeWithExtra(data, (*deviceMetricsFields)(m))
	m.Extra = extra
	return err
}

func (m DeviceMetrics) MarshalJSON() ([]byte, error) {
	return encodeWithExtra((*deviceMetricsFields)(&m), m.Extra)
}

func (p *Position) UnmarshalJSON(data []byte) error {
	extra, err := decodeWithExtra(data, (*positionFields)(p))
	p.Extra = extra
	return err
}

func (p Position) MarshalJSON() ([]byte, error) {
	return encodeWithExtra((*positionFields)(&p), p.Extra)
}

func (r *NodeRecord) UnmarshalJSON(data []byte) error {
	extra, err := decodeWithExtra(data, (*nodeRecordFields)(r))
	r.Extra = extra
	return err
}

func (r NodeRecord) MarshalJSON() ([]byte, error) {
	return encodeWithExtra((*nodeRecordFields)(&r), r.Extra)
}

// decodeWithExtra decodes data into v and returns the object members that no
// json tag of v claims.
func decodeWithExtra(data []byte, v any) (*Members, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	members := orderedmap.New[string, json.RawMessage]()
	if err := members.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	for _, name := range jsonNames(reflect.TypeOf(v).Elem()) {
		members.Delete(name)
	}
	if members.Len() == 0 {
		return nil, nil
	}
	return members, nil
}

// encodeWithExtra marshals v and appends extra after the modelled fields.
// Modelled fields win on a name clash.
func encodeWithExtra(v any, extra *Members) ([]byte, error) {
	known, err := json.Marshal(v)
	if err != nil || extra == nil || extra.Len() == 0 {
		return known, err
	}

	claimed := make(map[string]bool)
	for _, name := range jsonNames(reflect.TypeOf(v).Elem()) {
		claimed[name] = true
	}

	var buf bytes.Buffer
	buf.Write(known[:len(known)-1])
	empty := len(known) == 2
	for pair := extra.Oldest(); pair != nil; pair = pair.Next() {
		if claimed[pair.Key] {
			continue
		}
		name, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		if !empty {
			buf.WriteByte(',')
		}
		empty = false
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// NodeDB is the node table in the order the daemon printed it.
type NodeDB struct {
	nodes *orderedmap.OrderedMap[string, *NodeRecord]
}

// Len returns the number of records.
func (db *NodeDB) Len() int {
	if db.nodes == nil {
		return 0
	}
	return db.nodes.Len()
}

// Get returns the record stored under key.
func (db *NodeDB) Get(key string) (*NodeRecord, bool) {
	if db.nodes == nil {
		return nil, false
	}
	return db.nodes.Get(key)
}

// Records returns the records in table order.
func (db *NodeDB) Records() []*NodeRecord {
	records := make([]*NodeRecord, 0, db.Len())
	if db.nodes == nil {
		return records
	}
	for pair := db.nodes.Oldest(); pair != nil; pair = pair.Next() {
		records = append(records, pair.Value)
	}
	return records
}

// Filter keeps only the records for which keep returns true, preserving order.
func (db *NodeDB) Filter(keep func(*NodeRecord) bool) {
	for _, rec := range db.Records() {
		if !keep(rec) {
			db.nodes.Delete(rec.Key)
		}
	}
}

// UnmarshalJSON decodes a JSON object of key -> record, keeping member order.
// A repeated key replaces the earlier record in place.
func (db *NodeDB) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("node table must be a JSON object, got %.20q", trimmed)
	}

	nodes := orderedmap.New[string, *NodeRecord]()
	if err := nodes.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	for pair := nodes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			pair.Value = &NodeRecord{}
		}
		pair.Value.Key = pair.Key
	}
	db.nodes = nodes
	return nil
}

// MarshalJSON encodes the table as a JSON object in record order.
func (db NodeDB) MarshalJSON() ([]byte, error) {
	if db.nodes == nil {
		return []byte("{}"), nil
	}
	return db.nodes.MarshalJSON()
}
