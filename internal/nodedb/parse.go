package nodedb

import (
	"encoding/json"
	"fmt"
	"time"
)

// MalformedOutputError reports that the extracted node table is not valid JSON.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed node table in meshtastic output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// Parse decodes the text returned by Extract.
func Parse(text string) (*NodeDB, error) {
	db := &NodeDB{}
	if err := json.Unmarshal([]byte(text), db); err != nil {
		return nil, &MalformedOutputError{Err: err}
	}
	return db, nil
}

// Load runs Extract and Parse on the raw `--info` output.
func Load(output string) (*NodeDB, error) {
	text, err := Extract(output)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// Normalize derives lastHeardAgeSeconds and lastHeardDisplay for every record
// that has lastHeard. now is the single reference time for the whole run so
// relative order between records cannot shift while iterating.
func Normalize(db *NodeDB, now time.Time) {
	ref := now.Unix()
	for _, n := range db.Records() {
		if n.LastHeard == nil {
			n.LastHeardAgeSeconds = nil
			n.LastHeardDisplay = ""
			continue
		}
		age := ref - *n.LastHeard
		n.LastHeardAgeSeconds = &age
		n.LastHeardDisplay = FormatDuration(age)
	}
}
