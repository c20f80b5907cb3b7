package nodedb

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	// StartMarker identifies the line that opens the node table.
	StartMarker = "Nodes in mesh"
	// EndMarker identifies the first line after the node table.
	EndMarker = "Preferences"
)

// ErrMarkersNotFound is returned when the info output lacks either marker.
var ErrMarkersNotFound = errors.New("node table not found in meshtastic output: missing \"" +
	StartMarker + "\" or \"" + EndMarker + "\" section")

var myNodeNumPattern = regexp.MustCompile(`"myNodeNum":\s*(\d+)`)

// Extract isolates the node table from the full `--info` output.
//
// Blank lines are dropped first. The table runs from the last line containing
// StartMarker before the end marker up to the line preceding the first line
// containing EndMarker. The opening line carries the marker text in front of
// the brace, so it is replaced with a bare "{".
func Extract(output string) (string, error) {
	lines := make([]string, 0, 64)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	start, end := -1, -1
	for i, line := range lines {
		if strings.Contains(line, StartMarker) {
			start = i
		}
		if strings.Contains(line, EndMarker) {
			end = i - 1
			break
		}
	}
	if start < 0 || end < 0 || end < start {
		return "", ErrMarkersNotFound
	}

	table := make([]string, 0, end-start+1)
	table = append(table, "{")
	table = append(table, lines[start+1:end+1]...)
	return strings.Join(table, "\n"), nil
}

// MyNodeNum returns the node number the daemon reports for itself.
func MyNodeNum(output string) (int64, bool) {
	m := myNodeNumPattern.FindStringSubmatch(output)
	if m == nil {
		return 0, false
	}
	num, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
