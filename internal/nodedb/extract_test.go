package nodedb

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readInfo(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/info.txt")
	require.NoError(t, err)
	return string(data)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
		wantErr  bool
	}{
		{
			name:     "marker line replaced and end marker excluded",
			output:   "header\nNodes in mesh: {\n  \"a\": {\"num\": 1}\n}\nPreferences: {}\n",
			expected: "{\n  \"a\": {\"num\": 1}\n}",
		},
		{
			name:     "blank lines dropped before scanning",
			output:   "Nodes in mesh: {\n\n  \"a\": {\"num\": 1}\n   \n}\n\nPreferences: {}",
			expected: "{\n  \"a\": {\"num\": 1}\n}",
		},
		{
			name:     "windows line endings",
			output:   "Nodes in mesh: {\r\n  \"a\": {}\r\n}\r\nPreferences:\r\n",
			expected: "{\n  \"a\": {}\n}",
		},
		{
			name:     "last start marker before end wins",
			output:   "Nodes in mesh: stale\nNodes in mesh: {\n}\nPreferences:",
			expected: "{\n}",
		},
		{
			name:    "missing start marker",
			output:  "Owner: x\n{\n}\nPreferences: {}",
			wantErr: true,
		},
		{
			name:    "missing end marker",
			output:  "Nodes in mesh: {\n}\n",
			wantErr: true,
		},
		{
			name:    "end marker before start marker",
			output:  "Preferences: {}\nNodes in mesh: {\n}",
			wantErr: true,
		},
		{
			name:    "both markers on one line",
			output:  "Nodes in mesh: Preferences",
			wantErr: true,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.output)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMarkersNotFound)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtract_KeepsEveryLineBetweenMarkers(t *testing.T) {
	body := []string{`  "!1": {`, `    "num": 1`, `  },`, `  "!2": {`, `    "num": 2`, `  }`, `}`}
	output := "Owner: me\nNodes in mesh: {\n" + strings.Join(body, "\n") + "\nPreferences: {}\n"

	got, err := Extract(output)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "{"))
	assert.Equal(t, append([]string{"{"}, body...), strings.Split(got, "\n"))
}

func TestExtract_RealOutput(t *testing.T) {
	got, err := Extract(readInfo(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "{\n"))
	assert.NotContains(t, got, StartMarker)
	assert.NotContains(t, got, EndMarker)
	assert.True(t, strings.HasSuffix(got, "}"))
}

func TestMyNodeNum(t *testing.T) {
	num, ok := MyNodeNum(readInfo(t))
	assert.True(t, ok)
	assert.Equal(t, int64(2712847316), num)

	num, ok = MyNodeNum(`My info: { "myNodeNum":42 }`)
	assert.True(t, ok)
	assert.Equal(t, int64(42), num)

	_, ok = MyNodeNum("Owner: nobody")
	assert.False(t, ok)
}
