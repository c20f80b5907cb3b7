package view

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "ascii", input: "Hilltop Relay", expected: 13},
		{name: "latin accents", input: "Café Ünï", expected: 8},
		{name: "cjk", input: "東京", expected: 4},
		{name: "mixed", input: "Node 東京", expected: 9},
		{name: "combining mark", input: "e\u0301", expected: 1},
		{name: "zero width joiner", input: "a\u200db", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayWidth(tt.input))
		})
	}
}

func TestDisplayWidth_NarrowEqualsRuneCount(t *testing.T) {
	for _, s := range []string{"Base Station", "BASE", "!a1b2c3d4", "Ünïcödé narrow"} {
		assert.Equal(t, utf8.RuneCountInString(s), DisplayWidth(s), s)
	}
}

func TestDisplayWidth_WideExceedsRuneCount(t *testing.T) {
	for _, s := range []string{"東京ノード", "서울", "Relay 中継"} {
		assert.Greater(t, DisplayWidth(s), utf8.RuneCountInString(s), s)
	}
}
