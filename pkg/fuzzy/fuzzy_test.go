package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshteinDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"banana", "bananna", 1},
		{"Running", "running", 0}, // case-insensitive
		{"flaw", "lawn", 2},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, LevenshteinDistance(tc.s1, tc.s2),
			"distance(%q, %q)", tc.s1, tc.s2)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		query, text string
		want        bool
	}{
		{"banana", "banana", true},
		{"bananna", "banana", true},        // one typo
		{"run", "morning run", true},       // substring
		{"swim", "swimming", true},         // prefix of a word
		{"chickn", "chicken salad", true},  // typo in one word
		{"yoga", "chicken salad", false},
		{"zz", "banana", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Match(tc.query, tc.text),
			"match(%q, %q)", tc.query, tc.text)
	}
}

func TestMatchThreshold(t *testing.T) {
	t.Parallel()

	require.True(t, MatchThreshold("banana", "banana bread", 0))
	require.False(t, MatchThreshold("cycling", "running", 2))
	require.True(t, MatchThreshold("cycling", "cyclin", 1))
}
