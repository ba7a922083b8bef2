package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONBare(t *testing.T) {
	t.Parallel()

	in := `{"urgency":"low","advice":"rest"}`
	require.Equal(t, in, ExtractJSON(in))
}

func TestExtractJSONMarkdownFence(t *testing.T) {
	t.Parallel()

	in := "Here you go:\n```json\n{\"urgency\":\"low\"}\n```\nHope that helps!"
	require.Equal(t, `{"urgency":"low"}`, ExtractJSON(in))
}

func TestExtractJSONFenceWithoutLanguage(t *testing.T) {
	t.Parallel()

	in := "```\n[{\"name\":\"oatmeal\"}]\n```"
	require.Equal(t, `[{"name":"oatmeal"}]`, ExtractJSON(in))
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	t.Parallel()

	in := `Sure! Based on your profile: {"meals":[{"name":"salad"}]} Let me know.`
	require.Equal(t, `{"meals":[{"name":"salad"}]}`, ExtractJSON(in))
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	t.Parallel()

	in := `{"note":"use {curly} braces and a \" quote","ok":true} trailing`
	out := ExtractJSON(in)

	var parsed struct {
		Note string `json:"note"`
		OK   bool   `json:"ok"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.True(t, parsed.OK)
	require.Equal(t, `use {curly} braces and a " quote`, parsed.Note)
}

func TestExtractJSONArray(t *testing.T) {
	t.Parallel()

	in := `The list: [1, 2, 3] done`
	require.Equal(t, `[1, 2, 3]`, ExtractJSON(in))
}

func TestExtractJSONNoJSON(t *testing.T) {
	t.Parallel()

	require.Equal(t, "no structured data here", ExtractJSON("  no structured data here  "))
}

func TestExtractJSONUnterminated(t *testing.T) {
	t.Parallel()

	// A truncated object comes back as-is from the opening brace; the
	// caller's json.Unmarshal reports the real error.
	require.Equal(t, `{"a":1`, ExtractJSON(`prefix {"a":1`))
}
