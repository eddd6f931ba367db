package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayloadShape(t *testing.T) {
	payload, err := BuildPayload(NewCaptureRequest("hello", false))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"blocks":[{"type":"text","markdown":"hello"}],"position":{"position":"end","date":"today"}}`,
		string(payload))
}

func TestBuildPayloadRoundTrip(t *testing.T) {
	for name, text := range map[string]string{
		"quotes":        `she said "run jot"`,
		"backslashes":   `C:\notes\today.md`,
		"newlines":      "line one\nline two\n",
		"tabs and cr":   "a\tb\r\nc",
		"control bytes": "bell\x07 and null-ish \x01",
		"non-ascii":     "café ☕ 日本語",
		"json-breaking": `{"blocks": []}`,
		"markdown":      "# heading\n- [ ] item",
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := BuildPayload(NewCaptureRequest(text, false))
			require.NoError(t, err)
			var decoded Payload
			require.NoError(t, json.Unmarshal(raw, &decoded))
			require.Len(t, decoded.Blocks, 1)
			assert.Equal(t, text, decoded.Blocks[0].Markdown)
			assert.Equal(t, blockTypeText, decoded.Blocks[0].Type)
			assert.Equal(t, positionEnd, decoded.Position.Position)
			assert.Equal(t, dateToday, decoded.Position.Date)
		})
	}
}

func TestBuildPayloadCodeWrapped(t *testing.T) {
	raw, err := BuildPayload(NewCaptureRequest("a\nb", true))
	require.NoError(t, err)
	var decoded Payload
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Blocks, 1)
	assert.Equal(t, "```\na\nb\n```", decoded.Blocks[0].Markdown)
}
