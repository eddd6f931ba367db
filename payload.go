package main

import (
	"encoding/json"
	"fmt"
)

const (
	blockTypeText = "text"
	positionEnd   = "end"
	dateToday     = "today"
	codeFence     = "```"
)

// CaptureRequest describes a single note to post. Position and date are
// fixed to append-to-today placement for now.
type CaptureRequest struct {
	Text        string
	Position    string
	Date        string
	CodeWrapped bool
}

// Block is one content block sent to the document service.
type Block struct {
	Type     string `json:"type"`
	Markdown string `json:"markdown"`
}

// Placement tells the service where to insert the blocks.
type Placement struct {
	Position string `json:"position"`
	Date     string `json:"date"`
}

// Payload is the request body for the blocks endpoint.
type Payload struct {
	Blocks   []Block   `json:"blocks"`
	Position Placement `json:"position"`
}

// NewCaptureRequest returns a request for text with the default
// placement.
func NewCaptureRequest(text string, codeWrapped bool) CaptureRequest {
	return CaptureRequest{
		Text:        text,
		Position:    positionEnd,
		Date:        dateToday,
		CodeWrapped: codeWrapped,
	}
}

// BuildPayload serializes a CaptureRequest into the JSON body expected
// by the service. The text is embedded verbatim; json.Marshal handles
// escaping of quotes, backslashes, control characters and non-ASCII.
func BuildPayload(req CaptureRequest) ([]byte, error) {
	markdown := req.Text
	if req.CodeWrapped {
		markdown = fmt.Sprintf("%s\n%s\n%s", codeFence, req.Text, codeFence)
	}
	payload := Payload{
		Blocks: []Block{
			{Type: blockTypeText, Markdown: markdown},
		},
		Position: Placement{
			Position: req.Position,
			Date:     req.Date,
		},
	}
	return json.Marshal(payload)
}
