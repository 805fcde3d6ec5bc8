/*
Package server implements msgpack IPC for the tool-suggestion engine.

The server operates on a request/response model: clients send structured
messages via stdin and receive responses through stdout, each message
carrying an id field plus fields keyed by the requested action.

A feed request appends to a session's buffer and returns ranked
suggestions over the resulting text:

	{"id": "req_001", "action": "feed", "session_id": "s1", "text": "export cs"}

The server responds with suggestions ranked by score:

	{"id": "req_001", "suggestions": [{"id": "csv_exporter", "score": 4.2, ...}], "count": 1, "t": 145}

submit replaces a session's buffer wholesale before ranking; reset drops a
session's buffer. add_tools and remove_tool manage the catalog at runtime
without a restart.

msgpack encoding keeps message sizes small and parsing fast compared to
JSON, which matters on the hot feed path where a suggestion request is
sent per keystroke.
*/
package server

import "github.com/bastiangx/toolsuggest/pkg/catalog"

// Request is a single IPC message. Action selects which fields are read:
// "feed" and "submit" use SessionID/Text, "reset" uses SessionID,
// "add_tools" uses Tools, and "remove_tool" uses ToolName.
type Request struct {
	ID        string             `msgpack:"id"`
	Action    string             `msgpack:"action"`
	SessionID string             `msgpack:"session_id,omitempty"`
	Text      string             `msgpack:"text,omitempty"`
	Tools     []catalog.ToolSpec `msgpack:"tools,omitempty"`
	ToolName  string             `msgpack:"tool_name,omitempty"`
}

// SuggestionPayload is the wire form of a catalog.Suggestion.
type SuggestionPayload struct {
	ID     string   `msgpack:"id"`
	Kind   string   `msgpack:"kind"`
	Score  float64  `msgpack:"score"`
	Label  string   `msgpack:"label"`
	Reason string   `msgpack:"reason"`
	Tags   []string `msgpack:"tags,omitempty"`
}

// Response is returned for feed and submit requests.
type Response struct {
	ID          string              `msgpack:"id"`
	Suggestions []SuggestionPayload `msgpack:"suggestions"`
	Count       int                 `msgpack:"count"`
	TimeTaken   int64               `msgpack:"t"`
}

// StatusResponse is returned for reset, add_tools, and remove_tool requests.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// ErrorResponse reports a request with an unknown action. A request that
// fails to decode gets no response.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"error"`
	Code  int    `msgpack:"code"`
}

func toPayload(s catalog.Suggestion) SuggestionPayload {
	return SuggestionPayload{
		ID:     s.ID,
		Kind:   string(s.Kind),
		Score:  s.Score,
		Label:  s.Label,
		Reason: s.Reason,
		Tags:   s.Metadata.Tags,
	}
}
