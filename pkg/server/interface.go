/*
Package server implements msgpack IPC for spelling correction and
prefix completion services.

The server speaks binary msgpack over stdin/stdout on a request
response model. Each request carries an ID that is echoed back, a
command name, and command specific fields. Messages are processed
synchronously with timing info included in responses.

A correction request:

	{"id": "req_001", "cmd": "correct", "t": "stream", "v": "top", "d": 2}

gets back suggestions ordered by edit distance, then frequency:

	{"id": "req_001", "s": [{"t": "steamb", "d": 2, "c": 6}], "n": 1, "us": 85}

A completion request:

	{"id": "req_002", "cmd": "complete", "p": "the", "l": 10}

returns prefix matches ranked by frequency. Health checks use
{"cmd": "health"} and report the loaded vocabulary size.

Errors come back as {"id": ..., "e": message, "c": code} with
HTTP-style codes.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"cmd"`

	// correct
	Term           string `msgpack:"t,omitempty"`
	Verbosity      string `msgpack:"v,omitempty"`
	Distance       *int   `msgpack:"d,omitempty"`
	IncludeUnknown bool   `msgpack:"iu,omitempty"`

	// complete
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CorrectionSuggestion is one ranked spelling correction.
type CorrectionSuggestion struct {
	Term     string `msgpack:"t"`
	Distance int    `msgpack:"d"`
	Count    uint64 `msgpack:"c"`
}

// CorrectionResponse answers a "correct" request.
type CorrectionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CorrectionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"n"`
	TimeTaken   int64                  `msgpack:"us"`
}

// CompletionSuggestion is one ranked prefix match.
type CompletionSuggestion struct {
	Word  string `msgpack:"w"`
	Count uint64 `msgpack:"c"`
}

// CompletionResponse answers a "complete" request.
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"n"`
	TimeTaken   int64                  `msgpack:"us"`
}

// HealthResponse answers a "health" request.
type HealthResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	WordCount int    `msgpack:"words"`
}

// ErrorResponse carries failure details for any request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
