package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestServer(t *testing.T, in *bytes.Buffer, out *bytes.Buffer) *Server {
	t.Helper()
	corrector := spell.New()
	completer := suggest.NewCompleter()
	for term, count := range map[string]uint64{
		"steama": 4,
		"steamb": 6,
		"steamc": 2,
		"stream": 10,
	} {
		corrector.AddEntry(term, count)
		completer.AddEntry(term, count)
	}
	return NewServerIO(corrector, completer, config.DefaultConfig(), in, out)
}

func encodeRequests(t *testing.T, requests ...Request) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, r := range requests {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}
	return &buf
}

func decodeReady(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var ready map[string]string
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready banner: %v", err)
	}
	if ready["status"] != "ready" {
		t.Fatalf("ready banner = %v", ready)
	}
}

func TestServerCorrect(t *testing.T) {
	in := encodeRequests(t, Request{ID: "r1", Command: "correct", Term: "steamx", Verbosity: "top"})
	var out bytes.Buffer
	if err := newTestServer(t, in, &out).Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	decodeReady(t, dec)
	var resp CorrectionResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "r1" {
		t.Errorf("response ID = %q; want r1", resp.ID)
	}
	if resp.Count != 1 || resp.Suggestions[0].Term != "steamb" {
		t.Errorf("suggestions = %v; want single steamb", resp.Suggestions)
	}
	if resp.Suggestions[0].Distance != 1 || resp.Suggestions[0].Count != 6 {
		t.Errorf("suggestion = %+v; want distance 1, count 6", resp.Suggestions[0])
	}
}

func TestServerCorrectDistanceTooLarge(t *testing.T) {
	d := 5
	in := encodeRequests(t, Request{ID: "r1", Command: "correct", Term: "steam", Distance: &d})
	var out bytes.Buffer
	if err := newTestServer(t, in, &out).Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	decodeReady(t, dec)
	var resp ErrorResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "distance too large" || resp.Code != 400 {
		t.Errorf("error response = %+v", resp)
	}
}

func TestServerComplete(t *testing.T) {
	in := encodeRequests(t, Request{ID: "c1", Command: "complete", Prefix: "stea", Limit: 2})
	var out bytes.Buffer
	if err := newTestServer(t, in, &out).Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	decodeReady(t, dec)
	var resp CompletionResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("completion count = %d; want 2", resp.Count)
	}
	if resp.Suggestions[0].Word != "steamb" {
		t.Errorf("top completion = %q; want steamb", resp.Suggestions[0].Word)
	}
}

func TestServerHealth(t *testing.T) {
	in := encodeRequests(t, Request{ID: "h1", Command: "health"})
	var out bytes.Buffer
	if err := newTestServer(t, in, &out).Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	decodeReady(t, dec)
	var resp HealthResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ok" || resp.WordCount != 4 {
		t.Errorf("health = %+v; want ok with 4 words", resp)
	}
}

func TestServerUnknownCommand(t *testing.T) {
	in := encodeRequests(t, Request{ID: "x1", Command: "frobnicate"})
	var out bytes.Buffer
	if err := newTestServer(t, in, &out).Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	decodeReady(t, dec)
	var resp ErrorResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Code != 400 {
		t.Errorf("error code = %d; want 400", resp.Code)
	}
}
