package dictionary

import (
	"path/filepath"
	"strings"
	"testing"
)

type recorder struct {
	entries map[string]uint64
}

func newRecorder() *recorder {
	return &recorder{entries: make(map[string]uint64)}
}

func (r *recorder) AddEntry(term string, count uint64) bool {
	r.entries[term] += count
	return true
}

func TestLoadReader(t *testing.T) {
	input := "the 23135851162\nof 13151942776\nand 12997637966\n"
	rec := newRecorder()
	loaded, err := NewLoader(rec).LoadReader(strings.NewReader(input), 0, 1, "")
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if loaded != 3 {
		t.Errorf("loaded %d records; want 3", loaded)
	}
	if rec.entries["the"] != 23135851162 {
		t.Errorf("count for 'the' = %d; want 23135851162", rec.entries["the"])
	}
}

func TestLoadReaderSkipsMalformedLines(t *testing.T) {
	input := "good 10\n\nonlyterm\nbad notanumber\nfine 5\n"
	rec := newRecorder()
	loaded, err := NewLoader(rec).LoadReader(strings.NewReader(input), 0, 1, "")
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if loaded != 2 {
		t.Errorf("loaded %d records; want 2", loaded)
	}
	if _, ok := rec.entries["bad"]; ok {
		t.Error("record with unparsable count should be skipped")
	}
}

func TestLoadReaderCustomSeparator(t *testing.T) {
	input := "42\thello world\n7\tgoodbye\n"
	rec := newRecorder()
	loaded, err := NewLoader(rec).LoadReader(strings.NewReader(input), 1, 0, "\t")
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if loaded != 2 {
		t.Errorf("loaded %d records; want 2", loaded)
	}
	if rec.entries["hello world"] != 42 {
		t.Errorf("count for 'hello world' = %d; want 42", rec.entries["hello world"])
	}
}

func TestChunkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	entries := []Entry{
		{Term: "alpha", Count: 100},
		{Term: "beta", Count: 50},
		{Term: "gamma", Count: 25},
		{Term: "delta", Count: 10},
		{Term: "epsilon", Count: 5},
	}
	if err := WriteChunks(dir, entries, 2); err != nil {
		t.Fatalf("WriteChunks failed: %v", err)
	}

	chunks, err := AvailableChunks(dir)
	if err != nil {
		t.Fatalf("AvailableChunks failed: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("found %d chunks; want 3", len(chunks))
	}
	if chunks[0].EntryCount != 2 || chunks[2].EntryCount != 1 {
		t.Errorf("chunk entry counts = %d, %d; want 2, 1", chunks[0].EntryCount, chunks[2].EntryCount)
	}
	if filepath.Base(chunks[0].Filename) != "dict_0001.bin" {
		t.Errorf("first chunk named %s; want dict_0001.bin", filepath.Base(chunks[0].Filename))
	}

	rec := newRecorder()
	loaded, err := NewLoader(rec).LoadChunks(dir)
	if err != nil {
		t.Fatalf("LoadChunks failed: %v", err)
	}
	if loaded != len(entries) {
		t.Errorf("loaded %d records; want %d", loaded, len(entries))
	}
	for _, e := range entries {
		if rec.entries[e.Term] != e.Count {
			t.Errorf("count for %q = %d; want %d", e.Term, rec.entries[e.Term], e.Count)
		}
	}
}

func TestLoadChunksEmptyDir(t *testing.T) {
	rec := newRecorder()
	if _, err := NewLoader(rec).LoadChunks(t.TempDir()); err == nil {
		t.Error("expected error for directory without chunk files")
	}
}
