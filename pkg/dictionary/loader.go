// Package dictionary loads term/frequency vocabularies into the
// correction and completion engines. It understands plain delimited
// text files ("term count" per line) and a chunked msgpack binary
// format for prebuilt dictionaries.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Sink receives dictionary records one at a time. The correction
// engine's AddEntry satisfies it directly; any consumer that wants
// the same vocabulary can adapt in.
type Sink interface {
	AddEntry(term string, count uint64) bool
}

// SinkFunc adapts a plain function into a Sink.
type SinkFunc func(term string, count uint64) bool

// AddEntry implements Sink.
func (f SinkFunc) AddEntry(term string, count uint64) bool {
	return f(term, count)
}

// Loader parses vocabulary sources and forwards every record to a
// Sink. Loading must finish before the sink serves concurrent reads.
type Loader struct {
	sink Sink
}

// NewLoader creates a Loader bound to the given sink.
func NewLoader(sink Sink) *Loader {
	return &Loader{sink: sink}
}

// LoadFile reads a delimited text dictionary where each line carries a
// term and a count at the given column indices. An empty separator
// splits on any whitespace. Returns the number of records forwarded.
func (l *Loader) LoadFile(path string, termIndex, countIndex int, separator string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()
	return l.LoadReader(file, termIndex, countIndex, separator)
}

// LoadReader is LoadFile for an arbitrary reader.
func (l *Loader) LoadReader(r io.Reader, termIndex, countIndex int, separator string) (int, error) {
	minParts := termIndex
	if countIndex > minParts {
		minParts = countIndex
	}
	minParts++

	loaded := 0
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var parts []string
		if separator == "" {
			parts = strings.Fields(line)
		} else {
			parts = strings.Split(line, separator)
		}
		if len(parts) < minParts {
			log.Debugf("Skipping malformed dictionary line %d: %q", lineNo, line)
			continue
		}
		term := strings.TrimSpace(parts[termIndex])
		count, err := strconv.ParseUint(strings.TrimSpace(parts[countIndex]), 10, 64)
		if err != nil {
			log.Debugf("Skipping dictionary line %d with bad count: %v", lineNo, err)
			continue
		}
		l.sink.AddEntry(term, count)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("failed to read dictionary: %w", err)
	}
	log.Debugf("Loaded %d dictionary records", loaded)
	return loaded, nil
}
