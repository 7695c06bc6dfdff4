package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Entry is one record of the binary chunk format.
type Entry struct {
	Term  string `msgpack:"t"`
	Count uint64 `msgpack:"c"`
}

// chunk is the on-disk unit: a small header plus its entries, encoded
// as a single msgpack value.
type chunk struct {
	EntryCount int     `msgpack:"n"`
	Entries    []Entry `msgpack:"e"`
}

// ChunkInfo describes one chunk file found on disk.
type ChunkInfo struct {
	ID         int
	Filename   string
	EntryCount int
}

const chunkPattern = "dict_*.bin"

// WriteChunks splits entries into files of at most chunkSize records,
// named dict_0001.bin, dict_0002.bin and so on under dir.
func WriteChunks(dir string, entries []Entry, chunkSize int) error {
	if chunkSize < 1 {
		return fmt.Errorf("chunk size must be at least 1, got %d", chunkSize)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create chunk dir %s: %w", dir, err)
	}
	id := 0
	for start := 0; start < len(entries); start += chunkSize {
		end := start + chunkSize
		if end > len(entries) {
			end = len(entries)
		}
		id++
		path := filepath.Join(dir, fmt.Sprintf("dict_%04d.bin", id))
		data, err := msgpack.Marshal(chunk{
			EntryCount: end - start,
			Entries:    entries[start:end],
		})
		if err != nil {
			return fmt.Errorf("failed to encode chunk %d: %w", id, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write chunk %s: %w", path, err)
		}
		log.Debugf("Wrote chunk %s with %d entries", path, end-start)
	}
	return nil
}

// AvailableChunks scans dir for chunk files, ordered by chunk ID.
func AvailableChunks(dir string) ([]ChunkInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, chunkPattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}
	var chunks []ChunkInfo
	for _, file := range files {
		basename := filepath.Base(file)
		idStr := strings.TrimSuffix(strings.TrimPrefix(basename, "dict_"), ".bin")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Warnf("Ignoring chunk file with unparsable name: %s", basename)
			continue
		}
		count, err := readChunkHeader(file)
		if err != nil {
			log.Warnf("Failed to read chunk header of %s: %v", file, err)
			count = 0
		}
		chunks = append(chunks, ChunkInfo{ID: id, Filename: file, EntryCount: count})
	}
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ID < chunks[j].ID
	})
	return chunks, nil
}

// LoadChunks reads every chunk file in dir, in ID order, and forwards
// the records through the loader's sink. Returns the number of
// records loaded.
func (l *Loader) LoadChunks(dir string) (int, error) {
	chunks, err := AvailableChunks(dir)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		return 0, fmt.Errorf("no chunk files found in %s", dir)
	}
	loaded := 0
	for _, info := range chunks {
		n, err := l.loadChunk(info.Filename)
		if err != nil {
			return loaded, err
		}
		loaded += n
	}
	log.Debugf("Loaded %d records from %d chunks", loaded, len(chunks))
	return loaded, nil
}

func (l *Loader) loadChunk(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open chunk file %s: %w", path, err)
	}
	var c chunk
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return 0, fmt.Errorf("failed to decode chunk %s: %w", path, err)
	}
	if c.EntryCount != len(c.Entries) {
		return 0, fmt.Errorf("chunk %s header claims %d entries but carries %d", path, c.EntryCount, len(c.Entries))
	}
	for _, e := range c.Entries {
		l.sink.AddEntry(e.Term, e.Count)
	}
	return len(c.Entries), nil
}

// readChunkHeader decodes just enough of a chunk file to report its
// entry count.
func readChunkHeader(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var c chunk
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return 0, err
	}
	return c.EntryCount, nil
}
