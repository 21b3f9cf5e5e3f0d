// Package cache stores prior lint results on disk, keyed by file content
// hash, so an unchanged file in a later run skips the pipeline entirely
// (spec.md §2's sibling "cache pass", outside the core's contract).
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"yamlguard/internal/diag"
	"yamlguard/internal/source"
)

// schemaVersion guards against decoding a payload written by an
// incompatible earlier build; bump it whenever Entry's shape changes.
const schemaVersion uint16 = 1

// Entry is the cached outcome for one file content hash.
type Entry struct {
	Schema      uint16
	ConfigHash  [32]byte
	Diagnostics []DiagnosticEntry
}

// DiagnosticEntry is diag.Diagnostic flattened to the subset that
// round-trips cleanly through msgpack without needing source.FileSet to
// rehydrate: a cache hit still needs the live FileSet for the file being
// linted, so positions are re-resolved against it, not replayed verbatim.
type DiagnosticEntry struct {
	Severity  uint8
	RuleID    string
	Message   string
	StartByte uint32
	EndByte   uint32
}

// Disk is a thread-safe, content-addressed cache on the local filesystem.
type Disk struct {
	mu  sync.RWMutex
	dir string
}

// Open opens (creating if absent) a disk cache rooted at dir.
func Open(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Disk{dir: dir}, nil
}

func (c *Disk) pathFor(contentHash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(contentHash[:])+".mp")
}

// Put writes entry for contentHash, replacing any prior value atomically.
func (c *Disk) Put(contentHash [32]byte, entry *Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry.Schema = schemaVersion
	p := c.pathFor(contentHash)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("cache: put: %w", err)
	}
	removeTemp := true
	defer func() {
		if removeTemp {
			_ = os.Remove(f.Name())
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		return fmt.Errorf("cache: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cache: close: %w", err)
	}
	if err := os.Rename(f.Name(), p); err != nil {
		return fmt.Errorf("cache: rename: %w", err)
	}
	removeTemp = false
	return nil
}

// Get reads the cached Entry for contentHash, reporting false if absent
// or written by an incompatible schema version.
func (c *Disk) Get(contentHash [32]byte) (*Entry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(contentHash)) // #nosec G304 -- path is content-hash derived
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}
	defer f.Close()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false, fmt.Errorf("cache: decode: %w", err)
	}
	if entry.Schema != schemaVersion {
		return nil, false, nil
	}
	return &entry, true, nil
}

// ToEntry flattens bag's diagnostics into their cacheable form.
func ToEntry(configHash [32]byte, items []diag.Diagnostic) *Entry {
	out := make([]DiagnosticEntry, len(items))
	for i, d := range items {
		out[i] = DiagnosticEntry{
			Severity:  uint8(d.Severity),
			RuleID:    string(d.RuleID),
			Message:   d.Message,
			StartByte: d.Primary.Start,
			EndByte:   d.Primary.End,
		}
	}
	return &Entry{ConfigHash: configHash, Diagnostics: out}
}

// FromEntry rebuilds diagnostics against fileID, for a cache hit being
// replayed into a fresh FileSet that never ran the pipeline.
func FromEntry(entry *Entry, fileID source.FileID) []diag.Diagnostic {
	out := make([]diag.Diagnostic, len(entry.Diagnostics))
	for i, e := range entry.Diagnostics {
		out[i] = diag.Diagnostic{
			Severity: diag.Severity(e.Severity),
			RuleID:   diag.RuleID(e.RuleID),
			Message:  e.Message,
			Primary:  source.Span{File: fileID, Start: e.StartByte, End: e.EndByte},
		}
	}
	return out
}
