package cache

import (
	"crypto/sha256"
	"os"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"yamlguard/internal/diag"
	"yamlguard/internal/source"
)

func TestPutGetRoundTrip(t *testing.T) {
	disk, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contentHash := sha256.Sum256([]byte("a: 1\n"))
	configHash := sha256.Sum256([]byte("config"))

	items := []diag.Diagnostic{
		diag.NewError(diag.RuleColons, source.Span{Start: 0, End: 1}, "bad colon spacing"),
	}
	if err := disk.Put(contentHash, ToEntry(configHash, items)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, ok, err := disk.Get(contentHash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a cache hit")
	}
	if entry.ConfigHash != configHash {
		t.Fatalf("expected the stored config hash to round-trip")
	}
	if len(entry.Diagnostics) != 1 || entry.Diagnostics[0].RuleID != string(diag.RuleColons) {
		t.Fatalf("expected diagnostics to round-trip, got %+v", entry.Diagnostics)
	}
}

func TestGetMissReportsNoError(t *testing.T) {
	disk, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := disk.Get(sha256.Sum256([]byte("never written")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected a cache miss for an unwritten hash")
	}
}

func TestGetRejectsMismatchedSchema(t *testing.T) {
	dir := t.TempDir()
	disk, err := Open(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contentHash := sha256.Sum256([]byte("a: 1\n"))
	entry := ToEntry(sha256.Sum256([]byte("config")), nil)
	entry.Schema = schemaVersion + 1

	// Put always stamps the current schema version before writing, so
	// encode a stale-schema entry directly to exercise Get's guard.
	f, err := os.Create(disk.pathFor(contentHash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := disk.Get(contentHash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected a schema mismatch to report a miss")
	}
}

func TestFromEntryRebuildsDiagnosticsAgainstFileID(t *testing.T) {
	configHash := sha256.Sum256([]byte("config"))
	items := []diag.Diagnostic{
		diag.NewError(diag.RuleColons, source.Span{Start: 3, End: 5}, "message"),
	}
	entry := ToEntry(configHash, items)

	rebuilt := FromEntry(entry, source.FileID(7))
	if len(rebuilt) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(rebuilt))
	}
	if rebuilt[0].Primary.File != source.FileID(7) {
		t.Fatalf("expected the rebuilt diagnostic's span to reference the given FileID")
	}
	if rebuilt[0].Primary.Start != 3 || rebuilt[0].Primary.End != 5 {
		t.Fatalf("expected byte offsets to round-trip, got %+v", rebuilt[0].Primary)
	}
}
