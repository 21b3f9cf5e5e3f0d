package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "yamlguard.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error writing manifest: %v", err)
	}
	return path
}

func TestFindLocatesManifestInStartDir(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[profiles.infra]\nroot = \"infra\"\n")

	found, err := Find(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Clean(found) != filepath.Join(dir, "yamlguard.toml") {
		t.Fatalf("expected to find manifest at %s, got %s", dir, found)
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[profiles.infra]\nroot = \"infra\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := Find(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Clean(found) != filepath.Join(root, "yamlguard.toml") {
		t.Fatalf("expected to find manifest at root %s, got %s", root, found)
	}
}

func TestFindReturnsErrNoManifest(t *testing.T) {
	dir := t.TempDir()
	if _, err := Find(dir); err != ErrNoManifest {
		t.Fatalf("expected ErrNoManifest, got %v", err)
	}
}

func TestLoadAndResolveProfile(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[profiles.infra]\nroot = \"infra\"\nconfig = \"infra.yaml\"\nyaml-files = [\"*.yaml\"]\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	profile, err := m.Resolve("infra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Root != filepath.Join(dir, "infra") {
		t.Fatalf("expected root to be resolved relative to the manifest dir, got %s", profile.Root)
	}
	if profile.Config != filepath.Join(dir, "infra.yaml") {
		t.Fatalf("expected config to be resolved relative to the manifest dir, got %s", profile.Config)
	}
}

func TestResolveUnknownProfileFails(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[profiles.infra]\nroot = \"infra\"\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Resolve("missing"); err == nil {
		t.Fatalf("expected an error for an unknown profile")
	}
}

func TestResolveDefaultsRootToManifestDir(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[profiles.all]\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	profile, err := m.Resolve("all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Root != dir {
		t.Fatalf("expected an empty root to default to the manifest's own directory, got %s", profile.Root)
	}
}
