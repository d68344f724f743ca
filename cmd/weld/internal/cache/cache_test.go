package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFreshAfterRecord(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "app.weld.go")
	if err := os.WriteFile(output, []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := Open(filepath.Join(dir, "cache.json"))
	hash := Key([]byte("definition"), []byte("options"))

	if c.Fresh("app.weld.yml", hash) {
		t.Error("empty cache should not report fresh")
	}

	c.Record("app.weld.yml", hash, output)
	if !c.Fresh("app.weld.yml", hash) {
		t.Error("recorded entry should be fresh")
	}

	// A different fingerprint means the source or options changed
	other := Key([]byte("definition v2"), []byte("options"))
	if c.Fresh("app.weld.yml", other) {
		t.Error("changed fingerprint should not be fresh")
	}
}

func TestFreshRequiresOutput(t *testing.T) {
	dir := t.TempDir()
	c := Open(filepath.Join(dir, "cache.json"))
	hash := Key([]byte("x"))

	c.Record("app.weld.yml", hash, filepath.Join(dir, "missing.weld.go"))
	if c.Fresh("app.weld.yml", hash) {
		t.Error("entry with deleted output should not be fresh")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "cache.json")
	output := filepath.Join(dir, "app.weld.go")
	if err := os.WriteFile(output, []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	hash := Key([]byte("x"))

	c := Open(path)
	c.Record("app.weld.yml", hash, output)
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened := Open(path)
	if !reopened.Fresh("app.weld.yml", hash) {
		t.Error("reloaded cache lost the entry")
	}

	reopened.Forget("app.weld.yml")
	if reopened.Fresh("app.weld.yml", hash) {
		t.Error("forgotten entry should not be fresh")
	}
}

func TestOpenCorruptIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	c := Open(path)
	if c.Fresh("anything", Key([]byte("x"))) {
		t.Error("corrupt index should start fresh")
	}
}
