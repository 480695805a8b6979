package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reflector-agent/reflector/pkg/storage"
)

func TestResolvePath(t *testing.T) {
	ws := storage.NewFilesystemWorkspace("/ws")

	path, err := ws.ResolvePath("memory/reflector")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/ws", "memory", "reflector") {
		t.Errorf("ResolvePath = %q", path)
	}

	if _, err := ws.ResolvePath(""); err == nil {
		t.Error("empty path should be rejected")
	}
	if _, err := ws.ResolvePath("../outside"); err == nil {
		t.Error("traversal should be rejected")
	}
	if _, err := ws.ResolvePath("memory/../../outside"); err == nil {
		t.Error("nested traversal should be rejected")
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	ws := storage.NewFilesystemWorkspace(t.TempDir())

	for i := 0; i < 2; i++ {
		if err := ws.EnsureDir("memory/reflector/weekly-summaries"); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	exists, err := ws.Exists("memory/reflector/weekly-summaries")
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("directory should exist")
	}
}

func TestWriteFileIfAbsent_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	ws := storage.NewFilesystemWorkspace(root)

	if err := ws.WriteFileIfAbsent("PRINCIPLES.md", "template"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, "PRINCIPLES.md")
	if err := os.WriteFile(path, []byte("user edits"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ws.WriteFileIfAbsent("PRINCIPLES.md", "template"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "user edits" {
		t.Errorf("existing content was overwritten: %q", data)
	}
}

func TestExists_DistinguishesPresence(t *testing.T) {
	ws := storage.NewFilesystemWorkspace(t.TempDir())

	exists, err := ws.Exists("memory")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("memory should not exist yet")
	}

	if err := ws.EnsureDir("memory"); err != nil {
		t.Fatal(err)
	}

	exists, err = ws.Exists("memory")
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("memory should exist after EnsureDir")
	}
}
