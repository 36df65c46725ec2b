package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRelativeName(t *testing.T) {
	cases := map[string]string{
		"/home/me/reefolio/prefabs/scene.yaml":          "scene.yaml",
		"/home/me/reefolio/prefabs/scripts/drift.tengo": "scripts/drift.tengo",
		"prefabs/content.yaml":                          "content.yaml",
		"/elsewhere/drift.tengo":                        "scripts/drift.tengo",
		"/elsewhere/scene.yaml":                         "scene.yaml",
	}
	for in, want := range cases {
		if got := relativeName(in); got != want {
			t.Errorf("relativeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"drift.tengo", "scripts/drift.tengo", "prefabs/scripts/drift.tengo"} {
		if got := cleanScriptPath(in); got != "scripts/drift.tengo" {
			t.Errorf("cleanScriptPath(%q) = %q", in, got)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if name != "scene.yaml" {
				t.Fatalf("unexpected event %q", name)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("second close: %v", err)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for watcher event")
		}
	}
}
