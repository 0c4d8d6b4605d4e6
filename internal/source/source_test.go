package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchesDialect(t *testing.T) {
	for _, name := range []string{"a.ewts", "b.script", "c.ewtsub", "d.subscript", "dir/e.ewts"} {
		if !MatchesDialect(name) {
			t.Fatalf("%s should match", name)
		}
	}
	for _, name := range []string{"main.go", "script", "a.ewts.bak"} {
		if MatchesDialect(name) {
			t.Fatalf("%s should not match", name)
		}
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.ewts", "two.script", "ignore.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	files, err := Collect([]string{dir})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 dialect files, got %v", files)
	}

	// Explicit file arguments are taken as given, dialect or not.
	files, err = Collect([]string{filepath.Join(dir, "ignore.txt")})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected explicit file to pass through, got %v", files)
	}
}
