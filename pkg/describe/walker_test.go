package describe

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// buildSnapshot creates the canonical fixture: a.txt ("hello"), b.log,
// and build/out.bin containing a null byte.
func buildSnapshot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "snap")
	if err := os.MkdirAll(filepath.Join(root, "build"), 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	writeFile(t, root, "a.txt", []byte("hello"))
	writeFile(t, root, "b.log", []byte("log line"))
	writeFile(t, filepath.Join(root, "build"), "out.bin", []byte{0x00, 0x01, 0x02})
	return root
}

func TestWalk_ExclusionScenario(t *testing.T) {
	root := buildSnapshot(t)

	walker := NewWalker(root, "snap", []string{"*.log", "build/"}, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	wantCounts := Counts{IncludedDirs: 1, IncludedFiles: 1, ExcludedDirs: 1, ExcludedFiles: 1}
	if result.Counts != wantCounts {
		t.Errorf("counts = %+v, want %+v", result.Counts, wantCounts)
	}

	wantLines := []string{
		"snap/",
		"  |-- a.txt",
		"# b.log excluded",
		"# build/ directory excluded",
	}
	if !reflect.DeepEqual(result.StructureLines, wantLines) {
		t.Errorf("structure lines = %q, want %q", result.StructureLines, wantLines)
	}

	if len(result.Files) != 1 {
		t.Fatalf("expected exactly one included file, got %d", len(result.Files))
	}
	file := result.Files[0]
	if file.RelPath != "a.txt" || file.Class != ClassNormal || file.Content != "hello" {
		t.Errorf("unexpected file entry: %+v", file)
	}
}

func TestWalk_ExcludedSubtreeIsInvisible(t *testing.T) {
	root := filepath.Join(t.TempDir(), "snap")
	if err := os.MkdirAll(filepath.Join(root, "build", "inner"), 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	writeFile(t, filepath.Join(root, "build", "inner"), "deep.txt", []byte("deep"))
	writeFile(t, root, "keep.txt", []byte("keep"))

	walker := NewWalker(root, "snap", []string{"build/"}, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	// The excluded directory counts once; nothing inside it is visited.
	wantCounts := Counts{IncludedDirs: 1, IncludedFiles: 1, ExcludedDirs: 1, ExcludedFiles: 0}
	if result.Counts != wantCounts {
		t.Errorf("counts = %+v, want %+v", result.Counts, wantCounts)
	}
	for _, line := range result.StructureLines {
		if line == "  |-- inner/" || line == "# deep.txt excluded" {
			t.Errorf("excluded subtree leaked into structure: %q", line)
		}
	}
	for _, file := range result.Files {
		if file.RelPath == "build/inner/deep.txt" {
			t.Error("excluded subtree leaked into content entries")
		}
	}
}

func TestWalk_CountIdentity(t *testing.T) {
	root := filepath.Join(t.TempDir(), "snap")
	for _, dir := range []string{"src", "src/sub", "docs", "vendor"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create fixture: %v", err)
		}
	}
	writeFile(t, root, "README.md", []byte("readme"))
	writeFile(t, filepath.Join(root, "src"), "main.go", []byte("package main"))
	writeFile(t, filepath.Join(root, "src", "sub"), "util.go", []byte("package sub"))
	writeFile(t, filepath.Join(root, "src", "sub"), "util_test.go", []byte("package sub"))
	writeFile(t, filepath.Join(root, "docs"), "guide.md", []byte("guide"))

	walker := NewWalker(root, "snap", []string{"vendor/", "*_test.go"}, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	// Visited dirs: root, src, src/sub, docs (included) + vendor (excluded).
	if got := result.Counts.IncludedDirs + result.Counts.ExcludedDirs; got != 5 {
		t.Errorf("dir identity violated: included+excluded = %d, want 5", got)
	}
	// Visited files: README.md, main.go, util.go, guide.md + util_test.go.
	if got := result.Counts.IncludedFiles + result.Counts.ExcludedFiles; got != 5 {
		t.Errorf("file identity violated: included+excluded = %d, want 5", got)
	}
	if len(result.Files) != result.Counts.IncludedFiles {
		t.Errorf("included file entries (%d) disagree with count (%d)",
			len(result.Files), result.Counts.IncludedFiles)
	}
}

func TestWalk_AlphabeticalOrder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "snap")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	for _, name := range []string{"zeta.txt", "alpha.txt", "mid.txt"} {
		writeFile(t, root, name, []byte(name))
	}

	walker := NewWalker(root, "snap", nil, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	wantLines := []string{"snap/", "  |-- alpha.txt", "  |-- mid.txt", "  |-- zeta.txt"}
	if !reflect.DeepEqual(result.StructureLines, wantLines) {
		t.Errorf("structure lines = %q, want %q", result.StructureLines, wantLines)
	}
}

func TestWalk_NestedIndentation(t *testing.T) {
	root := filepath.Join(t.TempDir(), "snap")
	if err := os.MkdirAll(filepath.Join(root, "src", "sub"), 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	writeFile(t, filepath.Join(root, "src", "sub"), "deep.txt", []byte("deep"))

	walker := NewWalker(root, "snap", nil, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	wantLines := []string{
		"snap/",
		"  |-- src/",
		"    |-- sub/",
		"      |-- deep.txt",
	}
	if !reflect.DeepEqual(result.StructureLines, wantLines) {
		t.Errorf("structure lines = %q, want %q", result.StructureLines, wantLines)
	}
	if len(result.Files) != 1 || result.Files[0].RelPath != "src/sub/deep.txt" {
		t.Errorf("unexpected file entries: %+v", result.Files)
	}
}

func TestWalk_SizeSkip(t *testing.T) {
	root := filepath.Join(t.TempDir(), "snap")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	writeFile(t, root, "big.txt", make([]byte, 600*1024))

	walker := NewWalker(root, "snap", nil, 500, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("expected one file entry, got %d", len(result.Files))
	}
	file := result.Files[0]
	if file.Class != ClassSizeSkipped {
		t.Errorf("expected size-skipped classification, got %s", file.Class)
	}
	if file.SizeBytes != 600*1024 {
		t.Errorf("size = %d, want %d", file.SizeBytes, 600*1024)
	}
	if file.Content != "" {
		t.Error("size-skipped entries must carry no content")
	}
}

func TestWalk_EmptyDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "snap")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}

	walker := NewWalker(root, "snap", nil, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	wantCounts := Counts{IncludedDirs: 1}
	if result.Counts != wantCounts {
		t.Errorf("counts = %+v, want %+v", result.Counts, wantCounts)
	}
	if len(result.StructureLines) != 1 || result.StructureLines[0] != "snap/" {
		t.Errorf("structure lines = %q", result.StructureLines)
	}
}

func TestWalk_RootIsNeverMatched(t *testing.T) {
	root := filepath.Join(t.TempDir(), "build")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	writeFile(t, root, "a.txt", []byte("a"))

	// A pattern matching the root's own name must not exclude the root.
	walker := NewWalker(root, "build", []string{"build/"}, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if result.Counts.IncludedFiles != 1 {
		t.Errorf("expected the root's file to be visited, counts = %+v", result.Counts)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	walker := NewWalker(filepath.Join(t.TempDir(), "nope"), "nope", nil, 0, nil)
	if _, err := walker.Walk(); err == nil {
		t.Fatal("expected an error for a missing root")
	}
}

func TestWalk_RootNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.txt", []byte("x"))
	walker := NewWalker(path, "file.txt", nil, 0, nil)
	if _, err := walker.Walk(); err == nil {
		t.Fatal("expected an error for a non-directory root")
	}
}

func TestWalk_SymlinkEscapingRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "snap")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	outside := writeFile(t, base, "secret.txt", []byte("secret"))
	if err := os.Symlink(outside, filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	walker := NewWalker(root, "snap", nil, 0, nil)
	result, err := walker.Walk()
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected one file entry, got %d", len(result.Files))
	}
	file := result.Files[0]
	if file.Class != ClassReadError {
		t.Errorf("expected read-error for escaping symlink, got %s", file.Class)
	}
	if file.Content != "" {
		t.Error("escaping symlink must not leak content")
	}
}

func TestWalk_Deterministic(t *testing.T) {
	root := buildSnapshot(t)
	walker := NewWalker(root, "snap", []string{"*.log"}, 0, nil)

	first, err := walker.Walk()
	if err != nil {
		t.Fatalf("first walk failed: %v", err)
	}
	second, err := walker.Walk()
	if err != nil {
		t.Fatalf("second walk failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two walks over identical input produced different results")
	}
}
