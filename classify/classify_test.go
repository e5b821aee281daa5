package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Is_Directory(t *testing.T) {
	tmpDir := t.TempDir()

	if !Is(tmpDir, Directory) {
		t.Error("expected temp dir to classify as directory")
	}
	if Is(filepath.Join(tmpDir, "missing"), Directory) {
		t.Error("expected missing path to not classify as directory")
	}
	if Is(42, Directory) {
		t.Error("expected non-string to not classify as directory")
	}
}

func Test_Is_File(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "unit.yaml")
	os.WriteFile(filePath, []byte("a: 1\n"), 0644)

	if !Is(filePath, File) {
		t.Error("expected written file to classify as file")
	}
	if Is(tmpDir, File) {
		t.Error("expected directory to not classify as file")
	}
}

func Test_Is_Absent(t *testing.T) {
	if !Is(nil, Absent) {
		t.Error("expected nil to classify as absent")
	}
	if Is("", Absent) {
		t.Error("expected empty string to not classify as absent")
	}
}

type fakeHandle struct{}

func (fakeHandle) Filename() string        { return "/tmp/fake.go" }
func (fakeHandle) Exports() map[string]any { return nil }

func Test_Is_Module_DuckTyped(t *testing.T) {
	if !Is(fakeHandle{}, Module) {
		t.Error("expected value with handle methods to classify as module")
	}
	if Is("not a module", Module) {
		t.Error("expected string to not classify as module")
	}
}

func Test_Is_GenericKinds(t *testing.T) {
	tests := []struct {
		value any
		kind  Kind
		want  bool
	}{
		{"hello", "string", true},
		{42, "int", true},
		{map[string]any{}, "map", true},
		{func() {}, "func", true},
		{"hello", "int", false},
		{nil, "string", false},
	}

	for _, tt := range tests {
		if got := Is(tt.value, tt.kind); got != tt.want {
			t.Errorf("Is(%v, %s) = %v, want %v", tt.value, tt.kind, got, tt.want)
		}
	}
}
