package caller

import (
	"strings"
	"testing"
)

func Test_Module_Chain(t *testing.T) {
	root := New("/src/root.go", nil)
	middle := New("/src/middle.go", root)
	leaf := New("/src/leaf.go", middle)

	chain := leaf.Chain()
	want := []string{"/src/leaf.go", "/src/middle.go", "/src/root.go"}
	if len(chain) != len(want) {
		t.Fatalf("expected chain of %d, got %d", len(want), len(chain))
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %s, want %s", i, chain[i], want[i])
		}
	}
}

func Test_Module_Exports(t *testing.T) {
	m := New("/src/a.go", nil)

	if m.HasExport("x") {
		t.Error("expected no export before assignment")
	}
	m.Export("x", 1)
	if !m.HasExport("x") {
		t.Error("expected export after assignment")
	}
	if m.Exports()["x"] != 1 {
		t.Errorf("expected 1, got %v", m.Exports()["x"])
	}
}

func Test_File_ReturnsCallingTestFile(t *testing.T) {
	file, ok := File(0)
	if !ok {
		t.Fatal("expected caller file to be discoverable")
	}
	if !strings.HasSuffix(file, "caller_test.go") {
		t.Errorf("expected caller_test.go, got %s", file)
	}
}
