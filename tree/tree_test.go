package tree

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func Test_Mapping_SetAndGet(t *testing.T) {
	m := New()
	m.Set([]string{"a", "b", "c"}, 42)

	got, ok := m.Get("a", "b", "c")
	if !ok {
		t.Fatal("expected value at a/b/c")
	}
	if got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
}

func Test_Mapping_SetCreatesIntermediateNodes(t *testing.T) {
	m := New()
	m.Set([]string{"a", "b"}, "leaf")

	intermediate, ok := m.Get("a")
	if !ok {
		t.Fatal("expected intermediate node at a")
	}
	if _, ok := intermediate.(*Mapping); !ok {
		t.Errorf("expected *Mapping at a, got %T", intermediate)
	}
}

func Test_Mapping_Has(t *testing.T) {
	m := New()
	m.Set([]string{"x"}, 1)

	if !m.Has("x") {
		t.Error("expected Has(x) to be true")
	}
	if m.Has("y") {
		t.Error("expected Has(y) to be false")
	}
	if m.Has("x", "nested") {
		t.Error("expected Has below a leaf to be false")
	}
}

func Test_Mapping_KeysInsertionOrder(t *testing.T) {
	m := New()
	m.Set([]string{"zebra"}, 1)
	m.Set([]string{"alpha"}, 2)
	m.Set([]string{"mike"}, 3)

	keys := m.Keys()
	want := []string{"zebra", "alpha", "mike"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func Test_Mapping_SetOverwritesWithoutDuplicatingKey(t *testing.T) {
	m := New()
	m.Set([]string{"a"}, 1)
	m.Set([]string{"a"}, 2)

	if m.Len() != 1 {
		t.Errorf("expected 1 key, got %d", m.Len())
	}
	got, _ := m.Get("a")
	if got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}

func Test_Mapping_EmptyPathGraftsMap(t *testing.T) {
	m := New()
	m.Set(nil, map[string]any{"z": 3, "a": 1})

	if got, _ := m.Get("z"); got != 3 {
		t.Errorf("expected z=3 at root, got %v", got)
	}
	if got, _ := m.Get("a"); got != 1 {
		t.Errorf("expected a=1 at root, got %v", got)
	}
	// Grafted plain maps are normalized to sorted key order.
	keys := m.Keys()
	if keys[0] != "a" || keys[1] != "z" {
		t.Errorf("expected sorted keys [a z], got %v", keys)
	}
}

func Test_Mapping_EmptyPathBareValue(t *testing.T) {
	m := New()
	m.Set(nil, 7)

	bare, ok := m.Bare()
	if !ok {
		t.Fatal("expected bare root value")
	}
	if bare != 7 {
		t.Errorf("expected 7, got %v", bare)
	}
}

func Test_Mapping_FromMapSortsKeys(t *testing.T) {
	m := FromMap(map[string]any{"c": 3, "a": 1, "b": 2})

	keys := m.Keys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func Test_Mapping_MarshalJSON_OrderedKeys(t *testing.T) {
	m := New()
	m.Set([]string{"b"}, 1)
	m.Set([]string{"a", "nested"}, 2)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"b":1,"a":{"nested":2}}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, string(data))
	}
}

func Test_Mapping_MarshalJSON_BareValue(t *testing.T) {
	m := New()
	m.Set(nil, "hello")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"hello"` {
		t.Errorf("expected quoted hello, got %s", string(data))
	}
}

func Test_Mapping_MarshalYAML_OrderedKeys(t *testing.T) {
	m := New()
	m.Set([]string{"second"}, 2)
	m.Set([]string{"first"}, 1)

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "second: 2\nfirst: 1\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}
