package dict

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stage() *Node {
	object := New()
	object.Key("string").SetString("string")
	object.Key("int").SetInt(123)
	object.Key("float").SetFloat(123.456)
	object.Key("object").Key("value1").SetString("value1")
	object.Key("object").Key("value2").SetString("value2")
	object.Key("object").Key("value3").SetString("value3")
	object.Key("outer").Key("inner").Key("value1").SetString("value1")
	object.Key("outer").Key("inner").Key("value2").SetString("value2")
	object.Key("outer").Key("inner").Key("value3").SetString("value3")
	return object
}

func mustString(t *testing.T, n *Node) string {
	t.Helper()
	s, err := n.AsString()
	if err != nil {
		t.Fatalf("AsString: %v", err)
	}
	return s
}

func mustInt(t *testing.T, n *Node) int64 {
	t.Helper()
	i, err := n.AsInt()
	if err != nil {
		t.Fatalf("AsInt: %v", err)
	}
	return i
}

func TestEmptyNode(t *testing.T) {
	var n Node
	if n.Kind != NullKind {
		t.Errorf("zero node kind %s", n.Kind)
	}
	if n.Count() != 0 {
		t.Errorf("zero node count %d", n.Count())
	}
}

func TestLazyObjectGrowth(t *testing.T) {
	root := New()
	root.Key("a").Key("b").SetString("x")
	if root.Count() != 1 {
		t.Errorf("root count %d", root.Count())
	}
	if root.Key("a").Count() != 1 {
		t.Errorf("a count %d", root.Key("a").Count())
	}
	if got := mustString(t, root.Key("a").Key("b")); got != "x" {
		t.Errorf("got %q", got)
	}
	if root.Kind != ObjectKind || root.Key("a").Kind != ObjectKind {
		t.Errorf("kinds %s %s", root.Kind, root.Key("a").Kind)
	}
}

func TestDictionary(t *testing.T) {
	object := stage()
	check := func(t *testing.T, object *Node) {
		if object.Count() != 5 {
			t.Errorf("root count %d", object.Count())
		}
		if got := mustString(t, object.Key("string")); got != "string" {
			t.Errorf("string %q", got)
		}
		if got := mustInt(t, object.Key("int")); got != 123 {
			t.Errorf("int %d", got)
		}
		if f, err := object.Key("float").AsFloat(); err != nil || f != 123.456 {
			t.Errorf("float %v %v", f, err)
		}
		if object.Key("object").Count() != 3 {
			t.Errorf("object count %d", object.Key("object").Count())
		}
		if object.Key("outer").Count() != 1 {
			t.Errorf("outer count %d", object.Key("outer").Count())
		}
		inner := object.Key("outer").Key("inner")
		if diff := cmp.Diff([]string{"value1", "value2", "value3"}, inner.Keys()); diff != "" {
			t.Errorf("inner keys (-want +got):\n%s", diff)
		}
		for _, k := range inner.Keys() {
			if got := mustString(t, inner.Key(k)); got != k {
				t.Errorf("inner %s = %q", k, got)
			}
		}
	}
	t.Run("original", func(t *testing.T) { check(t, object) })
	t.Run("copy", func(t *testing.T) { check(t, object.Clone()) })
}

func TestCloneIsDeep(t *testing.T) {
	object := stage()
	cp := object.Clone()
	cp.Key("outer").Key("inner").Key("value1").SetString("changed")
	cp.Key("added").SetBool(true)
	if got := mustString(t, object.Key("outer").Key("inner").Key("value1")); got != "value1" {
		t.Errorf("original changed through copy: %q", got)
	}
	if object.Has("added") {
		t.Error("original gained key through copy")
	}
	if !Equal(object, stage()) {
		t.Error("original not equal to fresh stage")
	}
}

func TestArrayBackfill(t *testing.T) {
	root := New()
	c, err := root.Index(3)
	if err != nil {
		t.Fatal(err)
	}
	c.SetString("x")
	if root.Kind != ArrayKind {
		t.Fatalf("kind %s", root.Kind)
	}
	if root.Count() != 4 {
		t.Fatalf("count %d", root.Count())
	}
	for i := 0; i < 3; i++ {
		if k := root.At(i).Kind; k != NullKind {
			t.Errorf("[%d] kind %s", i, k)
		}
	}
	if diff := cmp.Diff([]string{"0", "1", "2", "3"}, root.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := mustString(t, root.At(3)); got != "x" {
		t.Errorf("[3] = %q", got)
	}
}

func TestArrayBounds(t *testing.T) {
	root := New()
	if _, err := root.Index(DefaultMaxIndex); err != nil {
		t.Fatalf("index at max: %v", err)
	}
	if _, err := root.Index(DefaultMaxIndex + 1); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex, got %v", err)
	}
	if _, err := root.Index(-1); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex, got %v", err)
	}

	small := New(MaxIndex(2))
	if _, err := small.Key("a").Index(2); err != nil {
		t.Fatalf("inherited max: %v", err)
	}
	if _, err := small.Key("a").Index(3); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex from inherited max, got %v", err)
	}
	if _, err := New(MaxIndex(0)).Index(1); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex with max 0, got %v", err)
	}
}

func TestTypeChangeDestroys(t *testing.T) {
	t.Run("array to object", func(t *testing.T) {
		n := New()
		n.MustIndex(0).SetInt(1)
		n.MustIndex(1).SetInt(2)
		n.Key("k").SetString("v")
		if n.Kind != ObjectKind || n.Count() != 1 {
			t.Fatalf("kind %s count %d", n.Kind, n.Count())
		}
		if diff := cmp.Diff([]string{"k"}, n.Keys()); diff != "" {
			t.Errorf("keys (-want +got):\n%s", diff)
		}
	})
	t.Run("object to array", func(t *testing.T) {
		n := New()
		n.Key("a").SetInt(1)
		n.Key("b").SetInt(2)
		n.MustIndex(0).SetString("x")
		if n.Kind != ArrayKind || n.Count() != 1 {
			t.Fatalf("kind %s count %d", n.Kind, n.Count())
		}
		if n.Has("a") {
			t.Error("object member survived")
		}
	})
	t.Run("scalar to object", func(t *testing.T) {
		n := New().SetString("s")
		n.Key("k")
		if n.Kind != ObjectKind || n.Raw != "" {
			t.Errorf("kind %s raw %q", n.Kind, n.Raw)
		}
	})
	t.Run("object to scalar", func(t *testing.T) {
		n := New()
		n.Key("a").SetInt(1)
		n.SetBool(true)
		if n.Kind != BoolKind || n.Count() != 0 {
			t.Errorf("kind %s count %d", n.Kind, n.Count())
		}
	})
}

func TestClear(t *testing.T) {
	n := stage()
	n.Clear()
	if n.Kind != NullKind || n.Count() != 0 || n.Raw != "" {
		t.Errorf("cleared node: kind %s count %d raw %q", n.Kind, n.Count(), n.Raw)
	}
}

func TestGetDoesNotCreate(t *testing.T) {
	n := New()
	if n.Get("a") != nil || n.At(0) != nil || n.Has("a") {
		t.Fatal("lookup on empty node found something")
	}
	if n.Kind != NullKind {
		t.Errorf("lookup changed kind to %s", n.Kind)
	}
}

func TestDelete(t *testing.T) {
	n := stage()
	if !n.Delete("int") {
		t.Fatal("delete reported missing key")
	}
	if n.Delete("int") {
		t.Fatal("second delete reported existing key")
	}
	if diff := cmp.Diff([]string{"string", "float", "object", "outer"}, n.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestAll(t *testing.T) {
	n := New()
	n.Key("b").SetInt(1)
	n.Key("a").SetInt(2)
	var keys []string
	for k, v := range n.All() {
		keys = append(keys, k+"="+v.Raw)
	}
	if diff := cmp.Diff([]string{"b=1", "a=2"}, keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("%s read back as %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Comment")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
