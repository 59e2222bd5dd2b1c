package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/token"
)

const sample = `{
   "bool" : true,
   "string" : "string",
   "sstring" : "st ring",
   "qstring" : "st\"ring",
   "int" : 123,
   "float" : 123.456000,
   "intarray" : [0,1,2,3,4],
   "strarray" : ["a","b","c"],
   "outer" : {
       "inner" : {
           "value1" : "hello",
           "value2" : "world",
           "value3" : "!!!"
       }
   }
}
`

func mustParse(t *testing.T, in string, opts ...ParseOption) *dict.Node {
	t.Helper()
	n, err := ParseString(in, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return n
}

func lookup(t *testing.T, n *dict.Node, path string) *dict.Node {
	t.Helper()
	res, err := n.Lookup(path)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestParseSample(t *testing.T) {
	n := mustParse(t, sample)
	if n.Count() != 9 {
		t.Fatalf("root count %d", n.Count())
	}
	want := []string{"bool", "string", "sstring", "qstring", "int", "float", "intarray", "strarray", "outer"}
	if diff := cmp.Diff(want, n.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	scalars := []struct {
		path string
		kind dict.Kind
		raw  string
	}{
		{"bool", dict.BoolKind, "true"},
		{"string", dict.StringKind, "string"},
		{"sstring", dict.StringKind, "st ring"},
		{"qstring", dict.StringKind, `st\"ring`},
		{"int", dict.NumberKind, "123"},
		{"float", dict.NumberKind, "123.456"},
		{"intarray[3]", dict.NumberKind, "3"},
		{"strarray[2]", dict.StringKind, "c"},
		{"outer.inner.value1", dict.StringKind, "hello"},
		{"outer.inner.value3", dict.StringKind, "!!!"},
	}
	for _, s := range scalars {
		got := lookup(t, n, s.path)
		if got.Kind != s.kind || got.Raw != s.raw {
			t.Errorf("%s: got %s %q, want %s %q", s.path, got.Kind, got.Raw, s.kind, s.raw)
		}
	}
	if f, err := n.Key("float").AsFloat(); err != nil || f != 123.456 {
		t.Errorf("float %v %v", f, err)
	}
	if n.Key("intarray").Count() != 5 || n.Key("strarray").Count() != 3 {
		t.Errorf("array counts %d %d", n.Key("intarray").Count(), n.Key("strarray").Count())
	}
	if n.Key("outer").Count() != 1 || n.Key("outer").Key("inner").Count() != 3 {
		t.Error("nested counts")
	}
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		in    string
		check func(t *testing.T, n *dict.Node)
	}{
		{
			in: `{"int":123,"arr":[1,2,3]}`,
			check: func(t *testing.T, n *dict.Node) {
				if n.Count() != 2 || n.Key("arr").Count() != 3 {
					t.Errorf("counts %d %d", n.Count(), n.Key("arr").Count())
				}
				if i, _ := n.Key("arr").At(1).AsInt(); i != 2 {
					t.Errorf("arr[1] %d", i)
				}
			},
		},
		{
			in: "{}",
			check: func(t *testing.T, n *dict.Node) {
				if n.Kind != dict.ObjectKind || n.Count() != 0 {
					t.Errorf("kind %s count %d", n.Kind, n.Count())
				}
			},
		},
		{
			in: `{"a":[],"b":{}}`,
			check: func(t *testing.T, n *dict.Node) {
				if n.Get("a").Kind != dict.ArrayKind || n.Get("a").Count() != 0 {
					t.Errorf("a: %s %d", n.Get("a").Kind, n.Get("a").Count())
				}
				if n.Get("b").Kind != dict.ObjectKind || n.Get("b").Count() != 0 {
					t.Errorf("b: %s %d", n.Get("b").Kind, n.Get("b").Count())
				}
			},
		},
		{
			in: `{"a":[[1,2],[3,[4,5]],{"x":"y,z"}]}`,
			check: func(t *testing.T, n *dict.Node) {
				if n.Key("a").Count() != 3 {
					t.Fatalf("count %d", n.Key("a").Count())
				}
				if i, _ := n.Key("a").At(1).At(1).At(0).AsInt(); i != 4 {
					t.Errorf("a[1][1][0] = %d", i)
				}
				if s, _ := n.Key("a").At(2).Key("x").AsString(); s != "y,z" {
					t.Errorf("a[2].x = %q", s)
				}
			},
		},
		{
			in: `{"t":TRUE,"f":False,"n":null,"N":NULL}`,
			check: func(t *testing.T, n *dict.Node) {
				if n.Get("t").Raw != "true" || n.Get("f").Raw != "false" {
					t.Errorf("bools %q %q", n.Get("t").Raw, n.Get("f").Raw)
				}
				if n.Get("n").Kind != dict.NullKind || n.Get("N").Kind != dict.NullKind {
					t.Error("null not Null")
				}
				if n.Count() != 4 {
					t.Errorf("count %d", n.Count())
				}
			},
		},
		{
			in: `{"neg":-5,"negf":-0.25,"big":123456789012345678901234567890,"lead":007}`,
			check: func(t *testing.T, n *dict.Node) {
				for k, want := range map[string]string{
					"neg":  "-5",
					"negf": "-0.25",
					"big":  "123456789012345678901234567890",
					"lead": "7",
				} {
					if got := n.Get(k).Raw; got != want {
						t.Errorf("%s = %q, want %q", k, got, want)
					}
				}
			},
		},
		{
			in: `{"a":1,"a":{"b":2}}`,
			check: func(t *testing.T, n *dict.Node) {
				if n.Count() != 1 || n.Get("a").Kind != dict.ObjectKind {
					t.Errorf("duplicate key: count %d kind %s", n.Count(), n.Get("a").Kind)
				}
			},
		},
		{
			in: `{"a":[1,2,],"b":3,}`,
			check: func(t *testing.T, n *dict.Node) {
				if n.Count() != 2 || n.Get("a").Count() != 2 {
					t.Errorf("trailing commas: %d %d", n.Count(), n.Get("a").Count())
				}
			},
		},
		{
			in: `{"k}":"v]","e":"\\"}`,
			check: func(t *testing.T, n *dict.Node) {
				if n.Get("k}").Raw != "v]" || n.Get("e").Raw != `\\` {
					t.Errorf("got %q %q", n.Get("k}").Raw, n.Get("e").Raw)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tt.check(t, mustParse(t, tt.in))
		})
	}
}

func TestTrailingComma(t *testing.T) {
	n := mustParse(t, `{
   "bool" : true,
   "string" : "string",
   "int" : 123,
   "float" : 123.456000,
   "intarray" : [0,1,2,3,4],
}
`)
	if n.Count() != 5 {
		t.Errorf("count %d", n.Count())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		e    error
	}{
		{"empty", "", ErrSyntax},
		{"blank", " \n\t", ErrSyntax},
		{"not an object", `[1,2]`, ErrSyntax},
		{"scalar", `123`, ErrSyntax},
		{"trailing junk", "{\n   \"bool\" : true,\n}xx\n", ErrSyntax},
		{"second document", `{}{}`, ErrSyntax},
		{"bad keyword", "{\n   \"bool\" : rue,\n}\n", ErrInvalidValue},
		{"decimal comma", "{\n   \"bool\" : true,\n   \"float\" : 123,456000,\n}\n", ErrSyntax},
		{"unclosed", `{"a":1`, ErrSyntax},
		{"unclosed nested", `{"a":{"b":1}`, ErrSyntax},
		{"unterminated key", `{"a`, ErrSyntax},
		{"unquoted key", `{a:1}`, ErrSyntax},
		{"missing colon", `{"a" 1}`, ErrSyntax},
		{"missing comma", `{"a":"x""b":1}`, ErrSyntax},
		{"junk after block", `{"a":[1]x}`, ErrSyntax},
		{"missing value", `{"a":}`, ErrInvalidValue},
		{"missing value before comma", `{"a":,"b":1}`, ErrInvalidValue},
		{"empty element", `{"a":[1,,2]}`, ErrInvalidValue},
		{"junk after string element", `{"a":["x"y]}`, ErrSyntax},
		{"junk after block element", `{"a":[[1]2]}`, ErrSyntax},
		{"exponent", `{"a":1e5}`, ErrInvalidValue},
		{"number with suffix", `{"a":12abc}`, ErrInvalidValue},
		{"bare fraction", `{"a":1.}`, ErrInvalidValue},
		{"bad element", `{"a":[1,two]}`, ErrInvalidValue},
		{"unclosed array", `{"a":[1,2}`, ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			if !errors.Is(err, tt.e) {
				t.Errorf("got %v, want %v", err, tt.e)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	in := "{\n   \"bool\" : rue,\n}\n"
	_, err := ParseString(in)
	var se *token.ScanErr
	if !errors.As(err, &se) {
		t.Fatalf("no position in %v", err)
	}
	if se.Pos.Line() != 1 || se.Pos.Col() != 12 {
		t.Errorf("pos %d,%d", se.Pos.Line(), se.Pos.Col())
	}
	if !strings.Contains(err.Error(), "line=1, col=12") {
		t.Errorf("message %q", err.Error())
	}
}

func TestParseIndexLimit(t *testing.T) {
	if _, err := ParseString(`{"a":[1,2,3]}`, ParseMaxIndex(1)); !errors.Is(err, dict.ErrIndex) {
		t.Errorf("expected ErrIndex, got %v", err)
	}
	n := mustParse(t, `{"a":[1,2,3]}`, ParseMaxIndex(2))
	if n.Key("a").Count() != 3 {
		t.Errorf("count %d", n.Key("a").Count())
	}
}

func TestParseDepth(t *testing.T) {
	deep := `{"a":` + strings.Repeat("[", 20) + strings.Repeat("]", 20) + "}"
	if _, err := ParseString(deep, ParseMaxDepth(10)); !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth, got %v", err)
	}
	if _, err := ParseString(deep, ParseMaxDepth(21)); err != nil {
		t.Errorf("depth 21: %v", err)
	}
	hostile := strings.Repeat(`{"a":`, DefaultMaxDepth+1) + "1" + strings.Repeat("}", DefaultMaxDepth+1)
	if _, err := ParseString(hostile); !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth by default, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	n := mustParse(t, `{"s":"x","o":{"p":"y"}}`, ParseMode(dict.Permissive))
	if i, err := n.Key("o").Key("p").AsInt(); err != nil || i != 0 {
		t.Errorf("permissive: %d %v", i, err)
	}
	n = mustParse(t, `{"s":"x"}`)
	if _, err := n.Key("s").AsInt(); !errors.Is(err, dict.ErrTypeMismatch) {
		t.Errorf("strict: %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	in := "{\n  \"a\": [1, \"x\"],\n  \"b\": {\"c\": true}\n}"
	positions := map[*dict.Node]*token.Pos{}
	n := mustParse(t, in, ParsePositions(positions))
	tests := []struct {
		path      string
		line, col int
	}{
		{"a", 1, 7},
		{"a[1]", 1, 11},
		{"b.c", 2, 13},
	}
	for _, tt := range tests {
		pos := positions[lookup(t, n, tt.path)]
		if pos == nil {
			t.Errorf("%s: no position", tt.path)
			continue
		}
		if pos.Line() != tt.line || pos.Col() != tt.col {
			t.Errorf("%s: %d,%d want %d,%d", tt.path, pos.Line(), pos.Col(), tt.line, tt.col)
		}
	}
	if positions[n] == nil || positions[n].I != 0 {
		t.Error("root position")
	}
}
