package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/format"
)

func stage() *dict.Node {
	n := dict.New()
	n.Key("string").SetString("string")
	n.Key("int").SetInt(123)
	n.Key("float").SetFloat(123.456)
	n.Key("bool").SetBool(true)
	n.Key("null")
	n.Key("intarray").Set([]int{0, 1, 2})
	n.Key("outer").Key("inner").Key("value1").SetString("hello")
	return n
}

func TestEncodePretty(t *testing.T) {
	want := `{
    "string" : "string",
    "int" : 123,
    "float" : 123.456,
    "bool" : true,
    "null" : null,
    "intarray" : [0,1,2],
    "outer" : {
        "inner" : {
            "value1" : "hello"
        }
    }
}`
	got, err := String(stage())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	n := dict.New()
	n.Key("a").Key("b").SetInt(1)
	tests := []struct {
		indent int
		want   string
	}{
		{2, "{\n  \"a\" : {\n    \"b\" : 1\n  }\n}"},
		{0, "{\n\"a\" : {\n\"b\" : 1\n}\n}"},
		{-3, "{\n\"a\" : {\n\"b\" : 1\n}\n}"},
	}
	for _, tt := range tests {
		if got := MustString(n, EncodeIndent(tt.indent)); got != tt.want {
			t.Errorf("indent %d: got %q want %q", tt.indent, got, tt.want)
		}
	}
}

func TestEncodeArrays(t *testing.T) {
	n := dict.New()
	arr := n.Key("a")
	arr.MustIndex(0).SetString("x")
	arr.MustIndex(1).Key("k").SetInt(1)
	arr.MustIndex(2).MustIndex(0).SetBool(false)
	arr.MustIndex(4).SetFloat(0.5)
	n.Key("e").MakeArray()
	n.Key("o").MakeObject()
	want := "{\n" +
		"    \"a\" : [\"x\",{\n" +
		"            \"k\" : 1\n" +
		"        },[false],null,0.5],\n" +
		"    \"e\" : [],\n" +
		"    \"o\" : {\n" +
		"    }\n" +
		"}"
	if got := MustString(n); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeRoots(t *testing.T) {
	tests := []struct {
		name string
		node *dict.Node
		want string
		wire string
	}{
		{"null", dict.New(), "{\n}", "{}"},
		{"empty object", dict.New().MakeObject(), "{\n}", "{}"},
		{"string", dict.New().SetString("s"), `"s"`, `"s"`},
		{"number", dict.New().SetInt(-2), "-2", "-2"},
		{"array", dict.New().MakeArray(), "[]", "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.node); got != tt.want {
				t.Errorf("pretty %q want %q", got, tt.want)
			}
			if got := MustString(tt.node, EncodeWire(true)); got != tt.wire {
				t.Errorf("wire %q want %q", got, tt.wire)
			}
		})
	}
}

func TestEncodeWire(t *testing.T) {
	want := `{"string":"string","int":123,"float":123.456,"bool":true,"null":null,"intarray":[0,1,2],"outer":{"inner":{"value1":"hello"}}}`
	if got := MustString(stage(), EncodeWire(true)); got != want {
		t.Errorf("got %s", got)
	}
}

func TestEncodeVerbatimStrings(t *testing.T) {
	n := dict.New()
	n.Key(`q"k`).SetString(`st\"ring`)
	if got := MustString(n, EncodeWire(true)); got != `{"q"k":"st\"ring"}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeColors(t *testing.T) {
	tag := func(name string) func(string, ...any) string {
		return func(s string, _ ...any) string { return "<" + name + ">" + s }
	}
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Kind: dict.NumberKind, Attr: ValueColor}: tag("n"),
			{Kind: dict.ObjectKind, Attr: FieldColor}: tag("f"),
		},
	}
	n := dict.New()
	n.Key("a").SetInt(1)
	n.Key("b").SetString("x")
	got := MustString(n, EncodeWire(true), EncodeColors(colors))
	if got != `{<f>"a":<n>1,<f>"b":"x"}` {
		t.Errorf("got %s", got)
	}
	if plain := MustString(n, EncodeWire(true), EncodeColors(nil)); plain != `{"a":1,"b":"x"}` {
		t.Errorf("got %s", plain)
	}
	if NewColors().Get(dict.StringKind, FieldColor) == nil {
		t.Error("missing default color")
	}
}

func TestEncodeYAML(t *testing.T) {
	n := dict.New()
	n.Key("b").SetInt(1)
	n.Key("a").Set([]string{"x", "w"})
	n.Key("q").SetString("y")
	n.Key("f").SetFloat(2.5)
	n.Key("t").SetBool(true)
	n.Key("z")
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"b: 1\n", "- x\n", "- w\n", "q: \"y\"\n", "f: 2.5\n", "t: true\n", "z: null\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
	if strings.Index(got, "b:") > strings.Index(got, "a:") {
		t.Errorf("key order not kept:\n%s", got)
	}
}

func TestEncodeNil(t *testing.T) {
	if _, err := String(nil); err == nil {
		t.Error("expected error for nil node")
	}
	if FormatSuffix(format.YAMLFormat) != ".yaml" || FormatSuffix(FormatFromOpts()) != ".json" {
		t.Error("suffix")
	}
}
