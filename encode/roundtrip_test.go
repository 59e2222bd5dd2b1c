package encode_test

import (
	"testing"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
	"github.com/signadot/ndict/format"
	"github.com/signadot/ndict/parse"
)

func roundTripTree() *dict.Node {
	n := dict.New()
	n.Key("string").SetString("string")
	n.Key("escaped").SetString(`a\"b\\`)
	n.Key("int").SetInt(-123)
	n.Key("float").SetFloat(123.456)
	n.Key("bool").SetBool(false)
	n.Key("object").Key("value1").SetString("value1")
	n.Key("object").Key("value2").SetInt(2)
	n.Key("nested").MustIndex(0).MustIndex(1).SetString("x,y")
	n.Key("nested").MustIndex(0).MustIndex(0).SetString("]")
	n.Key("nested").MustIndex(1).Key("k").SetString("}")
	n.Key("empty").MakeObject()
	n.Key("none").MakeArray()
	return n
}

func TestRoundTrip(t *testing.T) {
	opts := [][]encode.EncodeOption{
		nil,
		{encode.EncodeIndent(1)},
		{encode.EncodeWire(true)},
	}
	for _, o := range opts {
		tree := roundTripTree()
		text := encode.MustString(tree, o...)
		back, err := parse.ParseString(text)
		if err != nil {
			t.Fatalf("parse %s: %v", text, err)
		}
		if !dict.Equal(tree, back) {
			t.Errorf("round trip changed tree:\n%s\n%s", text, encode.MustString(back))
		}
	}
}

func TestRoundTripYAML(t *testing.T) {
	tree := dict.New()
	tree.Key("s").SetString("string")
	tree.Key("i").SetInt(7)
	tree.Key("f").SetFloat(0.25)
	tree.Key("a").Set([]any{"x", int64(1), true})
	tree.Key("o").Key("p").SetString("q")
	text := encode.MustString(tree, encode.EncodeFormat(format.YAMLFormat))
	back, err := parse.ParseString(text, parse.ParseYAML())
	if err != nil {
		t.Fatalf("parse %s: %v", text, err)
	}
	if !dict.EqualValues(tree, back) {
		t.Errorf("yaml round trip changed tree:\n%s\n%s", text, encode.MustString(back))
	}
}
