package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
	"github.com/signadot/ndict/eval"
	"github.com/signadot/ndict/format"
	"github.com/signadot/ndict/libdiff"
	"github.com/signadot/ndict/parse"

	"github.com/scott-cotton/cli"
)

func mustParse(t *testing.T, s string) *dict.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func TestOutputter(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out := &outputter{cfg: &MainConfig{}, w: buf}
	if err := out.put(mustParse(t, `{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	arr := dict.New().MakeArray()
	arr.MustIndex(0).SetInt(1)
	arr.MustIndex(1).SetInt(2)
	if err := out.put(arr); err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\" : 1\n}\n---\n[1,2]\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestOutputterWire(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out := &outputter{cfg: &MainConfig{WireOut: true}, w: buf}
	if err := out.put(mustParse(t, `{"a" : [1, {"b":true}]}`)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\"a\":[1,{\"b\":true}]}\n" {
		t.Errorf("got %q", got)
	}
}

func TestParseOpts(t *testing.T) {
	cfg := &MainConfig{}
	n, err := parse.ParseString("a: 1\n", cfg.parseOpts("x.yaml")...)
	if err != nil {
		t.Fatal(err)
	}
	if n.Get("a").Raw != "1" {
		t.Errorf("got %s", encode.MustString(n, encode.EncodeWire(true)))
	}
	y := format.YAMLFormat
	cfg.InFormat = &y
	if _, err := parse.ParseString("b: x\n", cfg.parseOpts("x.json")...); err != nil {
		t.Errorf("explicit input format ignored: %v", err)
	}
}

func TestDiffInputs(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":"x"}`)
	b := mustParse(t, `{"a":2,"b":"x","c":null}`)
	cfg := &DiffConfig{MainConfig: &MainConfig{}}

	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(cfg, buf, a, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("equal inputs reported different: %q", buf.String())
	}

	differs, err = diffInputs(cfg, buf, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("expected difference")
	}
	if got, want := buf.String(), libdiff.Format(libdiff.Diff(a, b)); got != want {
		t.Errorf("got %q want %q", got, want)
	}

	buf.Reset()
	cfg.Patch = true
	if _, err := diffInputs(cfg, buf, a, b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"op" : "replace"`) {
		t.Errorf("patch output %q", buf.String())
	}

	buf.Reset()
	cfg.Patch = false
	cfg.Text = true
	if _, err := diffInputs(cfg, buf, a, b); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"-    \"a\" : 1,\n", "+    \"a\" : 2,\n", "+    \"c\" : null\n"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in\n%s", want, buf.String())
		}
	}
}

func TestWriteLinesColor(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	if err := writeLines(cfg, buf, "+ a: 1\n"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "+ a: 1\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEnvOpt(t *testing.T) {
	env := eval.Env{}
	f := envOptTypeFunc(env)
	if _, err := f(nil, "a.b=1"); err != nil {
		t.Fatal(err)
	}
	a, ok := env["a"].(map[string]any)
	if !ok || a["b"] != uint64(1) {
		t.Errorf("got %v", env)
	}
	if _, err := f(nil, "novalue"); !errors.Is(err, cli.ErrUsage) || !errors.Is(err, eval.ErrEnv) {
		t.Errorf("expected usage error, got %v", err)
	}
}
