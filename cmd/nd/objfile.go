package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
	"github.com/signadot/ndict/parse"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("\n---\n")

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*dict.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// getDocs decodes the documents of path, which are separated by "---" lines.
func getDocs(cfg *MainConfig, cc *cli.Context, path string) ([]*dict.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	parts := bytes.Split(d, docSep)
	res := make([]*dict.Node, 0, len(parts))
	for i, part := range parts {
		if len(bytes.TrimSpace(part)) == 0 && len(parts) > 1 {
			continue
		}
		doc, err := parse.Parse(part, cfg.parseOpts(path)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, doc)
	}
	return res, nil
}

// eachDoc calls f on every document of files, or of stdin when there are
// no files.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(*dict.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := getDocs(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for _, doc := range docs {
			if err := f(doc); err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
	}
	return nil
}

// outputter writes documents separated by "---" lines.
type outputter struct {
	cfg *MainConfig
	w   io.Writer
	n   int
}

func (o *outputter) put(doc *dict.Node) error {
	if o.n > 0 {
		if _, err := o.w.Write([]byte("---\n")); err != nil {
			return fmt.Errorf("error writing document %d: %w", o.n, err)
		}
	}
	o.n++
	if err := encode.Encode(doc, o.w, o.cfg.encOpts(o.w)...); err != nil {
		return fmt.Errorf("error encoding result %d: %w", o.n-1, err)
	}
	if o.cfg.outFormat().IsJSON() {
		if _, err := o.w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
