package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
	"github.com/signadot/ndict/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Patch {
		return fmt.Errorf("%w: only one of -text, -patch may be specified", cli.ErrUsage)
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		y1, y2 = y2, y1
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *dict.Node) (bool, error) {
	if cfg.Text {
		opts := []encode.EncodeOption{
			encode.EncodeFormat(cfg.outFormat()),
			encode.EncodeWire(cfg.WireOut),
		}
		if cfg.optSet("indent") {
			opts = append(opts, encode.EncodeIndent(cfg.Indent))
		}
		ta, err := encode.String(a, opts...)
		if err != nil {
			return false, err
		}
		tb, err := encode.String(b, opts...)
		if err != nil {
			return false, err
		}
		if ta == tb {
			return false, nil
		}
		return true, writeLines(cfg, w, libdiff.DiffText(ta+"\n", tb+"\n"))
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Patch {
		out := &outputter{cfg: cfg.MainConfig, w: w}
		return true, out.put(libdiff.JSONPatch(changes))
	}
	return true, writeLines(cfg, w, libdiff.Format(changes))
}

// writeLines writes diff output, coloring lines by their first byte.
func writeLines(cfg *DiffConfig, w io.Writer, text string) error {
	if !cfg.useColor(w) {
		_, err := io.WriteString(w, text)
		return err
	}
	colors := map[byte]*color.Color{
		'+': color.New(color.FgGreen),
		'-': color.New(color.FgRed),
		'~': color.New(color.FgYellow),
	}
	for _, c := range colors {
		c.EnableColor()
	}
	for _, ln := range strings.SplitAfter(text, "\n") {
		if ln == "" {
			continue
		}
		if c := colors[ln[0]]; c != nil {
			ln = c.Sprint(strings.TrimSuffix(ln, "\n")) + "\n"
		}
		if _, err := io.WriteString(w, ln); err != nil {
			return err
		}
	}
	return nil
}
