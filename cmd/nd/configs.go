package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
	"github.com/signadot/ndict/eval"
	"github.com/signadot/ndict/format"
	"github.com/signadot/ndict/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='encode with color'"`
	WireOut    bool `cli:"name=wire desc='output in compact format'"`
	Indent     int  `cli:"name=indent desc='spaces per level of pretty output'"`
	Y          bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	YIn        bool `cli:"name=Y desc='input in yaml'"`
	Permissive bool `cli:"name=permissive desc='read scalars permissively'"`
	MaxIndex   int  `cli:"name=maxIndex desc='largest array index accepted'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// optSet reports whether the main option name was given on the command line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// parseOpts returns the decoding options for the input at path.  Without an
// explicit input format the extension of path decides.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat := format.FromExt(filepath.Ext(path))
	if cfg.YIn {
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	res := []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
	if cfg.Permissive {
		res = append(res, parse.ParseMode(dict.Permissive))
	}
	if cfg.optSet("maxIndex") {
		res = append(res, parse.ParseMaxIndex(cfg.MaxIndex))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.optSet("indent") {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor follows -color when given and otherwise colors terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.optSet("color") {
		return cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Verbose bool `cli:"name=v desc='log each merged file'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='line diff of the encoded documents'"`
	Patch   bool `cli:"name=patch desc='output a JSON Patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='patch is a JSON Merge Patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    eval.Env
	Expand bool `cli:"name=expand desc='expand $[...] in the documents instead of evaluating an expression'"`
	Null   bool `cli:"name=n desc='evaluate without an input document'"`

	Eval *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim  bool `cli:"name=trim desc='trim the results to the match'"`
	Globs bool `cli:"name=glob desc='match strings as glob patterns'"`
	Kinds bool `cli:"name=kinds desc='match scalars by kind only'"`
	File  bool `cli:"name=f desc='consider match a file path'"`
}
