// Package debug holds environment controlled debugging switches.
//
// Each switch is read once at start up from an NDICT_DEBUG_* variable
// holding a value accepted by strconv.ParseBool.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Merge bool
	Patch bool
	Match bool
	Eval  bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NDICT_DEBUG_PARSE")
	d.Merge = boolEnv("NDICT_DEBUG_MERGE")
	d.Patch = boolEnv("NDICT_DEBUG_PATCH")
	d.Match = boolEnv("NDICT_DEBUG_MATCH")
	d.Eval = boolEnv("NDICT_DEBUG_EVAL")
	d.Diff = boolEnv("NDICT_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
