package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns the character level difference of two strings, cleaned
// up for readability.
func DiffString(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// DiffText returns a line diff of two texts.  Each line of the result is
// prefixed by "-" when only in from, "+" when only in to, and " " otherwise.
func DiffText(from, to string) string {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return out.String()
}
