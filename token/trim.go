package token

import "strings"

// Trim removes all white space outside of double quoted strings.  Inside a
// string, a backslash escapes the following byte; outside of strings it has
// no special meaning and is kept as is.
func Trim(buf string) string {
	var b strings.Builder
	b.Grow(len(buf))
	trim(buf, func(i int) { b.WriteByte(buf[i]) })
	return b.String()
}

// TrimMap is like Trim but also returns, for each byte of the result, its
// offset in buf.
func TrimMap(buf string) (string, []int) {
	var b strings.Builder
	b.Grow(len(buf))
	offs := make([]int, 0, len(buf))
	trim(buf, func(i int) {
		b.WriteByte(buf[i])
		offs = append(offs, i)
	})
	return b.String(), offs
}

func trim(buf string, keep func(int)) {
	quoted, escaped := false, false
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		switch {
		case escaped:
			escaped = false
		case quoted && c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case !quoted && isSpace(c):
			continue
		}
		keep(i)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
