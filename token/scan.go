package token

import "fmt"

// Quoted returns the string starting at buf[pos], which must be '"', up to
// and including the matching unescaped closing quote.
func Quoted(buf string, pos int) (string, error) {
	if pos >= len(buf) || buf[pos] != '"' {
		return "", fmt.Errorf("%w: expected quoted string", ErrSyntax)
	}
	escaped := false
	for i := pos + 1; i < len(buf); i++ {
		switch {
		case escaped:
			escaped = false
		case buf[i] == '\\':
			escaped = true
		case buf[i] == '"':
			return buf[pos : i+1], nil
		}
	}
	return "", fmt.Errorf("%w: %w quoted string", ErrSyntax, ErrUnterminated)
}

// Unquoted returns the bare token starting at buf[pos]: everything up to the
// next ',' or '}', or the rest of buf.
func Unquoted(buf string, pos int) string {
	for i := pos; i < len(buf); i++ {
		switch buf[i] {
		case ',', '}':
			return buf[pos:i]
		}
	}
	return buf[pos:]
}

// Block returns the object or array starting at buf[pos] through its
// matching closing bracket.  Brackets inside strings are ignored.
func Block(buf string, pos int) (string, error) {
	if pos >= len(buf) {
		return "", fmt.Errorf("%w: expected object or array", ErrSyntax)
	}
	beg := buf[pos]
	var end byte
	switch beg {
	case '{':
		end = '}'
	case '[':
		end = ']'
	default:
		return "", fmt.Errorf("%w: invalid block %q", ErrSyntax, beg)
	}
	quoted, escaped := false, false
	depth := 0
	for i := pos + 1; i < len(buf); i++ {
		c := buf[i]
		if quoted {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '"':
			quoted = true
		case beg:
			depth++
		case end:
			if depth == 0 {
				return buf[pos : i+1], nil
			}
			depth--
		}
	}
	if beg == '{' {
		return "", fmt.Errorf("%w: object incorrectly formatted", ErrSyntax)
	}
	return "", fmt.Errorf("%w: array incorrectly formatted", ErrSyntax)
}

// Split splits buf, the inside of an array, at commas that are neither
// quoted nor nested in a bracket.  An empty buf yields no elements.
// Elements are contiguous: element i+1 starts one byte after element i ends.
func Split(buf string) []string {
	if buf == "" {
		return nil
	}
	var res []string
	quoted, escaped := false, false
	depth, start := 0, 0
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if quoted {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '"':
			quoted = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, buf[start:i])
				start = i + 1
			}
		}
	}
	return append(res, buf[start:])
}
