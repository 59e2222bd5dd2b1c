package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ndict/debug"
	"github.com/signadot/ndict/dict"
	"github.com/signadot/ndict/encode"
)

// ExpandEnv expands the strings of node in place.  A string of the form
// .[expr] is replaced by the value of expr; $[expr] and .[expr] occurring
// inside a longer string are replaced by the text of the value.  Expressions
// see the same scope as in Eval, taken before any expansion, and getpath
// resolves paths relative to node.
func ExpandEnv(node *dict.Node, env Env) error {
	if node == nil {
		return nil
	}
	return expand(node, node, nil, scope(node, env))
}

func expand(root, node *dict.Node, path []dict.PathElem, env Env) error {
	switch node.Kind {
	case dict.ObjectKind:
		for k, v := range node.All() {
			if err := expand(root, v, append(path, dict.PathElem{Key: k}), env); err != nil {
				return err
			}
		}
	case dict.ArrayKind:
		for i := 0; i < node.Count(); i++ {
			if err := expand(root, node.At(i), append(path, dict.PathElem{Index: i, IsIndex: true}), env); err != nil {
				return err
			}
		}
	case dict.StringKind:
		where := dict.FormatPath(path)
		if raw := GetRaw(node.Raw); raw != "" {
			val, err := run(raw, root, where, env)
			if err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
			if err := node.Set(val); err != nil {
				return fmt.Errorf("%w: %s: result of %q: %w", ErrEval, where, raw, err)
			}
			return nil
		}
		xs, err := expandString(node.Raw, root, where, env)
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		node.SetString(xs)
	}
	return nil
}

// GetRaw returns expr for a string of the form .[expr] and "" otherwise.
func GetRaw(v string) string {
	if !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}

// ExpandString expands $[...] and .[...] expressions in v.
//
// Within an expression a backslash escapes the next character, so \] does
// not close it.  An expression without a closing ] is left as it is.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, dict.New(), "", env)
}

func expandString(v string, root *dict.Node, where string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1
	i := 0
	n := len(v)
	var outBuf []byte
	var keyBuf []byte

	eval := func() error {
		key := strings.TrimSpace(string(keyBuf))
		x, err := run(key, root, where, env)
		if err != nil {
			return err
		}
		d, err := anyToBytes(x)
		if err != nil {
			return fmt.Errorf("%w: could not render result of %s: %w", ErrEval, key, err)
		}
		outBuf = append(outBuf, d...)
		exprStart = -1
		return nil
	}

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$', '.':
			if next == '[' && exprStart == -1 {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				if err := eval(); err != nil {
					return "", err
				}
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	if exprStart == -1 {
		if i < n {
			outBuf = append(outBuf, v[n-1])
		}
		return string(outBuf), nil
	}
	if i >= n || v[n-1] != ']' {
		outBuf = append(outBuf, v[exprStart:]...)
		return string(outBuf), nil
	}
	if err := eval(); err != nil {
		return "", err
	}
	return string(outBuf), nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return []byte("null"), nil
	case string:
		return []byte(x), nil
	case float64:
		return []byte(dict.FormatFloat(x)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	default:
		node, err := dict.FromAny(v)
		if err != nil {
			return nil, err
		}
		s, err := encode.String(node, encode.EncodeWire(true))
		if err != nil {
			return nil, err
		}
		if debug.Eval() {
			debug.Logf("rendered %T as %s\n", v, s)
		}
		return []byte(s), nil
	}
}
