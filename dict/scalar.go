package dict

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

func (n *Node) setScalar(k Kind, raw string) *Node {
	n.reset(k)
	n.Raw = raw
	return n
}

// SetString stores s verbatim as a string.
func (n *Node) SetString(s string) *Node {
	return n.setScalar(StringKind, s)
}

func (n *Node) SetInt(i int64) *Node {
	return n.setScalar(NumberKind, strconv.FormatInt(i, 10))
}

func (n *Node) SetUint(u uint64) *Node {
	return n.setScalar(NumberKind, strconv.FormatUint(u, 10))
}

// SetFloat stores f in its shortest decimal form.  NaN and infinities have no
// JSON representation and leave n Null.
func (n *Node) SetFloat(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		n.reset(NullKind)
		return n
	}
	return n.setScalar(NumberKind, FormatFloat(f))
}

// SetNumber stores raw as the text of a number without checking it.
func (n *Node) SetNumber(raw string) *Node {
	return n.setScalar(NumberKind, raw)
}

func (n *Node) SetBool(b bool) *Node {
	return n.setScalar(BoolKind, strconv.FormatBool(b))
}

// FormatFloat renders f without exponent, always with a decimal point so the
// text reads back as a floating point number.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Set assigns v to n.  Scalars map onto the matching Set method, slices and
// arrays become arrays, maps with string keys become objects with sorted keys,
// a *Node is deep copied and nil clears n.
func (n *Node) Set(v any) error {
	switch x := v.(type) {
	case nil:
		n.Clear()
		return nil
	case *Node:
		if x == nil {
			n.Clear()
			return nil
		}
		if x == n {
			return nil
		}
		x.copyInto(n)
		return nil
	case string:
		n.SetString(x)
		return nil
	case bool:
		n.SetBool(x)
		return nil
	case int:
		n.SetInt(int64(x))
		return nil
	case int64:
		n.SetInt(x)
		return nil
	case float64:
		n.SetFloat(x)
		return nil
	}
	return n.setValue(reflect.ValueOf(v))
}

func (n *Node) setValue(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Invalid:
		n.Clear()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			n.Clear()
			return nil
		}
		if x, ok := rv.Interface().(*Node); ok {
			return n.Set(x)
		}
		return n.setValue(rv.Elem())
	case reflect.String:
		n.SetString(rv.String())
	case reflect.Bool:
		n.SetBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n.SetInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n.SetUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		n.SetFloat(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			n.Clear()
			return nil
		}
		n.reset(ArrayKind)
		for i := 0; i < rv.Len(); i++ {
			c, err := n.Index(i)
			if err != nil {
				return err
			}
			if err := c.setValue(rv.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		if rv.IsNil() {
			n.Clear()
			return nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		n.reset(ObjectKind)
		for _, k := range keys {
			mv := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			if err := n.Key(k).setValue(mv); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
	}
	return nil
}

// check applies the accessor policy of n for a read of kind k.  A false
// result with a nil error means the caller should return the zero value.
func (n *Node) check(k Kind) (bool, error) {
	if n.Kind == k {
		return true, nil
	}
	if n.mode == Permissive {
		return false, nil
	}
	if n.Kind == NullKind {
		return false, ErrNotSet
	}
	return false, fmt.Errorf("%w: %s is not %s", ErrTypeMismatch, n.Kind, kindNoun(k))
}

func kindNoun(k Kind) string {
	switch k {
	case NumberKind:
		return "numeric"
	case BoolKind:
		return "boolean"
	default:
		return strings.ToLower(k.String())
	}
}

func (n *Node) AsString() (string, error) {
	ok, err := n.check(StringKind)
	if !ok {
		return "", err
	}
	return n.Raw, nil
}

// AsInt returns the integer value of a number.  The fractional part of a
// floating point number is dropped.
func (n *Node) AsInt() (int64, error) {
	ok, err := n.check(NumberKind)
	if !ok {
		return 0, err
	}
	return Atoi(n.Raw), nil
}

func (n *Node) AsFloat() (float64, error) {
	ok, err := n.check(NumberKind)
	if !ok {
		return 0, err
	}
	return Atof(n.Raw), nil
}

func (n *Node) AsBool() (bool, error) {
	ok, err := n.check(BoolKind)
	if !ok {
		return false, err
	}
	if strings.EqualFold(n.Raw, "true") {
		return true, nil
	}
	return Atoi(n.Raw) != 0, nil
}

// Atoi converts the longest integer prefix of s, after leading white space,
// returning 0 when there is none.  Out of range values saturate.
func Atoi(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	v, _ := strconv.ParseInt(s[:i], 10, 64)
	return v
}

// Atof converts the longest decimal floating point prefix of s, after leading
// white space, returning 0 when there is none.
func Atof(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	v, _ := strconv.ParseFloat(s[:i], 64)
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
