package eval

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

type Env = map[string]any

// SetEnv assigns a "path=value" argument to env.  The value is decoded as
// YAML, so that numbers, booleans, lists and maps keep their types.  Dots in
// path select nested maps, which are created as needed.
func SetEnv(env Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", ErrEnv, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEnv, key, err)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if part == "" {
			return fmt.Errorf("%w: empty name in %q", ErrEnv, key)
		}
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: cannot access %s, list or scalar", ErrEnv, strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
