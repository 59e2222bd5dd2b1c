package parse

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/ndict/dict"
)

// parseYAML decodes a YAML document into a tree.  Mapping order is kept and
// keys are rendered as strings.  Unlike JSON input, any kind of root value
// is accepted.
func parseYAML(d []byte, opts *parseOpts) (*dict.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	res := opts.newNode()
	if err := fromYAML(res, v, 0, opts); err != nil {
		return nil, err
	}
	return res, nil
}

func fromYAML(n *dict.Node, v any, depth int, opts *parseOpts) error {
	switch x := v.(type) {
	case yaml.MapSlice:
		if depth >= opts.maxDepth {
			return fmt.Errorf("%w: %d", ErrDepth, opts.maxDepth)
		}
		n.MakeObject()
		for _, item := range x {
			c := n.Key(yamlKey(item.Key))
			c.Clear()
			if err := fromYAML(c, item.Value, depth+1, opts); err != nil {
				return fmt.Errorf("%s: %w", yamlKey(item.Key), err)
			}
		}
	case []any:
		if depth >= opts.maxDepth {
			return fmt.Errorf("%w: %d", ErrDepth, opts.maxDepth)
		}
		n.MakeArray()
		for i, e := range x {
			c, err := n.Index(i)
			if err != nil {
				return err
			}
			if err := fromYAML(c, e, depth+1, opts); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	default:
		err := n.Set(x)
		if errors.Is(err, dict.ErrUnsupported) {
			n.SetString(fmt.Sprint(x))
			return nil
		}
		return err
	}
	return nil
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
