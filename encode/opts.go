package encode

import "github.com/signadot/ndict/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	switch f {
	case format.YAMLFormat:
		return ".yaml"
	default:
		return ".json"
	}
}

// EncodeIndent sets the number of spaces per nesting level.  Negative
// values are treated as zero.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = max(n, 0)
		es.indentSet = true
	}
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire selects compact single line JSON.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
