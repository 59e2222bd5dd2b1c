package encode

import (
	"bytes"

	"github.com/signadot/ndict/dict"
)

// String encodes node, returning the text or the encoding error.
func String(node *dict.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *dict.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
