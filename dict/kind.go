package dict

import "fmt"

// Kind discriminates which variant a Node currently holds.
type Kind int

const (
	NullKind Kind = iota
	NumberKind
	StringKind
	BoolKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		NumberKind: "Number",
		StringKind: "String",
		BoolKind:   "Bool",
		ObjectKind: "Object",
		ArrayKind:  "Array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Number": NumberKind,
		"String": StringKind,
		"Bool":   BoolKind,
		"Object": ObjectKind,
		"Array":  ArrayKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		NumberKind,
		StringKind,
		BoolKind,
		ObjectKind,
		ArrayKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}
