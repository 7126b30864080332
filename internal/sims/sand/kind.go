package sand

import (
	"fmt"
	"strings"
)

// Kind identifies a particle species. The zero value is Background.
type Kind uint8

const (
	Background Kind = iota
	Salt
	Water
	Concrete
	Wood
	Cornucopia

	kindCount
)

var kindNames = [kindCount]string{
	Background: "background",
	Salt:       "salt",
	Water:      "water",
	Concrete:   "concrete",
	Wood:       "wood",
	Cornucopia: "cornucopia",
}

// Valid reports whether k belongs to the closed set of kinds.
func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Kinds lists every paintable kind in palette order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Background; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a case-insensitive kind name. "void" and "empty" are
// accepted as Background.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "void", "empty":
		return Background, nil
	}
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}
	return Background, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// UnmarshalText lets kinds be decoded from config and scene files by name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}
