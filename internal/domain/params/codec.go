package params

import (
	"fmt"
	"strconv"
)

// FullName returns the override store key for a parameter,
// "<namespace>.<parameter>"
func FullName(namespace, name string) string {
	return namespace + "." + name
}

// EncodeValue escapes a value for persistence. The transform is lossless and
// keeps arbitrary text, including control characters, printable in the store.
func EncodeValue(value string) string {
	return strconv.Quote(value)
}

// DecodeValue reverses EncodeValue
func DecodeValue(encoded string) (string, error) {
	value, err := strconv.Unquote(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode stored value %q: %w", encoded, err)
	}
	return value, nil
}
