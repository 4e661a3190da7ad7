// Package union holds the JSON helpers shared by the key-discriminated
// unions of the public model packages.
package union

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant is returned when a union value carries none of its discriminator keys.
	ErrUnknownVariant = errors.New("no discriminator key present")

	// ErrAmbiguousVariant is returned when a union value carries more than one discriminator key.
	ErrAmbiguousVariant = errors.New("more than one discriminator key present")
)

// Discriminate returns the single key of keys present in the JSON object,
// along with the decoded object.
func Discriminate(name string, data []byte, keys ...string) (string, map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, fmt.Errorf("%s: %w", name, err)
	}

	found := ""
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			continue
		}
		if found != "" {
			return "", nil, fmt.Errorf("%s: %q and %q: %w", name, found, k, ErrAmbiguousVariant)
		}
		found = k
	}
	if found == "" {
		return "", nil, fmt.Errorf("%s: expected one of %q: %w", name, keys, ErrUnknownVariant)
	}

	return found, obj, nil
}

// Unwrap returns the body stored under key in a wrapper object.
func Unwrap(data []byte, key string) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	body, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrUnknownVariant)
	}
	return body, nil
}

// Wrap encodes body under key.
func Wrap(key string, body any) ([]byte, error) {
	inner, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return json.Marshal(map[string]json.RawMessage{key: inner})
}

// Absent reports whether a raw field was omitted or explicitly null.
func Absent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Is reports whether v holds a T or a non-nil *T.
func Is[T any](v any) bool {
	switch x := v.(type) {
	case T:
		return true
	case *T:
		return x != nil
	}
	return false
}

// NonNil returns s, or an empty slice when s is nil, so required arrays never encode as null.
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
