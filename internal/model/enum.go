package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownValue is returned when a string does not name a member of a closed enumeration.
var ErrUnknownValue = errors.New("unknown enum value")

func parseEnum[T ~string](name, s string, values []T) (T, error) {
	v := T(s)
	if slices.Contains(values, v) {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s %q", ErrUnknownValue, name, s)
}

func canTransition[T comparable](table map[T][]T, from, to T) bool {
	return slices.Contains(table[from], to)
}
