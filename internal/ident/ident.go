// Package ident produces display identifiers for cards that were requested
// without one. Values are random and not guaranteed unique.
package ident

import (
	"fmt"
	"math/rand"
	"strings"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Format selects the identifier shape.
type Format string

const (
	FormatNumeric      Format = "1"
	FormatAlphanumeric Format = "2"
)

// Generate returns an identifier for format. An empty format is numeric and
// any unrecognized value is alphanumeric.
func Generate(format string) string {
	switch Format(strings.TrimSpace(format)) {
	case "", FormatNumeric:
		return Numeric()
	default:
		return Alphanumeric()
	}
}

// Numeric returns ddd-ddd-dddd with no leading zero in any group.
func Numeric() string {
	return fmt.Sprintf("%d-%d-%d", 100+rand.Intn(900), 100+rand.Intn(900), 1000+rand.Intn(9000))
}

// Alphanumeric returns three uppercase letters followed by nine digits.
func Alphanumeric() string {
	var b strings.Builder
	b.Grow(12)
	for i := 0; i < 3; i++ {
		b.WriteByte(letters[rand.Intn(len(letters))])
	}
	for i := 0; i < 9; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}
