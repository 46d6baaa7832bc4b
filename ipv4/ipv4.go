// Package ipv4 provides utilities for working with IPv4 addresses: parsing
// and formatting of dotted-decimal and 32-bit binary notation, CIDR networks,
// subnet mask validation and subnet boundary arithmetic.
package ipv4

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors
var (
	ErrInvalidInput  = errors.New("ipv4: invalid input")
	ErrInvalidMask   = errors.New("ipv4: invalid mask")
	ErrInvalidPrefix = errors.New("ipv4: invalid prefix length")
)

// Address represents a single 32-bit IPv4 address, most-significant octet
// first.
type Address uint32

// Parse converts a dotted-decimal string into an Address. Each of the four
// dot-separated groups must be a decimal integer in [0,255].
func Parse(s string) (Address, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, s)
	}
	var v uint32
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 {
			return 0, fmt.Errorf("%w: %s", ErrInvalidInput, s)
		}
		o, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidInput, s)
		}
		v = v<<8 | uint32(o)
	}
	return Address(v), nil
}

// ParseBinary converts a 32-character string of '0' and '1' characters into
// an Address. The leftmost 8 characters form the most-significant octet.
func ParseBinary(s string) (Address, error) {
	if len(s) != 32 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return 0, fmt.Errorf("%w: %s", ErrInvalidInput, s)
		}
	}
	v, err := strconv.ParseUint(s, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, s)
	}
	return Address(v), nil
}

// String returns the dotted-decimal representation.
func (a Address) String() string {
	o := a.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}

// Binary returns the 32-character binary representation, most-significant
// bit first.
func (a Address) Binary() string {
	return fmt.Sprintf("%032b", uint32(a))
}

// Octets returns the four octets, most-significant first.
func (a Address) Octets() [4]uint8 {
	return [4]uint8{uint8(a >> 24), uint8(a >> 16), uint8(a >> 8), uint8(a)}
}

// Mask returns the address with all but the leading plen bits cleared.
func (a Address) Mask(plen int) Address {
	return a & Address(prefixBits(plen))
}

// prefixBits returns the mask value with the leading plen bits set. plen is
// assumed to be in [0,32]; a shift of 32 yields zero host bits as required.
func prefixBits(plen int) uint32 {
	return ^(^uint32(0) >> uint(plen))
}
