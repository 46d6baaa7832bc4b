package ipv4

import (
	"fmt"
	"math/bits"
)

// Mask is a subnet mask: an address whose binary form is a contiguous run of
// 1-bits followed by a contiguous run of 0-bits.
type Mask Address

// ParseMask converts a dotted-decimal string into a Mask, rejecting
// non-contiguous bit patterns such as 255.255.0.255.
func ParseMask(s string) (Mask, error) {
	addr, err := Parse(s)
	if err != nil {
		return 0, err
	}
	plen := bits.LeadingZeros32(^uint32(addr))
	if uint32(addr) != prefixBits(plen) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMask, s)
	}
	return Mask(addr), nil
}

// MaskFromPrefix returns the mask with the leading plen bits set.
func MaskFromPrefix(plen int) (Mask, error) {
	if plen < 0 || plen > 32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPrefix, plen)
	}
	return Mask(prefixBits(plen)), nil
}

// PrefixLength returns the number of leading 1-bits.
func (m Mask) PrefixLength() int { return bits.OnesCount32(uint32(m)) }

// String returns the dotted-decimal representation.
func (m Mask) String() string { return Address(m).String() }

// ToCIDR composes a dotted-decimal address and mask into CIDR notation,
// e.g. ("192.168.0.1", "255.255.240.0") -> "192.168.0.1/20".
func ToCIDR(address, mask string) (string, error) {
	addr, err := Parse(address)
	if err != nil {
		return "", err
	}
	m, err := ParseMask(mask)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d", addr, m.PrefixLength()), nil
}
