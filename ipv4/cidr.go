package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// CIDR represents an IPv4 network in address/prefix notation. The address is
// kept as given; Network applies the mask.
type CIDR struct {
	addr Address
	plen int
}

// ParseCIDR parses an "a.b.c.d/n" string. The prefix digits are parsed
// permissively; values outside [0,32] are rejected with ErrInvalidPrefix so
// the caller can tell a syntax problem from an out-of-range prefix.
func ParseCIDR(s string) (CIDR, error) {
	addrPart, plenPart, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return CIDR{}, fmt.Errorf("%w: %s", ErrInvalidInput, s)
	}
	addr, err := Parse(addrPart)
	if err != nil {
		return CIDR{}, fmt.Errorf("%w: %s", ErrInvalidInput, s)
	}
	plen, err := strconv.Atoi(plenPart)
	if err != nil {
		return CIDR{}, fmt.Errorf("%w: %s", ErrInvalidInput, s)
	}
	return NewCIDR(addr, plen)
}

// NewCIDR constructs a CIDR from an address and prefix length.
func NewCIDR(addr Address, plen int) (CIDR, error) {
	if plen < 0 || plen > 32 {
		return CIDR{}, fmt.Errorf("%w: %d", ErrInvalidPrefix, plen)
	}
	return CIDR{addr: addr, plen: plen}, nil
}

// String renders the network in address/prefix notation.
func (c CIDR) String() string { return fmt.Sprintf("%s/%d", c.addr, c.plen) }

// Addr returns the address the CIDR was built from, unmasked.
func (c CIDR) Addr() Address { return c.addr }

// PrefixLength returns the prefix length.
func (c CIDR) PrefixLength() int { return c.plen }

// Network returns the subnet address, host bits zero.
func (c CIDR) Network() Address { return c.addr.Mask(c.plen) }

// Broadcast returns the address with all host bits set.
func (c CIDR) Broadcast() Address {
	return c.Network() | Address(^prefixBits(c.plen))
}

// HostCount returns the number of addresses in the network, usable or not.
func (c CIDR) HostCount() uint64 {
	return uint64(1) << uint(32-c.plen)
}

// SubnetRange holds the boundary addresses of a subnet: the network address,
// the first and last usable host, and the broadcast address.
type SubnetRange struct {
	Subnet    Address
	Min       Address
	Max       Address
	Broadcast Address
}

// Range computes the subnet boundaries. For prefixes up to /30 the usable
// range excludes the network and broadcast addresses. A /31 has no such
// reservation (RFC 3021), so Min and Max span both addresses. For a /32 all
// four fields are the address itself.
func (c CIDR) Range() SubnetRange {
	network := c.Network()
	broadcast := c.Broadcast()
	r := SubnetRange{Subnet: network, Broadcast: broadcast}
	switch {
	case c.plen >= 31:
		r.Min = network
		r.Max = broadcast
	default:
		r.Min = network + 1
		r.Max = broadcast - 1
	}
	return r
}
