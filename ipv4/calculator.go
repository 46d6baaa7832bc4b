package ipv4

import (
	"github.com/sirupsen/logrus"
)

// Calculator bundles the conversion operations with a logging collaborator.
// The logger is injected once at construction and never rebuilt per call; a
// nil logger disables logging entirely. Calculator holds no other state and
// is safe for concurrent use.
type Calculator struct {
	log logrus.FieldLogger
}

// NewCalculator returns a Calculator emitting to log, which may be nil.
func NewCalculator(log logrus.FieldLogger) *Calculator {
	return &Calculator{log: log}
}

// DecodeBinary converts a 32-character binary string to dotted-decimal
// notation, logging each decoded octet at info level.
func (c *Calculator) DecodeBinary(bitstring string) (string, error) {
	addr, err := ParseBinary(bitstring)
	if err != nil {
		c.warnf(err, "binary decode failed")
		return "", err
	}
	if c.log != nil {
		entry := c.log.WithField("component", "decoder")
		for i, o := range addr.Octets() {
			entry.WithFields(logrus.Fields{"octet": i, "value": o}).Info("octet decoded")
		}
	}
	return addr.String(), nil
}

// EncodeBinary converts a dotted-decimal address to its 32-character binary
// representation.
func (c *Calculator) EncodeBinary(address string) (string, error) {
	addr, err := Parse(address)
	if err != nil {
		c.warnf(err, "address encode failed")
		return "", err
	}
	return addr.Binary(), nil
}

// ComputeRange parses an "a.b.c.d/n" string and derives the subnet boundary
// addresses.
func (c *Calculator) ComputeRange(cidr string) (SubnetRange, error) {
	n, err := ParseCIDR(cidr)
	if err != nil {
		c.warnf(err, "range computation failed")
		return SubnetRange{}, err
	}
	r := n.Range()
	if c.log != nil {
		c.log.WithField("component", "range").WithFields(logrus.Fields{
			"cidr":      n.String(),
			"subnet":    r.Subnet.String(),
			"broadcast": r.Broadcast.String(),
		}).Info("range computed")
	}
	return r, nil
}

// ToCIDR validates a dotted-decimal subnet mask and composes the given
// address with the mask's prefix length into CIDR notation.
func (c *Calculator) ToCIDR(address, mask string) (string, error) {
	out, err := ToCIDR(address, mask)
	if err != nil {
		c.warnf(err, "cidr encode failed")
		return "", err
	}
	if c.log != nil {
		c.log.WithField("component", "encoder").WithField("cidr", out).Info("cidr encoded")
	}
	return out, nil
}

func (c *Calculator) warnf(err error, msg string) {
	if c.log != nil {
		c.log.WithError(err).Warn(msg)
	}
}
