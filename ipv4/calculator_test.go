package ipv4

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorDecodeBinary(t *testing.T) {
	calc := NewCalculator(nil)
	out, err := calc.DecodeBinary("10000100101000101110011111111100")
	require.NoError(t, err)
	assert.Equal(t, "132.162.231.252", out)

	_, err = calc.DecodeBinary("101")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculatorEncodeBinary(t *testing.T) {
	calc := NewCalculator(nil)
	out, err := calc.EncodeBinary("132.162.231.252")
	require.NoError(t, err)
	assert.Equal(t, "10000100101000101110011111111100", out)
}

func TestCalculatorComputeRange(t *testing.T) {
	calc := NewCalculator(nil)
	r, err := calc.ComputeRange("192.168.23.55/20")
	require.NoError(t, err)
	assert.Equal(t, "192.168.16.0", r.Subnet.String())
	assert.Equal(t, "192.168.16.1", r.Min.String())
	assert.Equal(t, "192.168.31.254", r.Max.String())
	assert.Equal(t, "192.168.31.255", r.Broadcast.String())
}

func TestCalculatorToCIDR(t *testing.T) {
	calc := NewCalculator(nil)
	out, err := calc.ToCIDR("192.168.0.1", "255.255.240.0")
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1/20", out)

	_, err = calc.ToCIDR("192.168.0.1", "255.255.0.255")
	assert.ErrorIs(t, err, ErrInvalidMask)
}

func TestCalculatorLogsOctets(t *testing.T) {
	logger, hook := test.NewNullLogger()
	calc := NewCalculator(logger)
	_, err := calc.DecodeBinary("11000000101010000000000000000001")
	require.NoError(t, err)

	require.Len(t, hook.Entries, 4)
	for i, e := range hook.AllEntries() {
		assert.Equal(t, logrus.InfoLevel, e.Level)
		assert.Equal(t, "decoder", e.Data["component"])
		assert.Equal(t, i, e.Data["octet"])
	}
}

func TestCalculatorLogsFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	calc := NewCalculator(logger)
	_, err := calc.ComputeRange("not-a-cidr")
	require.Error(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.WarnLevel, last.Level)
}
