package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaParseSizes(t *testing.T) {
	testcases := []struct {
		spec  QuotaSpec
		bytes uint64
	}{
		{spec: "1024", bytes: 1024},
		{spec: "4K", bytes: 4 << 10},
		{spec: "500M", bytes: 500 << 20},
		{spec: "16G", bytes: 16 << 30},
		{spec: "2T", bytes: 2 << 40},
		{spec: "2t", bytes: 2 << 40},
		{spec: " 8g ", bytes: 8 << 30},
	}

	for _, tc := range testcases {
		t.Run(tc.spec.String(), func(t *testing.T) {
			quota, err := tc.spec.Parse()
			require.NoError(t, err)

			assert.False(t, quota.IsInfinity())
			assert.Equal(t, tc.bytes, quota.Bytes(0))
		})
	}
}

func TestQuotaParsePercent(t *testing.T) {
	quota, err := QuotaSpec("20%").Parse()
	require.NoError(t, err)

	assert.False(t, quota.IsInfinity())
	assert.Equal(t, uint64(200), quota.Bytes(1000))
	assert.Equal(t, uint64(0), quota.Bytes(0))
}

func TestQuotaParseInfinity(t *testing.T) {
	for _, spec := range []QuotaSpec{"infinity", "Infinity", "INFINITY"} {
		quota, err := spec.Parse()
		require.NoError(t, err)

		assert.True(t, quota.IsInfinity())
		assert.Equal(t, uint64(1000), quota.Bytes(1000))
	}
}

func TestQuotaParseErrors(t *testing.T) {
	testcases := []struct {
		name string
		spec QuotaSpec
	}{
		{name: "Empty", spec: ""},
		{name: "Whitespace", spec: "  "},
		{name: "Zero", spec: "0"},
		{name: "ZeroWithSuffix", spec: "0G"},
		{name: "PercentZero", spec: "0%"},
		{name: "PercentTooBig", spec: "101%"},
		{name: "PercentNegative", spec: "-5%"},
		{name: "UnknownSuffix", spec: "10X"},
		{name: "NotANumber", spec: "abc"},
		{name: "SuffixOnly", spec: "G"},
		{name: "Overflow", spec: "99999999999999999T"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.spec.Parse()
			require.Error(t, err)
		})
	}
}
