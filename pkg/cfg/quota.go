package cfg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuotaSpec is the textual representation of a storage quota.
// Valid values are a byte size with an optional K, M, G or T suffix
// ("500M"), a percentage of the available space ("20%") or "infinity".
type QuotaSpec string

// QuotaInfinity disables the quota.
const QuotaInfinity QuotaSpec = "infinity"

var sizeSuffixes = map[byte]uint64{
	'K': 1 << 10,
	'M': 1 << 20,
	'G': 1 << 30,
	'T': 1 << 40,
}

// Quota is a parsed QuotaSpec.
type Quota struct {
	bytes    uint64
	percent  uint64
	infinity bool
}

// Parse parses the quota specification.
func (q QuotaSpec) Parse() (*Quota, error) {
	s := strings.TrimSpace(string(q))

	if s == "" {
		return nil, errors.New("can not be empty")
	}

	if strings.EqualFold(s, string(QuotaInfinity)) {
		return &Quota{infinity: true}, nil
	}

	if strings.HasSuffix(s, "%") {
		percent, err := strconv.ParseUint(strings.TrimSuffix(s, "%"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q", s)
		}

		if percent < 1 || percent > 100 {
			return nil, fmt.Errorf("percentage must be in range [1, 100], got %d%%", percent)
		}

		return &Quota{percent: percent}, nil
	}

	multiplier := uint64(1)
	num := s

	if c := s[len(s)-1]; c < '0' || c > '9' {
		m, exists := sizeSuffixes[byte(strings.ToUpper(string(c))[0])]
		if !exists {
			return nil, fmt.Errorf("invalid size suffix %q, supported are: K, M, G, T", string(c))
		}

		multiplier = m
		num = s[:len(s)-1]
	}

	size, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid size %q", s)
	}

	if size == 0 {
		return nil, errors.New("must be greater than 0")
	}

	if size > math.MaxUint64/multiplier {
		return nil, fmt.Errorf("size %q overflows", s)
	}

	return &Quota{bytes: size * multiplier}, nil
}

// String returns the specification the quota was parsed from.
func (q QuotaSpec) String() string {
	return string(q)
}

// IsInfinity returns true when the quota is disabled.
func (q *Quota) IsInfinity() bool {
	return q.infinity
}

// Bytes returns the quota in bytes.
// Percentage quotas are resolved against total, an infinite quota returns
// total.
func (q *Quota) Bytes(total uint64) uint64 {
	if q.infinity {
		return total
	}

	if q.percent != 0 {
		return total / 100 * q.percent
	}

	return q.bytes
}
