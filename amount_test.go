package chert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"1", 100_000_000, true},
		{"25", 2_500_000_000, true},
		{"0.00000001", 1, true},
		{"0.5", 50_000_000, true},
		{"1.23456789", 123_456_789, true},
		{"10 CHERT", 1_000_000_000, true},
		{"  3.14  ", 314_000_000, true},
		{"184467440737.09551615", ^uint64(0), true}, // exact uint64 max

		{"", 0, false},
		{"-1", 0, false},
		{"1.2.3", 0, false},
		{"1.", 0, false},
		{"abc", 0, false},
		{"1.123456789", 0, false},          // 9 decimal places
		{"184467440737.09551616", 0, false}, // one atomic past max
		{"184467440738", 0, false},          // whole part overflows
	}

	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		} else {
			require.Error(t, err, "input %q", tc.in)
			assert.True(t, IsCode(err, CodeValidation), "input %q", tc.in)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "1", FormatAmount(100_000_000))
	assert.Equal(t, "0.00000001", FormatAmount(1))
	assert.Equal(t, "25.5", FormatAmount(2_550_000_000))
	assert.Equal(t, "1.23456789", FormatAmount(123_456_789))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, atomic := range []uint64{0, 1, 99, 100_000_000, 123_456_789, 2_500_000_000, ^uint64(0)} {
		parsed, err := ParseAmount(FormatAmount(atomic))
		require.NoError(t, err)
		assert.Equal(t, atomic, parsed)
	}
}
