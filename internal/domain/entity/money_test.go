package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"10", 1000},
			{"10.5", 1050},
			{"10.50", 1050},
			{"0.01", 1},
			{".75", 75},
			{" 100.00 ", 10000},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input string
			want  error
		}{
			{"", errs.ErrInvalidAmount},
			{"abc", errs.ErrInvalidAmount},
			{"10.123", errs.ErrInvalidAmount},
			{"1.2.3", errs.ErrInvalidAmount},
			{"$10", errs.ErrInvalidAmount},
			{"1e5", errs.ErrInvalidAmount},
			{"-5", errs.ErrNegativeAmount},
			{"99999999999999999999", errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("Positive amount rejects zero", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10.15", FormatAmount(1015))
	assert.Equal(t, "0.05", FormatAmount(5))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "-1.50", FormatAmount(-150))
}

func TestMultiplyAmount(t *testing.T) {
	result, ok := MultiplyAmount(5000, 4)
	assert.True(t, ok)
	assert.Equal(t, int64(20000), result)

	_, ok = MultiplyAmount(math.MaxInt64/2, 3)
	assert.False(t, ok)
}
