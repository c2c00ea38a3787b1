package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-bank/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantScale int
		wantErr   error
	}{
		{name: "Integer", input: "100", want: "100.00", wantScale: 0},
		{name: "OneDecimal", input: "12.5", want: "12.50", wantScale: 1},
		{name: "TwoDecimals", input: "0.01", want: "0.01", wantScale: 2},
		{name: "Negative", input: "-5", want: "-5.00", wantScale: 0},
		{name: "Whitespace", input: "  42.10 \n", want: "42.10", wantScale: 2},
		{name: "ExcessPrecisionKeptByParse", input: "1.005", want: "1.01", wantScale: 3},
		{name: "NotANumber", input: "abc", wantErr: domain.ErrInvalidFormat},
		{name: "Empty", input: "", wantErr: domain.ErrInvalidFormat},
		{name: "TrailingGarbage", input: "10$", wantErr: domain.ErrInvalidFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := domain.Parse(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.String())
			assert.Equal(t, tc.wantScale, m.Scale())
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("AcceptsUpToTwoDecimals", func(t *testing.T) {
		for _, in := range []string{"1", "1.5", "1.50", "1000000.99"} {
			m, err := domain.ParseAmount(in)
			require.NoError(t, err, in)
			assert.LessOrEqual(t, m.Scale(), domain.MaxScale)
		}
	})

	t.Run("RejectsThreeDecimals", func(t *testing.T) {
		_, err := domain.ParseAmount("1.005")
		assert.ErrorIs(t, err, domain.ErrTooManyDecimalPlaces)
	})

	t.Run("TrailingZerosCount", func(t *testing.T) {
		_, err := domain.ParseAmount("2.500")
		assert.ErrorIs(t, err, domain.ErrTooManyDecimalPlaces)
	})

	t.Run("FormatCheckedFirst", func(t *testing.T) {
		_, err := domain.ParseAmount("1.2.3")
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})

	t.Run("RejectsExponentNotation", func(t *testing.T) {
		for _, in := range []string{"1e2", "1E2", "1e-2", "1e-2147483648", "1e100000000"} {
			m, err := domain.ParseAmount(in)
			assert.ErrorIs(t, err, domain.ErrInvalidFormat, in)
			assert.True(t, m.IsZero(), in)
		}
	})

	t.Run("RejectsTooManyIntegerDigits", func(t *testing.T) {
		m, err := domain.ParseAmount("999999999999999.99")
		require.NoError(t, err)
		assert.Equal(t, "999999999999999.99", m.String())

		_, err = domain.ParseAmount("1000000000000000")
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
		_, err = domain.ParseAmount("-1000000000000000.5")
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})
}

func TestMoneyScale(t *testing.T) {
	assert.Equal(t, 0, domain.MustParse("7").Scale())
	assert.Equal(t, 2, domain.MustParse("1.50").Scale())
	assert.Equal(t, 0, domain.MustParse("1e3").Scale())
	assert.Equal(t, 2147483648, domain.MustParse("1e-2147483648").Scale())
}

func TestMoneyArithmetic(t *testing.T) {
	a := domain.MustParse("0.10")
	b := domain.MustParse("0.20")

	t.Run("ExactAddition", func(t *testing.T) {
		assert.True(t, a.Add(b).Equal(domain.MustParse("0.30")))
		assert.Equal(t, "0.30", a.Add(b).String())
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, "-0.10", a.Sub(b).String())
	})

	t.Run("Neg", func(t *testing.T) {
		assert.Equal(t, "-0.10", a.Neg().String())
		assert.True(t, a.Neg().Neg().Equal(a))
	})

	t.Run("Compare", func(t *testing.T) {
		assert.Equal(t, -1, a.Cmp(b))
		assert.Equal(t, 1, b.Cmp(a))
		assert.Equal(t, 0, a.Cmp(domain.MustParse("0.1")))
		assert.True(t, a.LessThan(b))
		assert.True(t, b.GreaterThan(a))
	})

	t.Run("Sign", func(t *testing.T) {
		assert.True(t, a.IsPositive())
		assert.True(t, a.Neg().IsNegative())
		assert.True(t, domain.Zero.IsZero())
		assert.False(t, domain.Zero.IsPositive())
		assert.Equal(t, "0.00", domain.Zero.String())
	})
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { domain.MustParse("twelve") })
}
