package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"1,234.56", "1234.56"},
		{"(500.00)", "-500"},
		{"(1,234.56)", "-1234.56"},
		{"1,00,000.00", "100000"},
		{"-3.5", "-3.5"},
		{"+7", "7"},
		{"0", "0"},
		{"  42.10 ", "42.1"},
		{".5", "0.5"},
		{"10.", "10"},
	}
	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			got, err := Normalize(c.token)
			require.NoError(t, err)
			require.True(t, got.Valid)
			assert.True(t, got.Decimal.Equal(decimal.RequireFromString(c.want)), "got %s want %s", got.Decimal, c.want)
		})
	}
}

func TestNormalizeUnset(t *testing.T) {
	for _, token := range []string{"", "   ", "\t"} {
		got, err := Normalize(token)
		require.NoError(t, err)
		assert.False(t, got.Valid, "token %q", token)
	}

	zero, err := Normalize("0.00")
	require.NoError(t, err)
	assert.True(t, zero.Valid, "zero must be distinguishable from unset")
}

func TestNormalizeMalformed(t *testing.T) {
	for _, token := range []string{"12a", "1.2.3", "()", "abc", "1 000", "--5", "12%", "(-5)", "(+5)"} {
		_, err := Normalize(token)
		assert.ErrorIs(t, err, ErrMalformedNumber, "token %q", token)
	}
}
