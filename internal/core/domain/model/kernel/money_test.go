package kernel_test

import (
	"math"
	"math/big"
	"testing"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromCents(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())

		m, err = kernel.MoneyFromCents(486)
		require.NoError(t, err)
		assert.Equal(t, int64(486), m.Cents())
		assert.Equal(t, "4.86", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromCents(-1)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoneyFromFloat(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected int64
	}{
		{"whole amount", 20, 2000},
		{"two decimals", 2.86, 286},
		{"rounds half up", 0.125, 13},
		{"rounds down", 4.861, 486},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := kernel.MoneyFromFloat(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.Cents())
		})
	}

	t.Run("should reject non-finite amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(math.NaN())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.MoneyFromFloat(math.Inf(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromRat(t *testing.T) {
	t.Run("should round half up", func(t *testing.T) {
		m, err := kernel.MoneyFromRat(big.NewRat(571, 2)) // 285.5 cents
		require.NoError(t, err)
		assert.Equal(t, int64(286), m.Cents())
	})

	t.Run("should round below half down", func(t *testing.T) {
		m, err := kernel.MoneyFromRat(big.NewRat(2854, 10)) // 285.4 cents
		require.NoError(t, err)
		assert.Equal(t, int64(285), m.Cents())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromRat(big.NewRat(-1, 1))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	duty, _ := kernel.MoneyFromCents(200)
	vat, _ := kernel.MoneyFromCents(286)

	total := duty.Add(vat)

	assert.Equal(t, int64(486), total.Cents())
	assert.InDelta(t, 4.86, total.Float64(), 1e-9)
	assert.True(t, total.IsEqual(vat.Add(duty)))
	assert.Equal(t, 0, total.Rat().Cmp(big.NewRat(486, 1)))
	assert.Equal(t, "0.00", kernel.Zero().String())
	assert.Equal(t, "0.05", kernel.Money{}.Add(mustCents(t, 5)).String())
}

func mustCents(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromCents(cents)
	require.NoError(t, err)
	return m
}
