//go:build unit

package lot_test

import (
	"testing"

	"parkops/internal/domain/lot"
	"parkops/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LotBuilder)
	errIs  error
}

func TestLot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Central Lot", actual.Name())
		assert.Equal(t, "1 Main St", actual.Address())
		assert.Equal(t, 50, actual.Capacity())
		assert.True(t, actual.Rates().HourlyRate.Equal(decimal.NewFromInt(5)))
		assert.Nil(t, actual.Rates().MinimumRate)
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.LotBuilder) { b.WithName("") },
				errIs:  lot.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.LotBuilder) { b.WithName("   ") },
				errIs:  lot.ErrEmptyName,
			},
			{
				name:   "single character name",
				mutate: func(b *builder.LotBuilder) { b.WithName("A") },
			},
		})
	})

	t.Run("rate validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero hourly rate",
				mutate: func(b *builder.LotBuilder) { b.WithHourlyRate(decimal.Zero) },
				errIs:  lot.ErrInvalidHourlyRate,
			},
			{
				name:   "negative hourly rate",
				mutate: func(b *builder.LotBuilder) { b.WithHourlyRate(decimal.NewFromInt(-1)) },
				errIs:  lot.ErrInvalidHourlyRate,
			},
			{
				name:   "negative minimum rate",
				mutate: func(b *builder.LotBuilder) { b.WithMinimumRate(decimal.NewFromInt(-1)) },
				errIs:  lot.ErrInvalidMinimumRate,
			},
			{
				name:   "zero minimum rate",
				mutate: func(b *builder.LotBuilder) { b.WithMinimumRate(decimal.Zero) },
			},
			{
				name:   "fractional hourly rate",
				mutate: func(b *builder.LotBuilder) { b.WithHourlyRate(decimal.RequireFromString("2.50")) },
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero capacity",
				mutate: func(b *builder.LotBuilder) { b.WithCapacity(0) },
				errIs:  lot.ErrInvalidCapacity,
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.LotBuilder) { b.WithCapacity(-10) },
				errIs:  lot.ErrInvalidCapacity,
			},
			{
				name:   "single space capacity",
				mutate: func(b *builder.LotBuilder) { b.WithCapacity(1) },
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		actual, err := builder.NewLotBuilder().WithName("  North Garage  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "North Garage", actual.Name())
	})

	t.Run("rename rejects empty name", func(t *testing.T) {
		actual, err := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, actual.Rename("  ", "somewhere"), lot.ErrEmptyName)
		assert.Equal(t, "Central Lot", actual.Name())
	})

	t.Run("update rates replaces the configuration", func(t *testing.T) {
		actual, err := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, err)

		minimum := decimal.NewFromInt(10)
		rates, err := lot.NewRateConfig(decimal.NewFromInt(8), &minimum)
		require.NoError(t, err)

		actual.UpdateRates(rates)
		assert.True(t, actual.Rates().HourlyRate.Equal(decimal.NewFromInt(8)))
		require.NotNil(t, actual.Rates().MinimumRate)
		assert.True(t, actual.Rates().MinimumRate.Equal(minimum))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewLotBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
