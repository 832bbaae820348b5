//go:build unit

package assignment_test

import (
	"testing"
	"time"

	"parkops/internal/domain/assignment"
	"parkops/internal/domain/lot"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyFeeCalculator(t *testing.T) {
	calc := assignment.NewHourlyFeeCalculator()
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ten := decimal.NewFromInt(10)

	rates := func(hourly int64, minimum *decimal.Decimal) lot.RateConfig {
		return lot.RateConfig{HourlyRate: decimal.NewFromInt(hourly), MinimumRate: minimum}
	}

	t.Run("proportional billing without rounding up", func(t *testing.T) {
		fee, err := calc.Fee(entry, entry.Add(30*time.Minute), rates(5, nil))
		require.NoError(t, err)
		assert.True(t, fee.Equal(decimal.NewFromFloat(2.5)), "got %s", fee)
	})

	t.Run("minimum rate floors a short stay", func(t *testing.T) {
		fee, err := calc.Fee(entry, entry.Add(20*time.Minute), rates(5, &ten))
		require.NoError(t, err)
		assert.True(t, fee.Equal(ten), "got %s", fee)
	})

	t.Run("minimum rate does not cap a long stay", func(t *testing.T) {
		fee, err := calc.Fee(entry, entry.Add(3*time.Hour), rates(5, &ten))
		require.NoError(t, err)
		assert.True(t, fee.Equal(decimal.NewFromInt(15)), "got %s", fee)
	})

	t.Run("fee exactly at the minimum is not floored twice", func(t *testing.T) {
		fee, err := calc.Fee(entry, entry.Add(2*time.Hour), rates(5, &ten))
		require.NoError(t, err)
		assert.True(t, fee.Equal(ten), "got %s", fee)
	})

	t.Run("zero duration without minimum is free", func(t *testing.T) {
		fee, err := calc.Fee(entry, entry, rates(5, nil))
		require.NoError(t, err)
		assert.True(t, fee.IsZero(), "got %s", fee)
	})

	t.Run("zero duration with minimum bills the minimum", func(t *testing.T) {
		fee, err := calc.Fee(entry, entry, rates(5, &ten))
		require.NoError(t, err)
		assert.True(t, fee.Equal(ten), "got %s", fee)
	})

	t.Run("exit before entry is rejected", func(t *testing.T) {
		_, err := calc.Fee(entry, entry.Add(-time.Minute), rates(5, nil))
		require.ErrorIs(t, err, assignment.ErrInvalidInterval)
	})

	t.Run("fractional rate keeps decimal precision", func(t *testing.T) {
		cfg := lot.RateConfig{HourlyRate: decimal.RequireFromString("2.50")}
		fee, err := calc.Fee(entry, entry.Add(90*time.Minute), cfg)
		require.NoError(t, err)
		assert.True(t, fee.Equal(decimal.RequireFromString("3.75")), "got %s", fee)
	})
}
