package assignment

import (
	"errors"
	"time"

	"parkops/internal/domain/lot"

	"github.com/shopspring/decimal"
)

var ErrInvalidInterval = errors.New("exit time precedes entry time")

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

type FeeCalculator interface {
	Fee(entryTime, exitTime time.Time, rates lot.RateConfig) (decimal.Decimal, error)
}

// HourlyFeeCalculator bills proportionally to the stay duration: fractional
// hours are never rounded up to whole hours. A lot may configure a minimum
// rate that floors short stays.
type HourlyFeeCalculator struct{}

func NewHourlyFeeCalculator() *HourlyFeeCalculator {
	return &HourlyFeeCalculator{}
}

func (c *HourlyFeeCalculator) Fee(entryTime, exitTime time.Time, rates lot.RateConfig) (decimal.Decimal, error) {
	if exitTime.Before(entryTime) {
		return decimal.Zero, ErrInvalidInterval
	}

	hours := decimal.NewFromInt(int64(exitTime.Sub(entryTime))).Div(nanosPerHour)
	fee := hours.Mul(rates.HourlyRate)

	if rates.MinimumRate != nil && fee.LessThan(*rates.MinimumRate) {
		return *rates.MinimumRate, nil
	}
	return fee, nil
}
