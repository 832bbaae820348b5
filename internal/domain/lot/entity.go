package lot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("lot name cannot be empty")
	ErrInvalidHourlyRate  = errors.New("hourly rate must be positive")
	ErrInvalidMinimumRate = errors.New("minimum rate cannot be negative")
	ErrInvalidCapacity    = errors.New("capacity must be positive")
)

// RateConfig is the billing configuration a lot hands to the fee calculator.
type RateConfig struct {
	HourlyRate  decimal.Decimal
	MinimumRate *decimal.Decimal
}

func NewRateConfig(hourlyRate decimal.Decimal, minimumRate *decimal.Decimal) (RateConfig, error) {
	if hourlyRate.LessThanOrEqual(decimal.Zero) {
		return RateConfig{}, ErrInvalidHourlyRate
	}
	if minimumRate != nil && minimumRate.IsNegative() {
		return RateConfig{}, ErrInvalidMinimumRate
	}
	return RateConfig{HourlyRate: hourlyRate, MinimumRate: minimumRate}, nil
}

type Lot struct {
	id        uuid.UUID
	name      string
	address   string
	rates     RateConfig
	capacity  int
	createdAt time.Time
	updatedAt time.Time
}

func NewLot(name, address string, rates RateConfig, capacity int) (*Lot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Lot{
		name:     name,
		address:  strings.TrimSpace(address),
		rates:    rates,
		capacity: capacity,
	}, nil
}

func ReconstructLot(
	id uuid.UUID,
	name, address string,
	rates RateConfig,
	capacity int,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:        id,
		name:      name,
		address:   address,
		rates:     rates,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateRates replaces the billing configuration. Identity and capacity are not
// touched here; capacity is advisory and has its own admin path.
func (l *Lot) UpdateRates(rates RateConfig) {
	l.rates = rates
}

func (l *Lot) Rename(name, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	l.name = name
	l.address = strings.TrimSpace(address)
	return nil
}

func (l *Lot) ID() uuid.UUID        { return l.id }
func (l *Lot) Name() string         { return l.name }
func (l *Lot) Address() string      { return l.address }
func (l *Lot) Rates() RateConfig    { return l.rates }
func (l *Lot) Capacity() int        { return l.capacity }
func (l *Lot) CreatedAt() time.Time { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time { return l.updatedAt }
