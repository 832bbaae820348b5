//go:build unit

package builder

import (
	"time"

	domlot "parkops/internal/domain/lot"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotBuilder struct {
	ID          uuid.UUID
	Name        string
	Address     string
	HourlyRate  decimal.Decimal
	MinimumRate *decimal.Decimal
	Capacity    int
	CreatedAt   time.Time
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		ID:         uuid.New(),
		Name:       "Central Lot",
		Address:    "1 Main St",
		HourlyRate: decimal.NewFromInt(5),
		Capacity:   50,
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) WithName(name string) *LotBuilder {
	b.Name = name
	return b
}

func (b *LotBuilder) WithHourlyRate(rate decimal.Decimal) *LotBuilder {
	b.HourlyRate = rate
	return b
}

func (b *LotBuilder) WithMinimumRate(rate decimal.Decimal) *LotBuilder {
	b.MinimumRate = &rate
	return b
}

func (b *LotBuilder) WithCapacity(capacity int) *LotBuilder {
	b.Capacity = capacity
	return b
}

func (b *LotBuilder) BuildDomain() (*domlot.Lot, error) {
	rates, err := domlot.NewRateConfig(b.HourlyRate, b.MinimumRate)
	if err != nil {
		return nil, err
	}
	return domlot.NewLot(b.Name, b.Address, rates, b.Capacity)
}

func (b *LotBuilder) BuildView() *queries.LotView {
	return &queries.LotView{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		HourlyRate:  b.HourlyRate,
		MinimumRate: b.MinimumRate,
		Capacity:    b.Capacity,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *LotBuilder) BuildSnapshot() *shared.LotSnapshot {
	return &shared.LotSnapshot{
		ID:          b.ID,
		Name:        b.Name,
		HourlyRate:  b.HourlyRate,
		MinimumRate: b.MinimumRate,
		Capacity:    b.Capacity,
	}
}
