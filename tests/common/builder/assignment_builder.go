//go:build unit

package builder

import (
	"time"

	domassignment "parkops/internal/domain/assignment"
	"parkops/internal/domain/lot"
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssignmentBuilder struct {
	ID          uuid.UUID
	VehicleID   uuid.UUID
	Plate       string
	LotID       uuid.UUID
	LotName     string
	EntryTime   time.Time
	ExitTime    *time.Time
	Fee         *decimal.Decimal
	HourlyRate  decimal.Decimal
	MinimumRate *decimal.Decimal
}

func NewAssignmentBuilder() *AssignmentBuilder {
	return &AssignmentBuilder{
		ID:         uuid.New(),
		VehicleID:  uuid.New(),
		Plate:      "ABC-1234",
		LotID:      uuid.New(),
		LotName:    "Central Lot",
		EntryTime:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		HourlyRate: decimal.NewFromInt(5),
	}
}

func (b *AssignmentBuilder) With(mutate func(*AssignmentBuilder)) *AssignmentBuilder {
	mutate(b)
	return b
}

func (b *AssignmentBuilder) WithEntryTime(t time.Time) *AssignmentBuilder {
	b.EntryTime = t
	return b
}

func (b *AssignmentBuilder) WithHourlyRate(rate decimal.Decimal) *AssignmentBuilder {
	b.HourlyRate = rate
	return b
}

func (b *AssignmentBuilder) WithMinimumRate(rate decimal.Decimal) *AssignmentBuilder {
	b.MinimumRate = &rate
	return b
}

func (b *AssignmentBuilder) AsCompleted(exitTime time.Time, fee decimal.Decimal) *AssignmentBuilder {
	b.ExitTime = &exitTime
	b.Fee = &fee
	return b
}

func (b *AssignmentBuilder) Rates() lot.RateConfig {
	return lot.RateConfig{HourlyRate: b.HourlyRate, MinimumRate: b.MinimumRate}
}

func (b *AssignmentBuilder) BuildDomain() *domassignment.Assignment {
	return domassignment.ReconstructAssignment(
		b.ID, b.VehicleID, b.LotID,
		b.EntryTime, b.ExitTime, b.Fee,
		b.EntryTime, b.EntryTime,
	)
}

func (b *AssignmentBuilder) BuildRow() *queries.AssignmentRow {
	return &queries.AssignmentRow{
		ID:          b.ID,
		VehicleID:   b.VehicleID,
		Plate:       b.Plate,
		LotID:       b.LotID,
		LotName:     b.LotName,
		EntryTime:   b.EntryTime,
		ExitTime:    b.ExitTime,
		Fee:         b.Fee,
		HourlyRate:  b.HourlyRate,
		MinimumRate: b.MinimumRate,
	}
}

func (b *AssignmentBuilder) BuildView() *queries.AssignmentView {
	status := "active"
	if b.ExitTime != nil {
		status = "completed"
	}
	return &queries.AssignmentView{
		ID:        b.ID,
		VehicleID: b.VehicleID,
		Plate:     b.Plate,
		LotID:     b.LotID,
		LotName:   b.LotName,
		EntryTime: b.EntryTime,
		ExitTime:  b.ExitTime,
		Status:    status,
		Fee:       b.Fee,
	}
}
