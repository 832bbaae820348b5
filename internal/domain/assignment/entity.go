package assignment

import (
	"errors"
	"time"

	"parkops/internal/domain/lot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyCompleted = errors.New("assignment is already completed")
	ErrNotCompleted     = errors.New("assignment is still active")
)

type Services struct {
	FeeCalculator FeeCalculator
}

// Assignment is one vehicle's stay in one lot. It is created Active at entry
// and mutated exactly once, at checkout, which fixes the exit time and fee.
type Assignment struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	lotID     uuid.UUID
	entryTime time.Time
	exitTime  *time.Time
	fee       *decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

func NewAssignment(vehicleID, lotID uuid.UUID, entryTime time.Time) *Assignment {
	return &Assignment{
		vehicleID: vehicleID,
		lotID:     lotID,
		entryTime: entryTime.UTC(),
	}
}

func ReconstructAssignment(
	id, vehicleID, lotID uuid.UUID,
	entryTime time.Time,
	exitTime *time.Time,
	fee *decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Assignment {
	return &Assignment{
		id:        id,
		vehicleID: vehicleID,
		lotID:     lotID,
		entryTime: entryTime,
		exitTime:  exitTime,
		fee:       fee,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Checkout transitions Active -> Completed. Re-invocation is rejected rather
// than reapplied so a stored fee can never be overwritten.
func (a *Assignment) Checkout(services *Services, exitTime time.Time, rates lot.RateConfig) error {
	if a.IsCompleted() {
		return ErrAlreadyCompleted
	}

	fee, err := services.FeeCalculator.Fee(a.entryTime, exitTime, rates)
	if err != nil {
		return err
	}

	exit := exitTime.UTC()
	a.exitTime = &exit
	a.fee = &fee
	return nil
}

// RunningFee prices the stay as if it were checked out now. Read-only: used
// for the live total on active listings.
func (a *Assignment) RunningFee(services *Services, now time.Time, rates lot.RateConfig) (decimal.Decimal, error) {
	if a.IsCompleted() {
		return *a.fee, nil
	}
	return services.FeeCalculator.Fee(a.entryTime, now, rates)
}

func (a *Assignment) Status() Status {
	if a.IsCompleted() {
		return StatusCompleted
	}
	return StatusActive
}

func (a *Assignment) IsActive() bool {
	return a.exitTime == nil
}

func (a *Assignment) IsCompleted() bool {
	return a.exitTime != nil
}

func (a *Assignment) Duration(now time.Time) time.Duration {
	if a.exitTime != nil {
		return a.exitTime.Sub(a.entryTime)
	}
	return now.Sub(a.entryTime)
}

func (a *Assignment) ID() uuid.UUID         { return a.id }
func (a *Assignment) VehicleID() uuid.UUID  { return a.vehicleID }
func (a *Assignment) LotID() uuid.UUID      { return a.lotID }
func (a *Assignment) EntryTime() time.Time  { return a.entryTime }
func (a *Assignment) ExitTime() *time.Time  { return a.exitTime }
func (a *Assignment) Fee() *decimal.Decimal { return a.fee }
func (a *Assignment) CreatedAt() time.Time  { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time  { return a.updatedAt }
