//go:build unit

package builder

import (
	"time"

	domvehicle "parkops/internal/domain/vehicle"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	ID    uuid.UUID
	Plate string
	Make  string
	Model string
	Color string
	Score int
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		ID:    uuid.New(),
		Plate: "ABC-1234",
		Make:  "Toyota",
		Model: "Corolla",
		Color: "blue",
		Score: 100,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) WithPlate(plate string) *VehicleBuilder {
	b.Plate = plate
	return b
}

func (b *VehicleBuilder) WithScore(score int) *VehicleBuilder {
	b.Score = score
	return b
}

func (b *VehicleBuilder) BuildDomain() (*domvehicle.Vehicle, error) {
	plate, err := domvehicle.NewPlate(b.Plate)
	if err != nil {
		return nil, err
	}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return domvehicle.ReconstructVehicle(b.ID, plate, b.Make, b.Model, b.Color, b.Score, now, now)
}

func (b *VehicleBuilder) BuildView() *queries.VehicleView {
	return &queries.VehicleView{
		ID:    b.ID,
		Plate: b.Plate,
		Make:  b.Make,
		Model: b.Model,
		Color: b.Color,
		Score: b.Score,
	}
}

func (b *VehicleBuilder) BuildSnapshot() *shared.VehicleSnapshot {
	return &shared.VehicleSnapshot{
		ID:    b.ID,
		Plate: b.Plate,
		Score: b.Score,
	}
}
