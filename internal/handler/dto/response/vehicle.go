package response

import (
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID    uuid.UUID `json:"id"`
	Plate string    `json:"plate"`
	Make  string    `json:"make"`
	Model string    `json:"model"`
	Color string    `json:"color"`
	Score int       `json:"score"`
}

func FromVehicleView(rm *queries.VehicleView) *VehicleResponse {
	return &VehicleResponse{
		ID:    rm.ID,
		Plate: rm.Plate,
		Make:  rm.Make,
		Model: rm.Model,
		Color: rm.Color,
		Score: rm.Score,
	}
}
