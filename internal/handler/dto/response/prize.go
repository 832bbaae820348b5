package response

import (
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type PrizeResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PointsRequired int       `json:"points_required"`
	Description    string    `json:"description"`
}

func FromPrizeView(rm *queries.PrizeView) *PrizeResponse {
	return &PrizeResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		PointsRequired: rm.PointsRequired,
		Description:    rm.Description,
	}
}

func FromPrizeViews(rms []*queries.PrizeView) []*PrizeResponse {
	resp := make([]*PrizeResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromPrizeView(rm)
	}
	return resp
}
