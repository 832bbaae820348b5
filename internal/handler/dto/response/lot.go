package response

import (
	"time"

	"parkops/internal/pkg/ptr"
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type LotResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	HourlyRate  string    `json:"hourly_rate"`
	MinimumRate *string   `json:"minimum_rate,omitempty"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLotView(rm *queries.LotView) *LotResponse {
	resp := &LotResponse{
		ID:         rm.ID,
		Name:       rm.Name,
		Address:    rm.Address,
		HourlyRate: rm.HourlyRate.StringFixed(2),
		Capacity:   rm.Capacity,
		CreatedAt:  rm.CreatedAt,
	}
	if rm.MinimumRate != nil {
		resp.MinimumRate = ptr.To(rm.MinimumRate.StringFixed(2))
	}
	return resp
}

func FromLotViews(rms []*queries.LotView) []*LotResponse {
	resp := make([]*LotResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromLotView(rm)
	}
	return resp
}
