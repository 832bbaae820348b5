//go:build unit

package builder

import (
	domprize "parkops/internal/domain/prize"
	"parkops/internal/usecase/queries"
	"parkops/internal/usecase/shared"

	"github.com/google/uuid"
)

type PrizeBuilder struct {
	ID             uuid.UUID
	Name           string
	PointsRequired int
	Description    string
}

func NewPrizeBuilder() *PrizeBuilder {
	return &PrizeBuilder{
		ID:             uuid.New(),
		Name:           "Free Wash",
		PointsRequired: 80,
		Description:    "One free car wash",
	}
}

func (b *PrizeBuilder) With(mutate func(*PrizeBuilder)) *PrizeBuilder {
	mutate(b)
	return b
}

func (b *PrizeBuilder) WithPointsRequired(points int) *PrizeBuilder {
	b.PointsRequired = points
	return b
}

func (b *PrizeBuilder) BuildDomain() (*domprize.Prize, error) {
	return domprize.NewPrize(b.Name, b.PointsRequired, b.Description)
}

func (b *PrizeBuilder) BuildView() *queries.PrizeView {
	return &queries.PrizeView{
		ID:             b.ID,
		Name:           b.Name,
		PointsRequired: b.PointsRequired,
		Description:    b.Description,
	}
}

func (b *PrizeBuilder) BuildSnapshot() *shared.PrizeSnapshot {
	return &shared.PrizeSnapshot{
		ID:             b.ID,
		Name:           b.Name,
		PointsRequired: b.PointsRequired,
	}
}
