package prize

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("prize name cannot be empty")
	ErrInvalidPoints = errors.New("points required must be at least 1")
)

// Prize is an immutable catalog entry; redemption lives on the vehicle side.
type Prize struct {
	id             uuid.UUID
	name           string
	pointsRequired int
	description    string
	createdAt      time.Time
}

func NewPrize(name string, pointsRequired int, description string) (*Prize, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if pointsRequired < 1 {
		return nil, ErrInvalidPoints
	}

	return &Prize{
		name:           name,
		pointsRequired: pointsRequired,
		description:    strings.TrimSpace(description),
	}, nil
}

func ReconstructPrize(id uuid.UUID, name string, pointsRequired int, description string, createdAt time.Time) *Prize {
	return &Prize{
		id:             id,
		name:           name,
		pointsRequired: pointsRequired,
		description:    description,
		createdAt:      createdAt,
	}
}

func (p *Prize) ID() uuid.UUID        { return p.id }
func (p *Prize) Name() string         { return p.name }
func (p *Prize) PointsRequired() int  { return p.pointsRequired }
func (p *Prize) Description() string  { return p.description }
func (p *Prize) CreatedAt() time.Time { return p.createdAt }
