package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeScore     = errors.New("score cannot be negative")
	ErrInvalidPoints     = errors.New("points must be positive")
	ErrInsufficientScore = errors.New("insufficient score")
)

type Vehicle struct {
	id        uuid.UUID
	plate     Plate
	make      string
	model     string
	color     string
	score     int
	createdAt time.Time
	updatedAt time.Time
}

// NewVehicle is called the first time a plate shows up at a lot entrance.
// A fresh vehicle starts with zero loyalty points.
func NewVehicle(plate Plate, make, model, color string) *Vehicle {
	return &Vehicle{
		plate: plate,
		make:  strings.TrimSpace(make),
		model: strings.TrimSpace(model),
		color: strings.TrimSpace(color),
		score: 0,
	}
}

func ReconstructVehicle(
	id uuid.UUID,
	plate Plate,
	make, model, color string,
	score int,
	createdAt, updatedAt time.Time,
) (*Vehicle, error) {
	if score < 0 {
		return nil, ErrNegativeScore
	}
	return &Vehicle{
		id:        id,
		plate:     plate,
		make:      make,
		model:     model,
		color:     color,
		score:     score,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// RedeemPoints spends exactly the prize's cost. The precondition keeps the
// score from ever dropping below zero.
func (v *Vehicle) RedeemPoints(points int) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	if v.score < points {
		return ErrInsufficientScore
	}
	v.score -= points
	return nil
}

// CorrectPlate fixes a mistyped identity without touching anything else.
func (v *Vehicle) CorrectPlate(plate Plate) {
	v.plate = plate
}

func (v *Vehicle) UpdateDetails(make, model, color *string) {
	if make != nil {
		v.make = strings.TrimSpace(*make)
	}
	if model != nil {
		v.model = strings.TrimSpace(*model)
	}
	if color != nil {
		v.color = strings.TrimSpace(*color)
	}
}

func (v *Vehicle) ID() uuid.UUID        { return v.id }
func (v *Vehicle) Plate() Plate         { return v.plate }
func (v *Vehicle) Make() string         { return v.make }
func (v *Vehicle) Model() string        { return v.model }
func (v *Vehicle) Color() string        { return v.color }
func (v *Vehicle) Score() int           { return v.score }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }
