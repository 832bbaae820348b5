package vehicle

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPlate   = errors.New("plate cannot be empty")
	ErrInvalidPlate = errors.New("invalid plate")
)

const maxPlateLength = 16

// Plate is the vehicle's identity. Stored normalized so "abc 123" and
// "ABC123" resolve to the same vehicle.
type Plate struct {
	value string
}

func NewPlate(raw string) (Plate, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if normalized == "" {
		return Plate{}, ErrEmptyPlate
	}
	if len(normalized) > maxPlateLength {
		return Plate{}, ErrInvalidPlate
	}
	for _, r := range normalized {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' {
			return Plate{}, ErrInvalidPlate
		}
	}
	return Plate{value: normalized}, nil
}

func (p Plate) String() string {
	return p.value
}

func (p Plate) IsZero() bool {
	return p.value == ""
}
