package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrNegativeStock     = errors.New("stock quantity cannot be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Stock is the on-hand quantity for one product at one lot. Decrement is the
// only mutation; the initial quantity set at product creation is the only
// increment path.
type Stock struct {
	productID uuid.UUID
	lotID     uuid.UUID
	quantity  int
}

func NewStock(productID, lotID uuid.UUID, quantity int) (*Stock, error) {
	if quantity < 0 {
		return nil, ErrNegativeStock
	}
	return &Stock{
		productID: productID,
		lotID:     lotID,
		quantity:  quantity,
	}, nil
}

func ReconstructStock(productID, lotID uuid.UUID, quantity int) (*Stock, error) {
	return NewStock(productID, lotID, quantity)
}

func (s *Stock) Decrement(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > s.quantity {
		return ErrInsufficientStock
	}
	s.quantity -= quantity
	return nil
}

func (s *Stock) ProductID() uuid.UUID { return s.productID }
func (s *Stock) LotID() uuid.UUID     { return s.lotID }
func (s *Stock) Quantity() int        { return s.quantity }
