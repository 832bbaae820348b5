package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the immutable record written by a successful sale transaction.
// Amount snapshots quantity x unit price at the moment of sale, so later
// price edits never rewrite revenue history.
type Sale struct {
	id        uuid.UUID
	productID uuid.UUID
	lotID     uuid.UUID
	quantity  int
	amount    decimal.Decimal
	soldAt    time.Time
}

func NewSale(productID, lotID uuid.UUID, quantity int, unitPrice decimal.Decimal, soldAt time.Time) (*Sale, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return &Sale{
		productID: productID,
		lotID:     lotID,
		quantity:  quantity,
		amount:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		soldAt:    soldAt.UTC(),
	}, nil
}

func ReconstructSale(
	id, productID, lotID uuid.UUID,
	quantity int,
	amount decimal.Decimal,
	soldAt time.Time,
) *Sale {
	return &Sale{
		id:        id,
		productID: productID,
		lotID:     lotID,
		quantity:  quantity,
		amount:    amount,
		soldAt:    soldAt,
	}
}

func (s *Sale) ID() uuid.UUID           { return s.id }
func (s *Sale) ProductID() uuid.UUID    { return s.productID }
func (s *Sale) LotID() uuid.UUID        { return s.lotID }
func (s *Sale) Quantity() int           { return s.quantity }
func (s *Sale) Amount() decimal.Decimal { return s.amount }
func (s *Sale) SoldAt() time.Time       { return s.soldAt }
