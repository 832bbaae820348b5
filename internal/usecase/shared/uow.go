package shared

import (
	"context"
	"time"

	"parkops/internal/domain/assignment"
	"parkops/internal/domain/inventory"
	"parkops/internal/domain/lot"
	"parkops/internal/domain/prize"
	"parkops/internal/domain/vehicle"
	"parkops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: write transaction with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads: validation reads outside any transaction
	Reads() CommandReads
}

type Tx interface {
	Vehicles() VehicleRepository
	Assignments() AssignmentRepository
	Lots() LotRepository
	Products() ProductRepository
	Stocks() StockRepository
	Sales() SaleRepository
	Prizes() PrizeRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	LotByID(ctx context.Context, id uuid.UUID) (*LotSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	PrizeByID(ctx context.Context, id uuid.UUID) (*PrizeSnapshot, error)
	VehicleByPlate(ctx context.Context, plate string) (*VehicleSnapshot, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	// FindByPlateForUpdate row-locks the vehicle so concurrent redemptions
	// serialize on the score check-and-decrement.
	FindByPlateForUpdate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	UpdateIdentity(ctx context.Context, v *vehicle.Vehicle) error
	UpdateScore(ctx context.Context, id uuid.UUID, score int) error
}

type AssignmentRepository interface {
	// Create relies on the partial unique index over (vehicle_id, lot_id)
	// WHERE exit_time IS NULL; a concurrent duplicate surfaces as KindConflict.
	Create(ctx context.Context, a *assignment.Assignment) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error)
	Complete(ctx context.Context, id uuid.UUID, exitTime time.Time, fee decimal.Decimal) error
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error)
	Update(ctx context.Context, l *lot.Lot) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *inventory.Product) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Product, error)
	Update(ctx context.Context, p *inventory.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StockRepository interface {
	Create(ctx context.Context, s *inventory.Stock) error
	// DecrementIfAvailable performs the atomic compare-and-decrement:
	// UPDATE ... SET quantity = quantity - n WHERE ... AND quantity >= n.
	// Returns the remaining quantity; KindConflict when stock is short,
	// KindNotFound when no stock row exists for the pair.
	DecrementIfAvailable(ctx context.Context, productID, lotID uuid.UUID, quantity int) (int, error)
}

type SaleRepository interface {
	Create(ctx context.Context, s *inventory.Sale) (uuid.UUID, error)
}

type PrizeRepository interface {
	Create(ctx context.Context, p *prize.Prize) (uuid.UUID, error)
}
