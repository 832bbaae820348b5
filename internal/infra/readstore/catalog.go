package readstore

import (
	"context"

	"parkops/internal/infra"
	"parkops/internal/infra/db"
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type LotReadStore struct {
	db db.DBTX
}

func NewLotReadStore(dbtx db.DBTX) *LotReadStore {
	return &LotReadStore{db: dbtx}
}

func (s *LotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LotView, error) {
	var v queries.LotView
	err := s.db.QueryRow(ctx,
		`SELECT id, name, address, hourly_rate, minimum_rate, capacity, created_at
		 FROM lots WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Name, &v.Address, &v.HourlyRate, &v.MinimumRate, &v.Capacity, &v.CreatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by ID", err)
	}
	return &v, nil
}

func (s *LotReadStore) List(ctx context.Context) ([]*queries.LotView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, address, hourly_rate, minimum_rate, capacity, created_at
		 FROM lots ORDER BY name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}
	defer rows.Close()

	result := make([]*queries.LotView, 0)
	for rows.Next() {
		var v queries.LotView
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.HourlyRate, &v.MinimumRate, &v.Capacity, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lot rows", err)
	}
	return result, nil
}

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var v queries.ProductView
	err := s.db.QueryRow(ctx,
		`SELECT id, name, barcode, unit_price, description, created_at
		 FROM products WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Name, &v.Barcode, &v.UnitPrice, &v.Description, &v.CreatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return &v, nil
}

func (s *ProductReadStore) ListByLot(ctx context.Context, lotID uuid.UUID) ([]*queries.ProductStockView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT p.id, p.name, p.barcode, p.unit_price, p.description, p.created_at,
		        st.lot_id, st.quantity
		 FROM products p
		 JOIN stocks st ON st.product_id = p.id
		 WHERE st.lot_id = $1
		 ORDER BY p.name`,
		lotID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by lot", err)
	}
	defer rows.Close()

	result := make([]*queries.ProductStockView, 0)
	for rows.Next() {
		var v queries.ProductStockView
		if err := rows.Scan(&v.ID, &v.Name, &v.Barcode, &v.UnitPrice, &v.Description, &v.CreatedAt, &v.LotID, &v.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product stock row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product stock rows", err)
	}
	return result, nil
}

type PrizeReadStore struct {
	db db.DBTX
}

func NewPrizeReadStore(dbtx db.DBTX) *PrizeReadStore {
	return &PrizeReadStore{db: dbtx}
}

func (s *PrizeReadStore) List(ctx context.Context) ([]*queries.PrizeView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, points_required, description
		 FROM prizes ORDER BY points_required`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list prizes", err)
	}
	defer rows.Close()

	result := make([]*queries.PrizeView, 0)
	for rows.Next() {
		var v queries.PrizeView
		if err := rows.Scan(&v.ID, &v.Name, &v.PointsRequired, &v.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan prize row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate prize rows", err)
	}
	return result, nil
}

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

func (s *VehicleReadStore) FindByPlate(ctx context.Context, plate string) (*queries.VehicleView, error) {
	var v queries.VehicleView
	err := s.db.QueryRow(ctx,
		`SELECT id, plate, make, model, color, score
		 FROM vehicles WHERE plate = $1`,
		plate,
	).Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Color, &v.Score)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by plate", err)
	}
	return &v, nil
}
