package readstore

import (
	"context"
	"time"

	"parkops/internal/infra"
	"parkops/internal/infra/db"
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
)

type SalesReadStore struct {
	db db.DBTX
}

func NewSalesReadStore(dbtx db.DBTX) *SalesReadStore {
	return &SalesReadStore{db: dbtx}
}

func (s *SalesReadStore) TotalsByLot(ctx context.Context, lotID uuid.UUID, start, end time.Time) ([]*queries.ProductSalesTotal, error) {
	rows, err := s.db.Query(ctx,
		`SELECT s.product_id, p.name,
		        COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.amount), 0)
		 FROM sales s
		 JOIN products p ON p.id = s.product_id
		 WHERE s.lot_id = $1 AND s.sold_at >= $2 AND s.sold_at <= $3
		 GROUP BY s.product_id, p.name
		 ORDER BY p.name`,
		lotID, start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to total sales by lot", err)
	}
	defer rows.Close()

	result := make([]*queries.ProductSalesTotal, 0)
	for rows.Next() {
		var t queries.ProductSalesTotal
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.TotalQuantity, &t.TotalAmount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sales total", err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sales totals", err)
	}
	return result, nil
}

func (s *SalesReadStore) TotalsByProduct(ctx context.Context, productID uuid.UUID, start, end time.Time) ([]*queries.LotSalesTotal, error) {
	rows, err := s.db.Query(ctx,
		`SELECT s.lot_id, l.name,
		        COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.amount), 0)
		 FROM sales s
		 JOIN lots l ON l.id = s.lot_id
		 WHERE s.product_id = $1 AND s.sold_at >= $2 AND s.sold_at <= $3
		 GROUP BY s.lot_id, l.name
		 ORDER BY l.name`,
		productID, start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to total sales by product", err)
	}
	defer rows.Close()

	result := make([]*queries.LotSalesTotal, 0)
	for rows.Next() {
		var t queries.LotSalesTotal
		if err := rows.Scan(&t.LotID, &t.LotName, &t.TotalQuantity, &t.TotalAmount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sales total", err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sales totals", err)
	}
	return result, nil
}

func (s *SalesReadStore) ProductName(ctx context.Context, productID uuid.UUID) (string, error) {
	var name string
	err := s.db.QueryRow(ctx, `SELECT name FROM products WHERE id = $1`, productID).Scan(&name)
	if err != nil {
		if db.IsNoRows(err) {
			return "", infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find product name", err)
	}
	return name, nil
}
