package readstore

import (
	"context"
	"time"

	"parkops/internal/infra"
	"parkops/internal/infra/db"
	"parkops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AssignmentReadStore struct {
	db db.DBTX
}

func NewAssignmentReadStore(dbtx db.DBTX) *AssignmentReadStore {
	return &AssignmentReadStore{db: dbtx}
}

const assignmentRowSelect = `
	SELECT a.id, a.vehicle_id, v.plate, a.lot_id, l.name,
	       a.entry_time, a.exit_time, a.fee,
	       l.hourly_rate, l.minimum_rate
	FROM assignments a
	JOIN vehicles v ON v.id = a.vehicle_id
	JOIN lots l ON l.id = a.lot_id`

func (s *AssignmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AssignmentRow, error) {
	row := s.db.QueryRow(ctx, assignmentRowSelect+` WHERE a.id = $1`, id)

	ar, err := scanAssignmentRow(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find assignment by ID", err)
	}
	return ar, nil
}

func (s *AssignmentReadStore) ListActive(ctx context.Context, lotID uuid.UUID) ([]*queries.AssignmentRow, error) {
	rows, err := s.db.Query(ctx,
		assignmentRowSelect+`
		WHERE a.lot_id = $1 AND a.exit_time IS NULL
		ORDER BY a.entry_time DESC`,
		lotID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active assignments", err)
	}
	defer rows.Close()

	return collectAssignmentRows(rows)
}

func (s *AssignmentReadStore) ListCompleted(ctx context.Context, lotID uuid.UUID, from, to *time.Time) ([]*queries.AssignmentRow, error) {
	query := assignmentRowSelect + ` WHERE a.lot_id = $1 AND a.exit_time IS NOT NULL`
	args := []any{lotID}
	if from != nil && to != nil {
		query += ` AND a.exit_time >= $2 AND a.exit_time < $3`
		args = append(args, *from, *to)
	}
	query += ` ORDER BY a.exit_time DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completed assignments", err)
	}
	defer rows.Close()

	return collectAssignmentRows(rows)
}

func scanAssignmentRow(row pgx.Row) (*queries.AssignmentRow, error) {
	var ar queries.AssignmentRow
	err := row.Scan(
		&ar.ID, &ar.VehicleID, &ar.Plate, &ar.LotID, &ar.LotName,
		&ar.EntryTime, &ar.ExitTime, &ar.Fee,
		&ar.HourlyRate, &ar.MinimumRate,
	)
	if err != nil {
		return nil, err
	}
	return &ar, nil
}

func collectAssignmentRows(rows pgx.Rows) ([]*queries.AssignmentRow, error) {
	result := make([]*queries.AssignmentRow, 0)
	for rows.Next() {
		ar, err := scanAssignmentRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment row", err)
		}
		result = append(result, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignment rows", err)
	}
	return result, nil
}
