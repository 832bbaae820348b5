package queries

import (
	"context"
	"log/slog"
	"time"

	"parkops/internal/domain/assignment"
	"parkops/internal/domain/lot"
	"parkops/internal/infra"
	"parkops/internal/pkg/clock"
	"parkops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssignmentRow is what the read store yields: the assignment joined with the
// plate and the lot's rate configuration, so a running fee can be priced
// without a second round trip.
type AssignmentRow struct {
	ID          uuid.UUID
	VehicleID   uuid.UUID
	Plate       string
	LotID       uuid.UUID
	LotName     string
	EntryTime   time.Time
	ExitTime    *time.Time
	Fee         *decimal.Decimal
	HourlyRate  decimal.Decimal
	MinimumRate *decimal.Decimal
}

type AssignmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssignmentRow, error)
	ListActive(ctx context.Context, lotID uuid.UUID) ([]*AssignmentRow, error)
	ListCompleted(ctx context.Context, lotID uuid.UUID, from, to *time.Time) ([]*AssignmentRow, error)
}

type AssignmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AssignmentView, error)
	ListActive(ctx context.Context, lotID uuid.UUID) ([]*AssignmentView, error)
	// ListCompleted optionally filters to assignments whose exit time falls on
	// the given calendar day. Day filtering is a view concern, not a property
	// of the assignment.
	ListCompleted(ctx context.Context, lotID uuid.UUID, day *time.Time) ([]*AssignmentView, error)
}

type assignmentQueriesImpl struct {
	store    AssignmentReadStore
	clock    clock.Clock
	services *assignment.Services
}

func NewAssignmentQueries(store AssignmentReadStore, clk clock.Clock, services *assignment.Services) AssignmentQueries {
	return &assignmentQueriesImpl{
		store:    store,
		clock:    clk,
		services: services,
	}
}

func (q *assignmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AssignmentView, error) {
	row, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAssignmentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.toView(row), nil
}

func (q *assignmentQueriesImpl) ListActive(ctx context.Context, lotID uuid.UUID) ([]*AssignmentView, error) {
	rows, err := q.store.ListActive(ctx, lotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*AssignmentView, len(rows))
	for i, row := range rows {
		views[i] = q.toView(row)
	}
	return views, nil
}

func (q *assignmentQueriesImpl) ListCompleted(ctx context.Context, lotID uuid.UUID, day *time.Time) ([]*AssignmentView, error) {
	var from, to *time.Time
	if day != nil {
		start := day.Truncate(24 * time.Hour)
		end := start.Add(24 * time.Hour)
		from, to = &start, &end
	}

	rows, err := q.store.ListCompleted(ctx, lotID, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*AssignmentView, len(rows))
	for i, row := range rows {
		views[i] = q.toView(row)
	}
	return views, nil
}

func (q *assignmentQueriesImpl) toView(row *AssignmentRow) *AssignmentView {
	view := &AssignmentView{
		ID:        row.ID,
		VehicleID: row.VehicleID,
		Plate:     row.Plate,
		LotID:     row.LotID,
		LotName:   row.LotName,
		EntryTime: row.EntryTime,
		ExitTime:  row.ExitTime,
		Fee:       row.Fee,
	}

	if row.ExitTime != nil {
		view.Status = assignment.StatusCompleted.String()
		return view
	}

	view.Status = assignment.StatusActive.String()
	rates := lot.RateConfig{HourlyRate: row.HourlyRate, MinimumRate: row.MinimumRate}
	now := q.clock.Now()
	if now.Before(row.EntryTime) {
		// Clock skew against the writer's timestamp: price a zero-length
		// stay instead of dropping the figure.
		now = row.EntryTime
	}
	running, err := q.services.FeeCalculator.Fee(row.EntryTime, now, rates)
	if err != nil {
		slog.Warn("running fee unavailable", "assignment_id", row.ID, "error", err)
		return view
	}
	view.RunningFee = &running
	return view
}
