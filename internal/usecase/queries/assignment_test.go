//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkops/internal/domain/assignment"
	"parkops/internal/infra"
	"parkops/internal/pkg/clock"
	"parkops/internal/pkg/errs"
	"parkops/internal/usecase/queries"
	"parkops/tests/common/builder"
	queriesmock "parkops/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func newAssignmentQueries(t *testing.T, now time.Time) (queries.AssignmentQueries, *queriesmock.MockAssignmentReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAssignmentReadStore(ctrl)
	services := &assignment.Services{FeeCalculator: assignment.NewHourlyFeeCalculator()}
	return queries.NewAssignmentQueries(store, clock.NewMockClock(now), services), store
}

func TestAssignmentQueriesListActive(t *testing.T) {
	t.Run("prices active assignments against now", func(t *testing.T) {
		b := builder.NewAssignmentBuilder()
		now := b.EntryTime.Add(90 * time.Minute)
		q, store := newAssignmentQueries(t, now)

		store.EXPECT().ListActive(gomock.Any(), b.LotID).
			Return([]*queries.AssignmentRow{b.BuildRow()}, nil)

		views, err := q.ListActive(context.Background(), b.LotID)
		require.NoError(t, err)
		require.Len(t, views, 1)

		expected := b.BuildView()
		running := decimal.RequireFromString("7.5")
		expected.RunningFee = &running
		if diff := cmp.Diff(expected, views[0], decimalComparer); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("running fee respects the minimum rate", func(t *testing.T) {
		b := builder.NewAssignmentBuilder().WithMinimumRate(decimal.NewFromInt(10))
		now := b.EntryTime.Add(30 * time.Minute)
		q, store := newAssignmentQueries(t, now)

		store.EXPECT().ListActive(gomock.Any(), b.LotID).
			Return([]*queries.AssignmentRow{b.BuildRow()}, nil)

		views, err := q.ListActive(context.Background(), b.LotID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.NotNil(t, views[0].RunningFee)
		assert.True(t, views[0].RunningFee.Equal(decimal.NewFromInt(10)),
			"got %s", views[0].RunningFee)
	})

	t.Run("a clock behind the entry time prices a zero-length stay", func(t *testing.T) {
		b := builder.NewAssignmentBuilder()
		q, store := newAssignmentQueries(t, b.EntryTime.Add(-5*time.Minute))

		store.EXPECT().ListActive(gomock.Any(), b.LotID).
			Return([]*queries.AssignmentRow{b.BuildRow()}, nil)

		views, err := q.ListActive(context.Background(), b.LotID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.NotNil(t, views[0].RunningFee)
		assert.True(t, views[0].RunningFee.IsZero(), "got %s", views[0].RunningFee)
	})

	t.Run("a clock behind the entry time still floors at the minimum rate", func(t *testing.T) {
		b := builder.NewAssignmentBuilder().WithMinimumRate(decimal.NewFromInt(10))
		q, store := newAssignmentQueries(t, b.EntryTime.Add(-5*time.Minute))

		store.EXPECT().ListActive(gomock.Any(), b.LotID).
			Return([]*queries.AssignmentRow{b.BuildRow()}, nil)

		views, err := q.ListActive(context.Background(), b.LotID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.NotNil(t, views[0].RunningFee)
		assert.True(t, views[0].RunningFee.Equal(decimal.NewFromInt(10)),
			"got %s", views[0].RunningFee)
	})

	t.Run("store failure is marked as database error", func(t *testing.T) {
		b := builder.NewAssignmentBuilder()
		q, store := newAssignmentQueries(t, b.EntryTime)

		store.EXPECT().ListActive(gomock.Any(), b.LotID).
			Return(nil, errors.New("connection reset"))

		_, err := q.ListActive(context.Background(), b.LotID)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestAssignmentQueriesGetByID(t *testing.T) {
	t.Run("completed assignment keeps its stored fee", func(t *testing.T) {
		exitTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		fee := decimal.NewFromInt(10)
		b := builder.NewAssignmentBuilder().AsCompleted(exitTime, fee)
		q, store := newAssignmentQueries(t, exitTime.Add(48*time.Hour))

		store.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildRow(), nil)

		view, err := q.GetByID(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", view.Status)
		require.NotNil(t, view.Fee)
		assert.True(t, view.Fee.Equal(fee), "got %s", view.Fee)
		assert.Nil(t, view.RunningFee)
	})

	t.Run("not found maps to assignment not found", func(t *testing.T) {
		b := builder.NewAssignmentBuilder()
		q, store := newAssignmentQueries(t, b.EntryTime)

		store.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(nil, infra.WrapRepoErr("assignment not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), b.ID)
		assert.ErrorIs(t, err, errs.ErrAssignmentNotFound)
	})
}

func TestAssignmentQueriesListCompleted(t *testing.T) {
	t.Run("day filter expands to a whole-day window", func(t *testing.T) {
		exitTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		b := builder.NewAssignmentBuilder().AsCompleted(exitTime, decimal.NewFromInt(10))
		q, store := newAssignmentQueries(t, exitTime)

		day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		windowEnd := day.Add(24 * time.Hour)
		store.EXPECT().ListCompleted(gomock.Any(), b.LotID, gomock.Eq(&day), gomock.Eq(&windowEnd)).
			Return([]*queries.AssignmentRow{b.BuildRow()}, nil)

		views, err := q.ListCompleted(context.Background(), b.LotID, &day)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "completed", views[0].Status)
	})

	t.Run("nil day lists everything", func(t *testing.T) {
		b := builder.NewAssignmentBuilder()
		q, store := newAssignmentQueries(t, b.EntryTime)

		store.EXPECT().ListCompleted(gomock.Any(), b.LotID, (*time.Time)(nil), (*time.Time)(nil)).
			Return([]*queries.AssignmentRow{}, nil)

		views, err := q.ListCompleted(context.Background(), b.LotID, nil)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
