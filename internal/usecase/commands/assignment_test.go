//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkops/internal/domain/assignment"
	domvehicle "parkops/internal/domain/vehicle"
	"parkops/internal/infra"
	"parkops/internal/pkg/clock"
	"parkops/internal/pkg/errs"
	"parkops/internal/pkg/ptr"
	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/shared"
	"parkops/tests/common/builder"
	queriesmock "parkops/tests/mock/queries"
	sharedmock "parkops/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type assignmentCommandsFixture struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	vehicles    *sharedmock.MockVehicleRepository
	assignments *sharedmock.MockAssignmentRepository
	queries     *queriesmock.MockAssignmentQueries
	clock       *clock.MockClock
	commands    commands.AssignmentCommands
}

// newAssignmentCommands wires the command against mocks whose Within simply
// runs the closure on the mock transaction.
func newAssignmentCommands(t *testing.T, now time.Time) *assignmentCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &assignmentCommandsFixture{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		vehicles:    sharedmock.NewMockVehicleRepository(ctrl),
		assignments: sharedmock.NewMockAssignmentRepository(ctrl),
		queries:     queriesmock.NewMockAssignmentQueries(ctrl),
		clock:       clock.NewMockClock(now),
	}
	f.tx.EXPECT().Vehicles().Return(f.vehicles).AnyTimes()
	f.tx.EXPECT().Assignments().Return(f.assignments).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()

	services := &assignment.Services{FeeCalculator: assignment.NewHourlyFeeCalculator()}
	f.commands = commands.NewAssignmentCommands(f.uow, services, f.queries, f.clock)
	return f
}

func TestAssignmentCommandsEnter(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("opens an assignment for a known plate", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		vb := builder.NewVehicleBuilder()
		existing, err := vb.BuildDomain()
		require.NoError(t, err)
		lb := builder.NewLotBuilder()
		assignmentID := uuid.New()

		f.reads.EXPECT().LotByID(gomock.Any(), lb.ID).Return(lb.BuildSnapshot(), nil)
		f.vehicles.EXPECT().FindByPlate(gomock.Any(), "ABC-1234").Return(existing, nil)
		f.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *assignment.Assignment) (uuid.UUID, error) {
				assert.Equal(t, existing.ID(), a.VehicleID())
				assert.Equal(t, lb.ID, a.LotID())
				assert.True(t, a.EntryTime().Equal(now), "got %s", a.EntryTime())
				return assignmentID, nil
			},
		)
		expected := builder.NewAssignmentBuilder().BuildView()
		f.queries.EXPECT().GetByID(gomock.Any(), assignmentID).Return(expected, nil)

		// Lowercase, spaced input resolves to the stored normalized plate.
		view, err := f.commands.Enter(context.Background(), "abc-1234", lb.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, view)
	})

	t.Run("creates the vehicle on its first entry", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		lb := builder.NewLotBuilder()
		vehicleID := uuid.New()

		f.reads.EXPECT().LotByID(gomock.Any(), lb.ID).Return(lb.BuildSnapshot(), nil)
		f.vehicles.EXPECT().FindByPlate(gomock.Any(), "NEW-42").
			Return(nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound))
		f.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v *domvehicle.Vehicle) (uuid.UUID, error) {
				assert.Equal(t, "NEW-42", v.Plate().String())
				assert.Zero(t, v.Score())
				return vehicleID, nil
			},
		)
		f.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *assignment.Assignment) (uuid.UUID, error) {
				assert.Equal(t, vehicleID, a.VehicleID())
				return uuid.New(), nil
			},
		)
		f.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(builder.NewAssignmentBuilder().BuildView(), nil)

		_, err := f.commands.Enter(context.Background(), "NEW-42", lb.ID)
		require.NoError(t, err)
	})

	t.Run("lost vehicle-create race falls back to the winner's row", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		vb := builder.NewVehicleBuilder()
		winner, err := vb.BuildDomain()
		require.NoError(t, err)
		lb := builder.NewLotBuilder()

		f.reads.EXPECT().LotByID(gomock.Any(), lb.ID).Return(lb.BuildSnapshot(), nil)
		f.vehicles.EXPECT().FindByPlate(gomock.Any(), "ABC-1234").
			Return(nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound))
		f.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate plate", nil, infra.KindDuplicateKey))
		f.vehicles.EXPECT().FindByPlate(gomock.Any(), "ABC-1234").Return(winner, nil)
		f.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *assignment.Assignment) (uuid.UUID, error) {
				assert.Equal(t, winner.ID(), a.VehicleID())
				return uuid.New(), nil
			},
		)
		f.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(builder.NewAssignmentBuilder().BuildView(), nil)

		_, err = f.commands.Enter(context.Background(), "ABC-1234", lb.ID)
		require.NoError(t, err)
	})

	t.Run("rejects an unparsable plate", func(t *testing.T) {
		f := newAssignmentCommands(t, now)

		_, err := f.commands.Enter(context.Background(), "@@@", uuid.New())
		assert.ErrorIs(t, err, errs.ErrInvalidPlate)
	})

	t.Run("unknown lot maps to lot not found", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		lotID := uuid.New()

		f.reads.EXPECT().LotByID(gomock.Any(), lotID).
			Return(nil, infra.WrapRepoErr("lot not found", nil, infra.KindNotFound))

		_, err := f.commands.Enter(context.Background(), "ABC-1234", lotID)
		assert.ErrorIs(t, err, errs.ErrLotNotFound)
	})

	t.Run("a second active entry maps to duplicate assignment", func(t *testing.T) {
		// The insert races on the partial unique index; the repository
		// surfaces the loss as either kind depending on timing.
		for _, kind := range []infra.RepositoryErrorKind{infra.KindConflict, infra.KindDuplicateKey} {
			t.Run(string(kind), func(t *testing.T) {
				f := newAssignmentCommands(t, now)
				vb := builder.NewVehicleBuilder()
				existing, err := vb.BuildDomain()
				require.NoError(t, err)
				lb := builder.NewLotBuilder()

				f.reads.EXPECT().LotByID(gomock.Any(), lb.ID).Return(lb.BuildSnapshot(), nil)
				f.vehicles.EXPECT().FindByPlate(gomock.Any(), "ABC-1234").Return(existing, nil)
				f.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.WrapRepoErr("active assignment exists", nil, kind))

				_, err = f.commands.Enter(context.Background(), "ABC-1234", lb.ID)
				assert.ErrorIs(t, err, errs.ErrDuplicateActiveAssignment)
			})
		}
	})
}

func TestAssignmentCommandsCheckout(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("completes an active assignment with the billed fee", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		b := builder.NewAssignmentBuilder()
		exitTime := b.EntryTime.Add(2 * time.Hour)

		f.assignments.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.reads.EXPECT().LotByID(gomock.Any(), b.LotID).Return(&shared.LotSnapshot{
			ID:          b.LotID,
			Name:        b.LotName,
			HourlyRate:  b.HourlyRate,
			MinimumRate: b.MinimumRate,
		}, nil)
		f.assignments.EXPECT().Complete(gomock.Any(), b.ID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, exit time.Time, fee decimal.Decimal) error {
				assert.True(t, exit.Equal(exitTime), "got %s", exit)
				assert.True(t, fee.Equal(decimal.NewFromInt(10)), "got %s", fee)
				return nil
			},
		)
		expected := b.AsCompleted(exitTime, decimal.NewFromInt(10)).BuildView()
		f.queries.EXPECT().GetByID(gomock.Any(), b.ID).Return(expected, nil)

		view, err := f.commands.Checkout(context.Background(), b.ID, exitTime)
		require.NoError(t, err)
		assert.Equal(t, expected, view)
	})

	t.Run("unknown assignment maps to not found", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		id := uuid.New()

		f.assignments.EXPECT().FindByIDForUpdate(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("assignment not found", nil, infra.KindNotFound))

		_, err := f.commands.Checkout(context.Background(), id, now)
		assert.ErrorIs(t, err, errs.ErrAssignmentNotFound)
	})

	t.Run("re-checkout is rejected without touching the stored fee", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		exitTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		b := builder.NewAssignmentBuilder().AsCompleted(exitTime, decimal.NewFromInt(10))

		f.assignments.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.reads.EXPECT().LotByID(gomock.Any(), b.LotID).Return(&shared.LotSnapshot{
			ID:         b.LotID,
			HourlyRate: b.HourlyRate,
		}, nil)

		// No Complete expectation: a second write would fail the test.
		_, err := f.commands.Checkout(context.Background(), b.ID, exitTime.Add(time.Hour))
		assert.ErrorIs(t, err, errs.ErrAlreadyCompleted)
	})

	t.Run("exit before entry maps to invalid interval", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		b := builder.NewAssignmentBuilder()

		f.assignments.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.reads.EXPECT().LotByID(gomock.Any(), b.LotID).Return(&shared.LotSnapshot{
			ID:         b.LotID,
			HourlyRate: b.HourlyRate,
		}, nil)

		_, err := f.commands.Checkout(context.Background(), b.ID, b.EntryTime.Add(-time.Hour))
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})
}

func TestAssignmentCommandsEditPlate(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("corrects the plate and details", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		vb := builder.NewVehicleBuilder()
		v, err := vb.BuildDomain()
		require.NoError(t, err)

		f.vehicles.EXPECT().FindByID(gomock.Any(), vb.ID).Return(v, nil)
		f.vehicles.EXPECT().UpdateIdentity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated *domvehicle.Vehicle) error {
				assert.Equal(t, "XYZ-9999", updated.Plate().String())
				assert.Equal(t, "Honda", updated.Make())
				return nil
			},
		)

		view, err := f.commands.EditPlate(context.Background(), vb.ID, "xyz-9999", ptr.To("Honda"), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "XYZ-9999", view.Plate)
		assert.Equal(t, "Honda", view.Make)
		assert.Equal(t, vb.Model, view.Model)
		assert.Equal(t, vb.Score, view.Score)
	})

	t.Run("unknown vehicle maps to not found", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		id := uuid.New()

		f.vehicles.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound))

		_, err := f.commands.EditPlate(context.Background(), id, "XYZ-9999", nil, nil, nil)
		assert.ErrorIs(t, err, errs.ErrVehicleNotFound)
	})

	t.Run("plate collision maps to duplicate plate", func(t *testing.T) {
		f := newAssignmentCommands(t, now)
		vb := builder.NewVehicleBuilder()
		v, err := vb.BuildDomain()
		require.NoError(t, err)

		f.vehicles.EXPECT().FindByID(gomock.Any(), vb.ID).Return(v, nil)
		f.vehicles.EXPECT().UpdateIdentity(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate plate", nil, infra.KindDuplicateKey))

		_, err = f.commands.EditPlate(context.Background(), vb.ID, "XYZ-9999", nil, nil, nil)
		assert.ErrorIs(t, err, errs.ErrDuplicatePlate)
	})
}
