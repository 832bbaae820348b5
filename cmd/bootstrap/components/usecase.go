package components

import (
	"parkops/internal/domain/assignment"
	"parkops/internal/pkg/clock"
	"parkops/internal/usecase"
	"parkops/internal/usecase/commands"
	"parkops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		assignment.NewHourlyFeeCalculator,
		fx.As(new(assignment.FeeCalculator)),
	),
	func(calc assignment.FeeCalculator) *assignment.Services {
		return &assignment.Services{
			FeeCalculator: calc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAssignmentCommands,
		commands.NewSaleCommands,
		commands.NewRedemptionCommands,
		commands.NewLotCommands,
		commands.NewProductCommands,
		commands.NewPrizeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAssignmentQueries,
		queries.NewSalesQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
